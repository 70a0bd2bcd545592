package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelimeavi/wordhunt-api/internal/domain"
	"github.com/kelimeavi/wordhunt-api/internal/game"
)

func TestEventService_GetConfig(t *testing.T) {
	active := activeEvent("ev1", 5)
	inactive := activeEvent("ev2", 5)
	inactive.IsActive = false
	svc := NewEventService(newFakeEventRepo(active, inactive))

	got, err := svc.GetConfig(context.Background(), "ev1")
	require.NoError(t, err)
	assert.Equal(t, active.Words, got.Words)

	_, err = svc.GetConfig(context.Background(), "ev2")
	assert.ErrorIs(t, err, ErrEventNotFound, "inactive reads as missing")

	_, err = svc.GetConfig(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventService_GetEvent_IgnoresActiveFlag(t *testing.T) {
	inactive := activeEvent("ev1", 5)
	inactive.IsActive = false
	svc := NewEventService(newFakeEventRepo(inactive))

	got, err := svc.GetEvent(context.Background(), "ev1")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestEventService_UpsertEvent_Create(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	created, err := svc.UpsertEvent(context.Background(), domain.Event{
		Name:      "Yeni Etkinlik",
		Words:     []string{"elma"},
		GridSize:  10,
		WinnerCap: 3,
		IsActive:  true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "create assigns a fresh id")

	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yeni Etkinlik", stored.Name)
}

func TestEventService_UpsertEvent_UpdateUnknownID(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	_, err := svc.UpsertEvent(context.Background(), domain.Event{
		ID:       "missing",
		Name:     "X",
		Words:    []string{"elma"},
		GridSize: 10,
	})
	assert.ErrorIs(t, err, ErrEventNotFound, "update never creates")
}

func TestEventService_UpsertEvent_WordExceedsGrid(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	_, err := svc.UpsertEvent(context.Background(), domain.Event{
		Name:     "X",
		Words:    []string{"karpuz"},
		GridSize: 4,
	})
	assert.ErrorIs(t, err, ErrWordExceedsGrid)
}

func TestEventService_UpsertEvent_RuneLengthNotByteLength(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	// "çiçek" is 5 runes but 7 bytes; a 5-cell grid fits it.
	_, err := svc.UpsertEvent(context.Background(), domain.Event{
		Name:     "X",
		Words:    []string{"çiçek"},
		GridSize: 5,
	})
	require.NoError(t, err)
}

func TestEventService_NewGrid(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(activeEvent("ev1", 5)))

	grid, err := svc.NewGrid(context.Background(), "ev1")
	require.NoError(t, err)
	assert.Equal(t, 10, grid.Size())

	letters := grid.Letters()
	require.Len(t, letters, 10)
	for _, row := range letters {
		require.Len(t, row, 10)
		for _, letter := range row {
			assert.True(t, strings.ContainsRune(string(game.Alphabet), []rune(letter)[0]))
		}
	}

	_, err = svc.NewGrid(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}
