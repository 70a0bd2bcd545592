package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kelimeavi/wordhunt-api/internal/domain"
	"github.com/kelimeavi/wordhunt-api/internal/game"
	"github.com/kelimeavi/wordhunt-api/internal/repository"
)

var (
	ErrEventNotFound   = repository.ErrEventNotFound
	ErrWordExceedsGrid = errors.New("word is longer than the grid size")
)

type EventRepository interface {
	FindByID(ctx context.Context, id string) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	CreateSubmission(ctx context.Context, sub domain.Submission, matched bool) (domain.Submission, int64, error)
	FindSubmissionsByEventID(ctx context.Context, eventID string) ([]domain.Submission, error)
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

// GetConfig resolves an event for the public config endpoint. An inactive
// event is indistinguishable from a missing one.
func (s *EventService) GetConfig(ctx context.Context, id string) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !event.IsActive {
		return domain.Event{}, ErrEventNotFound
	}

	return event, nil
}

// GetEvent returns the raw event row regardless of the active flag.
// Admin-only.
func (s *EventService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

// UpsertEvent creates the event under a fresh id when none is given, or
// updates the existing row otherwise. Updating an unknown id fails with
// ErrEventNotFound rather than creating it. Words longer than the grid can
// never be placed, so such configs are rejected up front.
func (s *EventService) UpsertEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	for _, word := range event.Words {
		if utf8.RuneCountInString(word) > event.GridSize {
			return domain.Event{}, fmt.Errorf("%q -> %w", word, ErrWordExceedsGrid)
		}
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
		created, err := s.repo.Create(ctx, event)
		if err != nil {
			return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
		}

		return created, nil
	}

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// NewGrid generates a fresh letter grid for an active event. Every call
// produces a new layout; grids are never persisted.
func (s *EventService) NewGrid(ctx context.Context, id string) (*game.Grid, error) {
	event, err := s.GetConfig(ctx, id)
	if err != nil {
		return nil, err
	}

	grid, err := game.Generate(event.GridSize, event.Words, nil)
	if err != nil {
		return nil, fmt.Errorf("game.Generate -> %w", err)
	}

	return grid, nil
}

// GetSubmissions lists an event's submissions in insertion order.
// Admin-only.
func (s *EventService) GetSubmissions(ctx context.Context, eventID string) ([]domain.Submission, error) {
	subs, err := s.repo.FindSubmissionsByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindSubmissionsByEventID -> %w", err)
	}

	return subs, nil
}
