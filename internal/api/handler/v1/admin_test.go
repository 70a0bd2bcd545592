package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelimeavi/wordhunt-api/internal/domain"
	"github.com/kelimeavi/wordhunt-api/internal/service"
)

type fakeAdminService struct {
	events map[string]domain.Event
	subs   map[string][]domain.Submission
}

func newFakeAdminService(events ...domain.Event) *fakeAdminService {
	m := make(map[string]domain.Event, len(events))
	for _, e := range events {
		m[e.ID] = e
	}

	return &fakeAdminService{events: m, subs: make(map[string][]domain.Submission)}
}

func (f *fakeAdminService) GetEvent(_ context.Context, id string) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, service.ErrEventNotFound
	}

	return event, nil
}

func (f *fakeAdminService) UpsertEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	for _, word := range event.Words {
		if len([]rune(word)) > event.GridSize {
			return domain.Event{}, fmt.Errorf("%q -> %w", word, service.ErrWordExceedsGrid)
		}
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	} else if _, ok := f.events[event.ID]; !ok {
		return domain.Event{}, service.ErrEventNotFound
	}
	f.events[event.ID] = event

	return event, nil
}

func (f *fakeAdminService) GetSubmissions(_ context.Context, eventID string) ([]domain.Submission, error) {
	return f.subs[eventID], nil
}

func setupAdminRouter(svc *fakeAdminService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAdminHandler(svc)
	router := gin.New()
	router.POST("/admin/event", handler.HandleUpsertEvent)
	router.GET("/admin/event/:eventID", handler.HandleGetEvent)
	router.GET("/admin/event/:eventID/submissions", handler.HandleGetSubmissions)

	return router
}

func TestHandleUpsertEvent_Create(t *testing.T) {
	svc := newFakeAdminService()
	router := setupAdminRouter(svc)

	body := `{"name":"Bahar Etkinliği","words":["elma","armut"],"gridSize":10,"winnerCap":2}`
	req, _ := http.NewRequest(http.MethodPost, "/admin/event", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK bool   `json:"ok"`
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	require.NotEmpty(t, resp.ID)

	created := svc.events[resp.ID]
	assert.Equal(t, 10, created.GridSize)
	assert.Equal(t, 2, created.WinnerCap)
	assert.True(t, created.IsActive, "active defaults to on")
}

func TestHandleUpsertEvent_Defaults(t *testing.T) {
	svc := newFakeAdminService()
	router := setupAdminRouter(svc)

	body := `{"name":"Varsayılanlar","words":["elma"]}`
	req, _ := http.NewRequest(http.MethodPost, "/admin/event", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	created := svc.events[resp.ID]
	assert.Equal(t, 12, created.GridSize)
	assert.Equal(t, 100, created.WinnerCap)
}

func TestHandleUpsertEvent_UpdateUnknownID(t *testing.T) {
	router := setupAdminRouter(newFakeAdminService())

	body := `{"id":"missing","name":"X","words":["elma"],"gridSize":10}`
	req, _ := http.NewRequest(http.MethodPost, "/admin/event", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"event_not_found"}`, w.Body.String())
}

func TestHandleUpsertEvent_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"words":["elma"]}`},
		{"empty words", `{"name":"X","words":[]}`},
		{"missing words", `{"name":"X"}`},
		{"word with digits", `{"name":"X","words":["elma1"]}`},
		{"word longer than grid", `{"name":"X","words":["karpuz"],"gridSize":4}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := setupAdminRouter(newFakeAdminService())

			req, _ := http.NewRequest(http.MethodPost, "/admin/event", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"bad_request"}`, w.Body.String())
		})
	}
}

func TestHandleGetEvent(t *testing.T) {
	inactive := testEvent()
	inactive.IsActive = false
	router := setupAdminRouter(newFakeAdminService(inactive))

	req, _ := http.NewRequest(http.MethodGet, "/admin/event/ev1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got domain.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "ev1", got.ID)
	assert.False(t, got.IsActive, "admin read ignores the active flag")
}

func TestHandleGetSubmissions(t *testing.T) {
	svc := newFakeAdminService(testEvent())
	svc.subs["ev1"] = []domain.Submission{
		{ID: "s1", EventID: "ev1", UserID: "u1", IsValid: true, CreatedAt: time.Now().Add(-time.Minute)},
		{ID: "s2", EventID: "ev1", UserID: "u2", IsValid: false, CreatedAt: time.Now()},
	}
	router := setupAdminRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/admin/event/ev1/submissions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []domain.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].ID, "insertion order preserved")
	assert.Equal(t, "s2", got[1].ID)
}
