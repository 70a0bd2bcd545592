package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kelimeavi/wordhunt-api/internal/domain"
	"github.com/kelimeavi/wordhunt-api/internal/game"
)

var (
	ErrEventNotStarted = errors.New("event has not started")
	ErrEventEnded      = errors.New("event has ended")
)

type SubmissionService struct {
	repo EventRepository
}

func NewSubmissionService(repo EventRepository) *SubmissionService {
	return &SubmissionService{
		repo: repo,
	}
}

// ResolveEvent checks that a submission target exists and is active. The
// existence check runs before the request body is even looked at, so a
// bad payload aimed at a missing event still answers not found.
func (s *SubmissionService) ResolveEvent(ctx context.Context, eventID string) error {
	_, err := s.resolveEvent(ctx, eventID)

	return err
}

func (s *SubmissionService) resolveEvent(ctx context.Context, eventID string) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !event.IsActive {
		return domain.Event{}, ErrEventNotFound
	}

	return event, nil
}

// Submit validates and records one claimed word set. The event must be
// active and inside its time window. Whether the claim matches is decided
// here by normalized-set comparison, never trusted from the client; quota
// admission happens atomically in the repository. The row is stored even
// when the claim fails, so every attempt is auditable.
func (s *SubmissionService) Submit(ctx context.Context, eventID string, sub domain.Submission) (domain.SubmissionResult, error) {
	event, err := s.resolveEvent(ctx, eventID)
	if err != nil {
		return domain.SubmissionResult{}, err
	}

	now := time.Now()
	if !event.Started(now) {
		return domain.SubmissionResult{}, ErrEventNotStarted
	}
	if event.Ended(now) {
		return domain.SubmissionResult{}, ErrEventEnded
	}

	matched := game.Match(event.Words, sub.WordsFound)

	sub.ID = uuid.NewString()
	sub.EventID = event.ID

	created, priorValid, err := s.repo.CreateSubmission(ctx, sub, matched)
	if err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("s.repo.CreateSubmission -> %w", err)
	}

	rank := int(priorValid)
	if matched {
		rank++
	}

	return domain.SubmissionResult{
		IsWinner: created.IsValid,
		Rank:     rank,
	}, nil
}
