package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kelimeavi/wordhunt-api/internal/domain"
	"github.com/kelimeavi/wordhunt-api/internal/repository/dao"
)

var (
	ErrEventNotFound = dao.ErrEventNotFound
	ErrEventIDExists = dao.ErrEventIDExists
)

type EventDAO interface {
	FindByID(ctx context.Context, id string) (dao.Event, error)
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	InsertSubmission(ctx context.Context, sub dao.Submission, matched bool) (dao.Submission, int64, error)
	FindSubmissionsByEventID(ctx context.Context, eventID string) ([]dao.Submission, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) domainToDao(e domain.Event) (dao.Event, error) {
	words, err := json.Marshal(e.Words)
	if err != nil {
		return dao.Event{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	return dao.Event{
		ID:        e.ID,
		Name:      e.Name,
		WordsJSON: string(words),
		GridSize:  e.GridSize,
		WinnerCap: e.WinnerCap,
		StartAt:   e.StartAt,
		EndAt:     e.EndAt,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}, nil
}

func (r *EventRepository) daoToDomain(e dao.Event) (domain.Event, error) {
	var words []string
	if err := json.Unmarshal([]byte(e.WordsJSON), &words); err != nil {
		return domain.Event{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return domain.Event{
		ID:        e.ID,
		Name:      e.Name,
		Words:     words,
		GridSize:  e.GridSize,
		WinnerCap: e.WinnerCap,
		StartAt:   e.StartAt,
		EndAt:     e.EndAt,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}, nil
}

func (r *EventRepository) submissionDomainToDao(s domain.Submission) (dao.Submission, error) {
	words, err := json.Marshal(s.WordsFound)
	if err != nil {
		return dao.Submission{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	return dao.Submission{
		ID:             s.ID,
		EventID:        s.EventID,
		UserID:         s.UserID,
		UserName:       s.UserName,
		Contact:        s.Contact,
		IP:             s.IP,
		UserAgent:      s.UserAgent,
		DurationMs:     s.DurationMs,
		WordsFoundJSON: string(words),
		CreatedAt:      s.CreatedAt,
		IsValid:        s.IsValid,
	}, nil
}

func (r *EventRepository) submissionDaoToDomain(s dao.Submission) (domain.Submission, error) {
	var words []string
	if err := json.Unmarshal([]byte(s.WordsFoundJSON), &words); err != nil {
		return domain.Submission{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return domain.Submission{
		ID:         s.ID,
		EventID:    s.EventID,
		UserID:     s.UserID,
		UserName:   s.UserName,
		Contact:    s.Contact,
		IP:         s.IP,
		UserAgent:  s.UserAgent,
		DurationMs: s.DurationMs,
		WordsFound: words,
		CreatedAt:  s.CreatedAt,
		IsValid:    s.IsValid,
	}, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (domain.Event, error) {
	event, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(event)
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	eventDAO, err := r.domainToDao(event)
	if err != nil {
		return domain.Event{}, err
	}

	created, err := r.dao.Insert(ctx, eventDAO)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created)
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	eventDAO, err := r.domainToDao(event)
	if err != nil {
		return domain.Event{}, err
	}

	updated, err := r.dao.Update(ctx, eventDAO)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated)
}

// CreateSubmission persists a submission through the DAO's single-transaction
// admission path. It returns the stored row and how many valid submissions
// the event had before this one.
func (r *EventRepository) CreateSubmission(ctx context.Context, sub domain.Submission, matched bool) (domain.Submission, int64, error) {
	subDAO, err := r.submissionDomainToDao(sub)
	if err != nil {
		return domain.Submission{}, 0, err
	}

	created, priorValid, err := r.dao.InsertSubmission(ctx, subDAO, matched)
	if err != nil {
		return domain.Submission{}, 0, fmt.Errorf("r.dao.InsertSubmission -> %w", err)
	}

	createdDomain, err := r.submissionDaoToDomain(created)
	if err != nil {
		return domain.Submission{}, 0, err
	}

	return createdDomain, priorValid, nil
}

func (r *EventRepository) FindSubmissionsByEventID(ctx context.Context, eventID string) ([]domain.Submission, error) {
	subsDAO, err := r.dao.FindSubmissionsByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSubmissionsByEventID -> %w", err)
	}

	subs := make([]domain.Submission, len(subsDAO))
	for i, subDAO := range subsDAO {
		sub, err := r.submissionDaoToDomain(subDAO)
		if err != nil {
			return nil, err
		}
		subs[i] = sub
	}

	return subs, nil
}
