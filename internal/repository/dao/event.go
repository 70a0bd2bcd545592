package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventIDExists = errors.New("event id already exists")
)

type Event struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	WordsJSON string `gorm:"column:words_json;not null"`
	GridSize  int    `gorm:"not null;default:12"`
	WinnerCap int    `gorm:"not null;default:100"`
	StartAt   *int64
	EndAt     *int64
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Submission struct {
	ID             string `gorm:"primaryKey"`
	EventID        string `gorm:"not null;index"`
	UserID         string `gorm:"not null"`
	UserName       string
	Contact        string
	IP             string
	UserAgent      string
	DurationMs     int64     `gorm:"not null"`
	WordsFoundJSON string    `gorm:"column:words_found_json;not null"`
	CreatedAt      time.Time `gorm:"not null"`
	IsValid        bool      `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) FindByID(ctx context.Context, id string) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Event{}, ErrEventIDExists
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", event.ID).
		Select("name", "words_json", "grid_size", "winner_cap", "start_at", "end_at", "is_active").
		Updates(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, event.ID)
}

// InsertSubmission runs the quota admission and the insert as one
// transaction. The event row is locked FOR UPDATE first, so the winner
// count cannot move between the read and the insert and the cap holds
// under concurrent submitters. The row is stored either way, for audit;
// only is_valid carries the outcome. It returns the stored row plus the
// number of valid submissions that preceded it.
func (d *EventDAO) InsertSubmission(ctx context.Context, sub Submission, matched bool) (Submission, int64, error) {
	var priorValid int64

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, "id = ?", sub.EventID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}

			return result.Error
		}

		result = tx.Model(&Submission{}).
			Where("event_id = ? AND is_valid = ?", sub.EventID, true).
			Count(&priorValid)
		if result.Error != nil {
			return result.Error
		}

		sub.IsValid = matched && priorValid < int64(event.WinnerCap)

		return tx.Create(&sub).Error
	})
	if err != nil {
		return Submission{}, 0, err
	}

	return sub, priorValid, nil
}

func (d *EventDAO) FindSubmissionsByEventID(ctx context.Context, eventID string) ([]Submission, error) {
	var subs []Submission

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&subs)
	if result.Error != nil {
		return nil, result.Error
	}

	return subs, nil
}
