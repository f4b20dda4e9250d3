package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrShortCodeTaken = errors.New("short code already taken")
)

const (
	EventStatusScheduled = "scheduled"
	EventStatusCompleted = "completed"
)

type Event struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Description string
	Location    string

	ScheduledAt time.Time `gorm:"not null;index"`
	EndsAt      *time.Time

	// Nil means unlimited.
	MaxParticipants *int
	Price           int    `gorm:"not null;default:0"`
	CreatorID       uint   `gorm:"not null;index"`
	Status          string `gorm:"not null;default:scheduled"`

	// Nil for rows created before codes were persisted.
	ShortCode *string `gorm:"uniqueIndex;size:6"`

	Registrations []Registration `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Omit("Registrations").Create(&event)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Event{}, ErrShortCodeTaken
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByShortCode(ctx context.Context, code string) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, "short_code = ?", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// FindShortCodesByPrefix returns every persisted code starting with prefix.
func (d *EventDAO) FindShortCodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var codes []string

	result := d.db.WithContext(ctx).Model(&Event{}).
		Where("short_code LIKE ?", prefix+"%").
		Pluck("short_code", &codes)
	if result.Error != nil {
		return nil, result.Error
	}

	return codes, nil
}

func (d *EventDAO) FindScheduled(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("status = ?", EventStatusScheduled).
		Order("scheduled_at ASC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// FindUncodedDatedBetween returns events without a stored short code with from <= scheduled_at < to,
// oldest creation first.
func (d *EventDAO) FindUncodedDatedBetween(ctx context.Context, from, to time.Time) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("short_code IS NULL").
		Where("scheduled_at >= ? AND scheduled_at < ?", from, to).
		Order("created_at ASC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := d.db.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// Delete removes the event and its registrations. Ledger entries are kept.
func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&Registration{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Event{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}

		return nil
	})
}
