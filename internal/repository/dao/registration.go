package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEventFull            = errors.New("event is full")
	ErrEventClosed          = errors.New("event is not open for registration")
	ErrAlreadyRegistered    = errors.New("already registered for this event")
	ErrRegistrationNotFound = errors.New("registration not found")
)

const RegistrationStatusConfirmed = "confirmed"

type Registration struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	EventID uint  `gorm:"not null;uniqueIndex:idx_registrations_event_user"`
	UserID  *uint `gorm:"uniqueIndex:idx_registrations_event_user"`

	GuestName    string
	GuestContact string

	Status           string `gorm:"not null;default:confirmed"`
	WaitlistPosition *int

	PaymentStatus *string
	PaymentKey    string
	OrderID       string `gorm:"index"`
	AmountPaid    int    `gorm:"not null;default:0"`
	PointsUsed    int    `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
}

func (r *Registration) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	return nil
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

// Register inserts reg if the event is open and below capacity. When points is non-nil it is
// applied in the same transaction, so a failed award or debit rolls the registration back.
//
// The event row is locked for the whole transaction, which serializes concurrent writers of
// the same event and keeps the confirmed count accurate.
func (d *RegistrationDAO) Register(ctx context.Context, reg Registration, points *PointsLedgerEntry) (Registration, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		if err := tx.Clauses(forUpdate).First(&event, reg.EventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}

			return err
		}

		if event.Status != EventStatusScheduled {
			return ErrEventClosed
		}

		if reg.UserID != nil {
			var existing int64
			if err := tx.Model(&Registration{}).
				Where("event_id = ? AND user_id = ?", reg.EventID, *reg.UserID).
				Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				return ErrAlreadyRegistered
			}
		}

		if event.MaxParticipants != nil {
			confirmed, err := countConfirmed(tx, event.ID)
			if err != nil {
				return err
			}
			if confirmed >= int64(*event.MaxParticipants) {
				return ErrEventFull
			}
		}

		if reg.Status == "" {
			reg.Status = RegistrationStatusConfirmed
		}
		if err := tx.Create(&reg).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyRegistered
			}

			return err
		}

		if points != nil {
			points.EventID = &event.ID
			if _, err := applyPoints(tx, points); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Registration{}, err
	}

	return reg, nil
}

func (d *RegistrationDAO) Delete(ctx context.Context, eventID, userID uint) error {
	result := d.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&Registration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}

func (d *RegistrationDAO) FindByEventID(ctx context.Context, eventID uint) ([]Registration, error) {
	var regs []Registration

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&regs)
	if result.Error != nil {
		return nil, result.Error
	}

	return regs, nil
}

func (d *RegistrationDAO) CountConfirmed(ctx context.Context, eventID uint) (int, error) {
	n, err := countConfirmed(d.db.WithContext(ctx), eventID)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

func countConfirmed(db *gorm.DB, eventID uint) (int64, error) {
	var n int64
	err := db.Model(&Registration{}).
		Where("event_id = ? AND status = ?", eventID, RegistrationStatusConfirmed).
		Count(&n).Error

	return n, err
}
