package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrInsufficientPoints = errors.New("insufficient points")

type PointsLedgerEntry struct {
	ID uint `gorm:"primaryKey"`

	UserID      uint   `gorm:"not null;index"`
	Amount      int    `gorm:"not null"`
	Type        string `gorm:"not null"`
	Description string
	EventID     *uint `gorm:"index"`

	CreatedAt time.Time `gorm:"not null"`
}

func (PointsLedgerEntry) TableName() string {
	return "points_ledger"
}

type PointsDAO struct {
	db *gorm.DB
}

func NewPointsDAO(db *gorm.DB) *PointsDAO {
	return &PointsDAO{
		db: db,
	}
}

// Adjust appends entry and moves the balance by entry.Amount in one transaction.
// It returns the new balance.
func (d *PointsDAO) Adjust(ctx context.Context, entry PointsLedgerEntry) (int, error) {
	var balance int
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		balance, err = applyPoints(tx, &entry)

		return err
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}

func (d *PointsDAO) FindByUserID(ctx context.Context, userID uint) ([]PointsLedgerEntry, error) {
	var entries []PointsLedgerEntry

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// applyPoints must run inside tx. It locks the profile row so the balance check and the
// update see the same value.
func applyPoints(tx *gorm.DB, entry *PointsLedgerEntry) (int, error) {
	var profile Profile
	if err := tx.Clauses(forUpdate).First(&profile, "user_id = ?", entry.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}

		return 0, err
	}

	balance := profile.Points + entry.Amount
	if balance < 0 {
		return 0, ErrInsufficientPoints
	}

	result := tx.Model(&Profile{}).
		Where("user_id = ?", entry.UserID).
		Update("points", gorm.Expr("points + ?", entry.Amount))
	if result.Error != nil {
		return 0, result.Error
	}

	if err := tx.Create(entry).Error; err != nil {
		return 0, err
	}

	return balance, nil
}
