package domain

import (
	"errors"
	"time"
)

const (
	// ParticipationAward is credited for every authenticated registration that does not redeem points.
	ParticipationAward = 10
	// MinRedemption is the smallest non-zero amount of points that can be redeemed at registration.
	MinRedemption = 100
)

type LedgerType string

const (
	LedgerEventParticipation     LedgerType = "event_participation"
	LedgerRegistrationWithPoints LedgerType = "event_registration_with_points"
	LedgerAdminAdjustment        LedgerType = "admin_adjustment"
)

var (
	ErrRedemptionTooSmall       = errors.New("at least 100 points must be redeemed")
	ErrRedemptionExceedsBalance = errors.New("redemption exceeds points balance")
	ErrRedemptionExceedsCost    = errors.New("redemption exceeds event point cost")
)

// PointsLedgerEntry is an append-only balance change.
type PointsLedgerEntry struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	Amount      int        `json:"amount"`
	Type        LedgerType `json:"type"`
	Description string     `json:"description"`
	EventID     *uint      `json:"event_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CheckRedemptionMinimum rejects amounts in (0, MinRedemption). It needs no stored state,
// so callers run it before touching storage.
func CheckRedemptionMinimum(amount int) error {
	if amount < 0 || (amount > 0 && amount < MinRedemption) {
		return ErrRedemptionTooSmall
	}

	return nil
}

// ValidateRedemption bounds amount by min(balance, cost).
func ValidateRedemption(balance, cost, amount int) error {
	if err := CheckRedemptionMinimum(amount); err != nil {
		return err
	}
	if amount > cost {
		return ErrRedemptionExceedsCost
	}
	if amount > balance {
		return ErrRedemptionExceedsBalance
	}

	return nil
}
