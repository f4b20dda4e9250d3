package domain

import (
	"time"

	"github.com/google/uuid"
)

type RegistrationStatus string

const (
	RegistrationConfirmed RegistrationStatus = "confirmed"
	// RegistrationWaitlist exists in storage but no write path produces it; full events reject instead.
	RegistrationWaitlist RegistrationStatus = "waitlist"
)

const PaymentStatusPaid = "paid"

type Registration struct {
	ID               uuid.UUID          `json:"id"`
	EventID          uint               `json:"event_id"`
	UserID           *uint              `json:"user_id,omitempty"`
	GuestName        string             `json:"guest_name,omitempty"`
	GuestContact     string             `json:"guest_contact,omitempty"`
	Status           RegistrationStatus `json:"status"`
	WaitlistPosition *int               `json:"waitlist_position,omitempty"`
	PaymentStatus    string             `json:"payment_status,omitempty"`
	PaymentKey       string             `json:"payment_key,omitempty"`
	OrderID          string             `json:"order_id,omitempty"`
	AmountPaid       int                `json:"amount_paid,omitempty"`
	PointsUsed       int                `json:"points_used,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

func (r Registration) IsGuest() bool {
	return r.UserID == nil
}

// RegistrationRequest is a join request. UserID is nil for guests.
type RegistrationRequest struct {
	EventID      uint
	UserID       *uint
	GuestName    string
	GuestContact string
	PointsToUse  int
}
