package domain

import (
	"fmt"
	"time"
)

type EventStatus string

const (
	EventScheduled EventStatus = "scheduled"
	EventCompleted EventStatus = "completed"
)

type Event struct {
	ID              uint        `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Location        string      `json:"location"`
	ScheduledAt     time.Time   `json:"scheduled_at"`
	EndsAt          *time.Time  `json:"ends_at,omitempty"`
	MaxParticipants *int        `json:"max_participants"`
	Price           int         `json:"price"`
	CreatorID       uint        `json:"creator_id"`
	Status          EventStatus `json:"status"`
	ShortCode       string      `json:"short_code,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// EventDetails is an event plus its current confirmed registration count.
type EventDetails struct {
	Event
	ConfirmedCount int  `json:"confirmed_count"`
	IsFull         bool `json:"is_full"`
}

// IsFull reports whether confirmed registrations reached capacity. A nil capacity is unlimited.
func (e Event) IsFull(confirmed int) bool {
	return e.MaxParticipants != nil && confirmed >= *e.MaxParticipants
}

func (e Event) IsOpen() bool {
	return e.Status == EventScheduled
}

// PointCost is the number of points that fully covers the event price (1 point = 1 unit).
func (e Event) PointCost() int {
	return e.Price
}

func (e Event) CanBeManagedBy(u User) bool {
	return e.CreatorID == u.ID || u.IsStaff()
}

// OrderID builds the payment order id for this event, in the event-{id}-{unix millis} format.
func (e Event) OrderID(at time.Time) string {
	return fmt.Sprintf("event-%d-%d", e.ID, at.UnixMilli())
}
