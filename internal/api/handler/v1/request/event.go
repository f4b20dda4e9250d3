package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errEndsBeforeStart = errors.New("ends_at must be after scheduled_at")

type CreateEventRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	ScheduledAt     time.Time  `json:"scheduled_at" format:"date-time"`
	EndsAt          *time.Time `json:"ends_at,omitempty" format:"date-time"`
	MaxParticipants *int       `json:"max_participants,omitempty"`
	Price           int        `json:"price"`
}

func (req *CreateEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Location, validation.Length(0, 200)),
		validation.Field(&req.ScheduledAt, validation.Required),
		validation.Field(&req.MaxParticipants, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&req.Price, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	if req.EndsAt != nil && req.EndsAt.Before(req.ScheduledAt) {
		return errEndsBeforeStart
	}

	return nil
}

type RegisterRequest struct {
	GuestName    string `json:"guest_name,omitempty"`
	GuestContact string `json:"guest_contact,omitempty"`
	PointsToUse  int    `json:"points_to_use,omitempty"`
}

func (req *RegisterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.GuestName, validation.Length(0, 50)),
		validation.Field(&req.GuestContact, validation.Length(0, 100)),
		validation.Field(&req.PointsToUse, validation.Min(0)),
	)
}
