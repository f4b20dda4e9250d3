package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{Email: "a@example.com", Password: "abcdefg1", ConfirmPassword: "abcdefg1", Name: "Alice"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		edit func(r *SignupRequest)
	}{
		{name: "bad email", edit: func(r *SignupRequest) { r.Email = "nope" }},
		{name: "short password", edit: func(r *SignupRequest) { r.Password, r.ConfirmPassword = "abc1", "abc1" }},
		{name: "no digit", edit: func(r *SignupRequest) { r.Password, r.ConfirmPassword = "abcdefgh", "abcdefgh" }},
		{name: "mismatch", edit: func(r *SignupRequest) { r.ConfirmPassword = "abcdefg2" }},
		{name: "missing name", edit: func(r *SignupRequest) { r.Name = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.edit(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateEventRequest_Validate(t *testing.T) {
	at := time.Date(2025, time.March, 15, 19, 0, 0, 0, time.UTC)
	zero := 0
	before := at.Add(-time.Hour)

	assert.NoError(t, (&CreateEventRequest{Title: "Hike", ScheduledAt: at}).Validate())
	assert.Error(t, (&CreateEventRequest{Title: "Hike"}).Validate())
	assert.Error(t, (&CreateEventRequest{Title: "Hike", ScheduledAt: at, MaxParticipants: &zero}).Validate())
	assert.Error(t, (&CreateEventRequest{Title: "Hike", ScheduledAt: at, Price: -1}).Validate())
	assert.ErrorIs(t, (&CreateEventRequest{Title: "Hike", ScheduledAt: at, EndsAt: &before}).Validate(), errEndsBeforeStart)
}

func TestConfirmPaymentRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ConfirmPaymentRequest{PaymentKey: "pk", OrderID: "event-1-1", Amount: 100}).Validate())
	assert.Error(t, (&ConfirmPaymentRequest{OrderID: "event-1-1", Amount: 100}).Validate())
	assert.Error(t, (&ConfirmPaymentRequest{PaymentKey: "pk", Amount: 100}).Validate())
	assert.Error(t, (&ConfirmPaymentRequest{PaymentKey: "pk", OrderID: "event-1-1"}).Validate())
}
