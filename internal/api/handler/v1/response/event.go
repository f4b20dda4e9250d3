package response

import "github.com/google/uuid"

type ShortCodeResponse struct {
	EventID   uint   `json:"event_id"`
	ShortCode string `json:"short_code"`
}

type PaymentConfirmResponse struct {
	Success        bool      `json:"success"`
	RegistrationID uuid.UUID `json:"registrationId"`
	PaymentData    any       `json:"paymentData"`
}
