package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ConfirmPaymentRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int    `json:"amount"`
}

func (req *ConfirmPaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PaymentKey, validation.Required),
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.Amount, validation.Required, validation.Min(1)),
	)
}
