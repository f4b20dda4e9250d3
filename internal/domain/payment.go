package domain

import (
	"errors"
	"regexp"
	"strconv"
)

var ErrInvalidOrderID = errors.New("invalid order id")

var orderIDPattern = regexp.MustCompile(`^event-([^-]+)-(\d+)$`)

type PaymentConfirmation struct {
	PaymentKey string
	OrderID    string
	Amount     int
}

// PaymentResult is what the provider reports for an approved payment.
type PaymentResult struct {
	PaymentKey    string         `json:"paymentKey"`
	OrderID       string         `json:"orderId"`
	TotalAmount   int            `json:"totalAmount"`
	Status        string         `json:"status"`
	Method        string         `json:"method,omitempty"`
	CustomerName  string         `json:"customerName,omitempty"`
	CustomerEmail string         `json:"customerEmail,omitempty"`
	CustomerPhone string         `json:"customerMobilePhone,omitempty"`
	Raw           map[string]any `json:"raw,omitempty"`
}

// CustomerContact prefers email over phone.
func (p PaymentResult) CustomerContact() string {
	if p.CustomerEmail != "" {
		return p.CustomerEmail
	}

	return p.CustomerPhone
}

type PaymentReceipt struct {
	Registration Registration
	Payment      PaymentResult
}

// ParseOrderID extracts the event id from an event-{eventId}-{timestamp} order id.
func ParseOrderID(orderID string) (uint, error) {
	m := orderIDPattern.FindStringSubmatch(orderID)
	if m == nil {
		return 0, ErrInvalidOrderID
	}

	id, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidOrderID
	}

	return uint(id), nil
}
