package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"

	"github.com/vietanh2810/community-api/internal/domain"
)

const stripeOrderIDKey = "order_id"

// StripeClient treats the payment key as a PaymentIntent id. The intent must carry the
// order id in its metadata and must have been created for the same amount.
type StripeClient struct {
	api *client.API
}

// NewStripeClient uses the default Stripe backends when backends is nil.
func NewStripeClient(secretKey string, backends *stripe.Backends) *StripeClient {
	return &StripeClient{
		api: client.New(secretKey, backends),
	}
}

func (c *StripeClient) Confirm(ctx context.Context, req domain.PaymentConfirmation) (domain.PaymentResult, error) {
	getParams := &stripe.PaymentIntentParams{}
	getParams.Context = ctx
	getParams.AddExpand("customer")

	pi, err := c.api.PaymentIntents.Get(req.PaymentKey, getParams)
	if err != nil {
		return domain.PaymentResult{}, stripeErr("c.api.PaymentIntents.Get", err)
	}

	if pi.Status == stripe.PaymentIntentStatusRequiresConfirmation {
		confirmParams := &stripe.PaymentIntentConfirmParams{}
		confirmParams.Context = ctx
		confirmParams.AddExpand("customer")

		pi, err = c.api.PaymentIntents.Confirm(req.PaymentKey, confirmParams)
		if err != nil {
			return domain.PaymentResult{}, stripeErr("c.api.PaymentIntents.Confirm", err)
		}
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return domain.PaymentResult{}, &ProviderError{
			StatusCode: http.StatusPaymentRequired,
			Code:       string(pi.Status),
			Message:    "payment has not succeeded",
		}
	}
	if pi.Metadata[stripeOrderIDKey] != req.OrderID {
		return domain.PaymentResult{}, &ProviderError{
			StatusCode: http.StatusBadRequest,
			Code:       "order_mismatch",
			Message:    "payment does not belong to this order",
		}
	}
	if pi.Amount != int64(req.Amount) {
		return domain.PaymentResult{}, &ProviderError{
			StatusCode: http.StatusBadRequest,
			Code:       "amount_mismatch",
			Message:    "payment amount does not match",
		}
	}

	result := domain.PaymentResult{
		PaymentKey:    pi.ID,
		OrderID:       req.OrderID,
		TotalAmount:   int(pi.Amount),
		Status:        string(pi.Status),
		CustomerEmail: pi.ReceiptEmail,
		Raw: map[string]any{
			"id":       pi.ID,
			"amount":   pi.Amount,
			"currency": pi.Currency,
			"status":   pi.Status,
			"metadata": pi.Metadata,
		},
	}
	if len(pi.PaymentMethodTypes) > 0 {
		result.Method = pi.PaymentMethodTypes[0]
	}
	if pi.Customer != nil {
		result.CustomerName = pi.Customer.Name
		result.CustomerPhone = pi.Customer.Phone
		if pi.Customer.Email != "" {
			result.CustomerEmail = pi.Customer.Email
		}
	}

	return result, nil
}

func stripeErr(op string, err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		return &ProviderError{
			StatusCode: sErr.HTTPStatusCode,
			Code:       string(sErr.Code),
			Message:    sErr.Msg,
		}
	}

	return fmt.Errorf("%s -> %w", op, err)
}
