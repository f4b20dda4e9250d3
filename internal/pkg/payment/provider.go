// Package payment confirms charges with an external payment provider.
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/vietanh2810/community-api/internal/config"
	"github.com/vietanh2810/community-api/internal/domain"
)

const (
	ProviderToss   = "toss"
	ProviderStripe = "stripe"
)

var (
	ErrNotConfigured   = errors.New("payment is not configured")
	ErrUnknownProvider = errors.New("unknown payment provider")
)

type Provider interface {
	Confirm(ctx context.Context, req domain.PaymentConfirmation) (domain.PaymentResult, error)
}

// ProviderError is a rejection reported by the provider itself.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment provider rejected the payment (%d %s): %s", e.StatusCode, e.Code, e.Message)
	}

	return fmt.Sprintf("payment provider rejected the payment (%d): %s", e.StatusCode, e.Message)
}

// HTTPStatus falls back to 502 when the provider did not give a usable status.
func (e *ProviderError) HTTPStatus() int {
	if e.StatusCode < http.StatusBadRequest {
		return http.StatusBadGateway
	}

	return e.StatusCode
}

func New(conf *config.PaymentConfig) (Provider, error) {
	if !conf.Enabled() {
		return nil, ErrNotConfigured
	}

	switch conf.Provider {
	case ProviderToss, "":
		return NewTossClient(conf.SecretKey, conf.ConfirmURL, &http.Client{Timeout: conf.Timeout}), nil
	case ProviderStripe:
		return NewStripeClient(conf.SecretKey, nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, conf.Provider)
	}
}
