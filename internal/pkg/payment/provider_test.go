package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/community-api/internal/config"
)

func TestNew(t *testing.T) {
	_, err := New(&config.PaymentConfig{Provider: ProviderToss})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = New(nil)
	assert.ErrorIs(t, err, ErrNotConfigured)

	p, err := New(&config.PaymentConfig{Provider: ProviderToss, SecretKey: "sk", ConfirmURL: "http://localhost"})
	require.NoError(t, err)
	assert.IsType(t, &TossClient{}, p)

	p, err = New(&config.PaymentConfig{Provider: ProviderStripe, SecretKey: "sk_test"})
	require.NoError(t, err)
	assert.IsType(t, &StripeClient{}, p)

	_, err = New(&config.PaymentConfig{Provider: "paypal", SecretKey: "sk"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
