package payment

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/community-api/internal/domain"
)

func TestTossClient_Confirm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("test_sk:")), r.Header.Get("Authorization"))

		var body tossConfirmRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, tossConfirmRequest{PaymentKey: "pk_1", OrderID: "event-3-1718000000000", Amount: 15000}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"paymentKey": "pk_1",
			"orderId": "event-3-1718000000000",
			"totalAmount": 15000,
			"status": "DONE",
			"method": "card",
			"customerName": "Kim",
			"customerMobilePhone": "01012345678"
		}`))
	}))
	defer srv.Close()

	c := NewTossClient("test_sk", srv.URL, srv.Client())
	got, err := c.Confirm(context.Background(), domain.PaymentConfirmation{
		PaymentKey: "pk_1",
		OrderID:    "event-3-1718000000000",
		Amount:     15000,
	})
	require.NoError(t, err)

	assert.Equal(t, "pk_1", got.PaymentKey)
	assert.Equal(t, 15000, got.TotalAmount)
	assert.Equal(t, "DONE", got.Status)
	assert.Equal(t, "Kim", got.CustomerName)
	assert.Equal(t, "01012345678", got.CustomerContact())
	assert.Equal(t, "card", got.Raw["method"])
}

func TestTossClient_ConfirmRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"code":"REJECT_CARD_PAYMENT","message":"limit exceeded"}`))
	}))
	defer srv.Close()

	c := NewTossClient("test_sk", srv.URL, srv.Client())
	_, err := c.Confirm(context.Background(), domain.PaymentConfirmation{PaymentKey: "pk", OrderID: "event-1-1", Amount: 1})

	var pErr *ProviderError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, http.StatusForbidden, pErr.HTTPStatus())
	assert.Equal(t, "REJECT_CARD_PAYMENT", pErr.Code)
	assert.Equal(t, "limit exceeded", pErr.Message)
}

func TestTossClient_ConfirmRejectedWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewTossClient("test_sk", srv.URL, srv.Client())
	_, err := c.Confirm(context.Background(), domain.PaymentConfirmation{PaymentKey: "pk", OrderID: "event-1-1", Amount: 1})

	var pErr *ProviderError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, http.StatusServiceUnavailable, pErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), pErr.Message)
}
