package v1

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/community-api/internal/domain"
	"github.com/vietanh2810/community-api/internal/pkg/payment"
	"github.com/vietanh2810/community-api/internal/service"
)

func newPaymentRouter(svc PaymentService, userID uint) http.Handler {
	h := NewPaymentHandler(svc)
	r := newTestRouter(userID)
	r.POST("/payments/confirm", h.HandleConfirm)

	return r
}

var confirmBody = map[string]any{
	"paymentKey": "pk_1",
	"orderId":    "event-3-1700000000000",
	"amount":     5000,
}

func TestPaymentHandler_HandleConfirm(t *testing.T) {
	t.Run("success returns the provider payload", func(t *testing.T) {
		regID := uuid.New()
		svc := &mockPaymentService{}
		svc.On("Confirm", mock.Anything, domain.PaymentConfirmation{
			PaymentKey: "pk_1",
			OrderID:    "event-3-1700000000000",
			Amount:     5000,
		}, (*uint)(nil)).Return(domain.PaymentReceipt{
			Registration: domain.Registration{ID: regID},
			Payment:      domain.PaymentResult{Raw: map[string]any{"status": "DONE"}},
		}, nil)

		rec := doJSON(t, newPaymentRouter(svc, 0), http.MethodPost, "/payments/confirm", confirmBody)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, regID.String(), body["registrationId"])
		assert.Equal(t, map[string]any{"status": "DONE"}, body["paymentData"])
		svc.AssertExpectations(t)
	})

	t.Run("authenticated payer is passed through", func(t *testing.T) {
		svc := &mockPaymentService{}
		svc.On("Confirm", mock.Anything, mock.Anything, uintPtr(4)).Return(domain.PaymentReceipt{}, nil)

		rec := doJSON(t, newPaymentRouter(svc, 4), http.MethodPost, "/payments/confirm", confirmBody)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("provider rejection is relayed", func(t *testing.T) {
		svc := &mockPaymentService{}
		svc.On("Confirm", mock.Anything, mock.Anything, mock.Anything).Return(domain.PaymentReceipt{},
			fmt.Errorf("s.provider.Confirm -> %w", &payment.ProviderError{StatusCode: 403, Code: "REJECT_CARD", Message: "card rejected"}))

		rec := doJSON(t, newPaymentRouter(svc, 0), http.MethodPost, "/payments/confirm", confirmBody)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "card rejected", decodeBody(t, rec)["error"])
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid order id", service.ErrInvalidOrderID, http.StatusBadRequest},
		{"amount mismatch", service.ErrAmountMismatch, http.StatusBadRequest},
		{"not configured", service.ErrPaymentNotConfigured, http.StatusInternalServerError},
		{"missing event", fmt.Errorf("s.events.FindByID -> %w", service.ErrEventNotFound), http.StatusNotFound},
		{"full after capture", fmt.Errorf("s.regs.Register -> %w", service.ErrEventFull), http.StatusConflict},
		{"duplicate after capture", fmt.Errorf("s.regs.Register -> %w", service.ErrAlreadyRegistered), http.StatusConflict},
		{"closed before capture", fmt.Errorf("s.checkAvailable -> %w", service.ErrEventClosed), http.StatusConflict},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockPaymentService{}
			svc.On("Confirm", mock.Anything, mock.Anything, mock.Anything).Return(domain.PaymentReceipt{}, tt.err)

			rec := doJSON(t, newPaymentRouter(svc, 0), http.MethodPost, "/payments/confirm", confirmBody)

			assert.Equal(t, tt.status, rec.Code)
		})
	}

	t.Run("wrapped client error renders the reason only", func(t *testing.T) {
		svc := &mockPaymentService{}
		svc.On("Confirm", mock.Anything, mock.Anything, mock.Anything).Return(domain.PaymentReceipt{},
			fmt.Errorf("s.parseOrder -> %w", service.ErrAmountMismatch))

		rec := doJSON(t, newPaymentRouter(svc, 0), http.MethodPost, "/payments/confirm", confirmBody)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, service.ErrAmountMismatch.Error(), decodeBody(t, rec)["error"])
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := &mockPaymentService{}

		rec := doJSON(t, newPaymentRouter(svc, 0), http.MethodPost, "/payments/confirm", map[string]any{"paymentKey": "pk_1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
	})
}
