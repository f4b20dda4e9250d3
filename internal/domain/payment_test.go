package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderID(t *testing.T) {
	tests := []struct {
		name    string
		orderID string
		want    uint
		wantErr bool
	}{
		{name: "valid", orderID: "event-42-1718000000000", want: 42},
		{name: "missing prefix", orderID: "order-42-1718000000000", wantErr: true},
		{name: "missing timestamp", orderID: "event-42", wantErr: true},
		{name: "non numeric timestamp", orderID: "event-42-abc", wantErr: true},
		{name: "hyphenated id", orderID: "event-4-2-1718000000000", wantErr: true},
		{name: "non numeric id", orderID: "event-abc-1718000000000", wantErr: true},
		{name: "zero id", orderID: "event-0-1718000000000", wantErr: true},
		{name: "empty", orderID: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderID(tt.orderID)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOrderID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvent_OrderIDRoundTrip(t *testing.T) {
	e := Event{ID: 7}

	orderID := e.OrderID(time.UnixMilli(1718000000123))
	assert.Equal(t, "event-7-1718000000123", orderID)

	id, err := ParseOrderID(orderID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, id)
}

func TestPaymentResult_CustomerContact(t *testing.T) {
	assert.Equal(t, "a@b.c", PaymentResult{CustomerEmail: "a@b.c", CustomerPhone: "010"}.CustomerContact())
	assert.Equal(t, "010", PaymentResult{CustomerPhone: "010"}.CustomerContact())
}
