package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vietanh2810/community-api/internal/domain"
)

var (
	ErrInvalidPaymentRequest = errors.New("paymentKey, orderId and amount are required")
	ErrInvalidOrderID        = domain.ErrInvalidOrderID
	ErrPaymentNotConfigured  = errors.New("payment is not configured")
	ErrAmountMismatch        = errors.New("amount does not match the event price")
)

type PaymentProvider interface {
	Confirm(ctx context.Context, req domain.PaymentConfirmation) (domain.PaymentResult, error)
}

type PaymentEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type PaymentRegistrationRepository interface {
	Register(ctx context.Context, reg domain.Registration, points *domain.PointsLedgerEntry) (domain.Registration, error)
	CountConfirmed(ctx context.Context, eventID uint) (int, error)
}

type PaymentService struct {
	provider PaymentProvider
	events   PaymentEventRepository
	regs     PaymentRegistrationRepository
}

// NewPaymentService accepts a nil provider; Confirm then fails with ErrPaymentNotConfigured.
func NewPaymentService(provider PaymentProvider, events PaymentEventRepository, regs PaymentRegistrationRepository) *PaymentService {
	return &PaymentService{
		provider: provider,
		events:   events,
		regs:     regs,
	}
}

// Confirm captures the payment with the provider and then registers the payer.
//
// The charge is never reversed. When the registration fails after a successful capture (event
// filled up, duplicate confirmation) the error is returned and logged for manual reconciliation.
func (s *PaymentService) Confirm(ctx context.Context, req domain.PaymentConfirmation, userID *uint) (domain.PaymentReceipt, error) {
	req.PaymentKey = strings.TrimSpace(req.PaymentKey)
	req.OrderID = strings.TrimSpace(req.OrderID)
	if req.PaymentKey == "" || req.OrderID == "" || req.Amount <= 0 {
		return domain.PaymentReceipt{}, ErrInvalidPaymentRequest
	}

	eventID, err := domain.ParseOrderID(req.OrderID)
	if err != nil {
		return domain.PaymentReceipt{}, err
	}

	if s.provider == nil {
		return domain.PaymentReceipt{}, ErrPaymentNotConfigured
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return domain.PaymentReceipt{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}
	if req.Amount != event.Price {
		return domain.PaymentReceipt{}, ErrAmountMismatch
	}
	if err = s.checkAvailable(ctx, event); err != nil {
		return domain.PaymentReceipt{}, err
	}

	result, err := s.provider.Confirm(ctx, req)
	if err != nil {
		return domain.PaymentReceipt{}, fmt.Errorf("s.provider.Confirm -> %w", err)
	}

	reg := domain.Registration{
		EventID:       event.ID,
		UserID:        userID,
		Status:        domain.RegistrationConfirmed,
		PaymentStatus: domain.PaymentStatusPaid,
		PaymentKey:    req.PaymentKey,
		OrderID:       req.OrderID,
		AmountPaid:    req.Amount,
	}
	if userID == nil {
		reg.GuestName = result.CustomerName
		reg.GuestContact = result.CustomerContact()
		if reg.GuestName == "" {
			reg.GuestName = req.OrderID
		}
		if reg.GuestContact == "" {
			zap.L().Warn("paid guest registration without contact",
				zap.String("payment_key", req.PaymentKey),
				zap.String("order_id", req.OrderID),
			)
		}
	}

	created, err := s.regs.Register(ctx, reg, nil)
	if err != nil {
		zap.L().Error("payment captured but registration failed",
			zap.String("payment_key", req.PaymentKey),
			zap.String("order_id", req.OrderID),
			zap.Int("amount", req.Amount),
			zap.Uint("event_id", event.ID),
			zap.Error(err),
		)

		return domain.PaymentReceipt{}, fmt.Errorf("s.regs.Register -> %w", err)
	}

	return domain.PaymentReceipt{
		Registration: created,
		Payment:      result,
	}, nil
}

// checkAvailable fails fast before the payer is charged. Register re-checks both under the event lock.
func (s *PaymentService) checkAvailable(ctx context.Context, event domain.Event) error {
	if !event.IsOpen() {
		return ErrEventClosed
	}
	if event.MaxParticipants == nil {
		return nil
	}

	confirmed, err := s.regs.CountConfirmed(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("s.regs.CountConfirmed -> %w", err)
	}
	if event.IsFull(confirmed) {
		return ErrEventFull
	}

	return nil
}
