package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vietanh2810/community-api/internal/domain"
	"github.com/vietanh2810/community-api/internal/repository"
)

var (
	ErrEventFull                = repository.ErrEventFull
	ErrEventClosed              = repository.ErrEventClosed
	ErrAlreadyRegistered        = repository.ErrAlreadyRegistered
	ErrRegistrationNotFound     = repository.ErrRegistrationNotFound
	ErrInsufficientPoints       = repository.ErrInsufficientPoints
	ErrRedemptionTooSmall       = domain.ErrRedemptionTooSmall
	ErrRedemptionExceedsCost    = domain.ErrRedemptionExceedsCost
	ErrRedemptionExceedsBalance = domain.ErrRedemptionExceedsBalance
	ErrGuestInfoRequired        = errors.New("guest name and contact are required")
	ErrGuestCannotRedeem        = errors.New("guests cannot redeem points")
)

type RegistrationRepository interface {
	Register(ctx context.Context, reg domain.Registration, points *domain.PointsLedgerEntry) (domain.Registration, error)
	Delete(ctx context.Context, eventID, userID uint) error
}

type RegistrationEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type RegistrationUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type RegistrationService struct {
	repo   RegistrationRepository
	events RegistrationEventRepository
	users  RegistrationUserRepository
}

func NewRegistrationService(
	repo RegistrationRepository,
	events RegistrationEventRepository,
	users RegistrationUserRepository,
) *RegistrationService {
	return &RegistrationService{
		repo:   repo,
		events: events,
		users:  users,
	}
}

// Register admits a member or a guest to an event.
//
// Members who redeem nothing earn domain.ParticipationAward points. Members who redeem pay with
// points instead and earn nothing. Either way the registration and its ledger entry commit together.
func (s *RegistrationService) Register(ctx context.Context, req domain.RegistrationRequest) (domain.Registration, error) {
	// Rejected before any storage round trip.
	if err := domain.CheckRedemptionMinimum(req.PointsToUse); err != nil {
		return domain.Registration{}, err
	}

	if req.UserID == nil {
		return s.registerGuest(ctx, req)
	}

	reg := domain.Registration{
		EventID: req.EventID,
		UserID:  req.UserID,
		Status:  domain.RegistrationConfirmed,
	}

	if req.PointsToUse == 0 {
		created, err := s.repo.Register(ctx, reg, &domain.PointsLedgerEntry{
			UserID:      *req.UserID,
			Amount:      domain.ParticipationAward,
			Type:        domain.LedgerEventParticipation,
			Description: "event participation",
		})
		if err != nil {
			return domain.Registration{}, fmt.Errorf("s.repo.Register -> %w", err)
		}

		return created, nil
	}

	return s.registerWithPoints(ctx, reg, req.PointsToUse)
}

func (s *RegistrationService) registerGuest(ctx context.Context, req domain.RegistrationRequest) (domain.Registration, error) {
	if req.PointsToUse > 0 {
		return domain.Registration{}, ErrGuestCannotRedeem
	}

	name := strings.TrimSpace(req.GuestName)
	contact := strings.TrimSpace(req.GuestContact)
	if name == "" || contact == "" {
		return domain.Registration{}, ErrGuestInfoRequired
	}

	created, err := s.repo.Register(ctx, domain.Registration{
		EventID:      req.EventID,
		GuestName:    name,
		GuestContact: contact,
		Status:       domain.RegistrationConfirmed,
	}, nil)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.Register -> %w", err)
	}

	return created, nil
}

// registerWithPoints pre-checks the amount against the current balance and price. The write
// re-checks the balance under a row lock, so a concurrent spend cannot overdraw it.
func (s *RegistrationService) registerWithPoints(ctx context.Context, reg domain.Registration, amount int) (domain.Registration, error) {
	var (
		event domain.Event
		user  domain.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if event, err = s.events.FindByID(gctx, reg.EventID); err != nil {
			return fmt.Errorf("s.events.FindByID -> %w", err)
		}

		return nil
	})
	g.Go(func() error {
		var err error
		if user, err = s.users.FindByID(gctx, *reg.UserID); err != nil {
			return fmt.Errorf("s.users.FindByID -> %w", err)
		}

		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Registration{}, err
	}

	if err := domain.ValidateRedemption(user.Points, event.PointCost(), amount); err != nil {
		return domain.Registration{}, err
	}

	reg.PointsUsed = amount
	created, err := s.repo.Register(ctx, reg, &domain.PointsLedgerEntry{
		UserID:      user.ID,
		Amount:      -amount,
		Type:        domain.LedgerRegistrationWithPoints,
		Description: fmt.Sprintf("redeemed for %s", event.Title),
	})
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.Register -> %w", err)
	}

	return created, nil
}

// Cancel removes the member's registration. Points earned or spent are not reverted.
func (s *RegistrationService) Cancel(ctx context.Context, eventID, userID uint) error {
	if err := s.repo.Delete(ctx, eventID, userID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
