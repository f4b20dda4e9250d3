package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/community-api/internal/domain"
	"github.com/vietanh2810/community-api/internal/repository/dao"
)

var (
	ErrEventFull            = dao.ErrEventFull
	ErrEventClosed          = dao.ErrEventClosed
	ErrAlreadyRegistered    = dao.ErrAlreadyRegistered
	ErrRegistrationNotFound = dao.ErrRegistrationNotFound
)

type RegistrationDAO interface {
	Register(ctx context.Context, reg dao.Registration, points *dao.PointsLedgerEntry) (dao.Registration, error)
	Delete(ctx context.Context, eventID, userID uint) error
	FindByEventID(ctx context.Context, eventID uint) ([]dao.Registration, error)
	CountConfirmed(ctx context.Context, eventID uint) (int, error)
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

// Register stores reg and, when points is non-nil, the matching ledger entry atomically.
func (r *RegistrationRepository) Register(ctx context.Context, reg domain.Registration, points *domain.PointsLedgerEntry) (domain.Registration, error) {
	var entry *dao.PointsLedgerEntry
	if points != nil {
		e := ledgerDomainToDAO(*points)
		entry = &e
	}

	created, err := r.dao.Register(ctx, r.domainToDAO(reg), entry)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.Register -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, eventID, userID uint) error {
	if err := r.dao.Delete(ctx, eventID, userID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *RegistrationRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.Registration, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	regs := make([]domain.Registration, 0, len(found))
	for _, reg := range found {
		regs = append(regs, r.daoToDomain(reg))
	}

	return regs, nil
}

func (r *RegistrationRepository) CountConfirmed(ctx context.Context, eventID uint) (int, error) {
	n, err := r.dao.CountConfirmed(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountConfirmed -> %w", err)
	}

	return n, nil
}

func (r *RegistrationRepository) domainToDAO(reg domain.Registration) dao.Registration {
	d := dao.Registration{
		ID:               reg.ID,
		EventID:          reg.EventID,
		UserID:           reg.UserID,
		GuestName:        reg.GuestName,
		GuestContact:     reg.GuestContact,
		Status:           string(reg.Status),
		WaitlistPosition: reg.WaitlistPosition,
		PaymentKey:       reg.PaymentKey,
		OrderID:          reg.OrderID,
		AmountPaid:       reg.AmountPaid,
		PointsUsed:       reg.PointsUsed,
	}
	if reg.PaymentStatus != "" {
		status := reg.PaymentStatus
		d.PaymentStatus = &status
	}

	return d
}

func (r *RegistrationRepository) daoToDomain(reg dao.Registration) domain.Registration {
	d := domain.Registration{
		ID:               reg.ID,
		EventID:          reg.EventID,
		UserID:           reg.UserID,
		GuestName:        reg.GuestName,
		GuestContact:     reg.GuestContact,
		Status:           domain.RegistrationStatus(reg.Status),
		WaitlistPosition: reg.WaitlistPosition,
		PaymentKey:       reg.PaymentKey,
		OrderID:          reg.OrderID,
		AmountPaid:       reg.AmountPaid,
		PointsUsed:       reg.PointsUsed,
		CreatedAt:        reg.CreatedAt,
	}
	if reg.PaymentStatus != nil {
		d.PaymentStatus = *reg.PaymentStatus
	}

	return d
}
