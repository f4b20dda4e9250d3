package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/community-api/internal/domain"
	"github.com/vietanh2810/community-api/internal/repository/dao"
)

var ErrInsufficientPoints = dao.ErrInsufficientPoints

type PointsDAO interface {
	Adjust(ctx context.Context, entry dao.PointsLedgerEntry) (int, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.PointsLedgerEntry, error)
}

type PointsRepository struct {
	dao PointsDAO
}

func NewPointsRepository(dao PointsDAO) *PointsRepository {
	return &PointsRepository{
		dao: dao,
	}
}

// Adjust returns the balance after the entry was applied.
func (r *PointsRepository) Adjust(ctx context.Context, entry domain.PointsLedgerEntry) (int, error) {
	balance, err := r.dao.Adjust(ctx, ledgerDomainToDAO(entry))
	if err != nil {
		return 0, fmt.Errorf("r.dao.Adjust -> %w", err)
	}

	return balance, nil
}

func (r *PointsRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.PointsLedgerEntry, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	entries := make([]domain.PointsLedgerEntry, 0, len(found))
	for _, e := range found {
		entries = append(entries, domain.PointsLedgerEntry{
			ID:          e.ID,
			UserID:      e.UserID,
			Amount:      e.Amount,
			Type:        domain.LedgerType(e.Type),
			Description: e.Description,
			EventID:     e.EventID,
			CreatedAt:   e.CreatedAt,
		})
	}

	return entries, nil
}

func ledgerDomainToDAO(e domain.PointsLedgerEntry) dao.PointsLedgerEntry {
	return dao.PointsLedgerEntry{
		UserID:      e.UserID,
		Amount:      e.Amount,
		Type:        string(e.Type),
		Description: e.Description,
		EventID:     e.EventID,
	}
}
