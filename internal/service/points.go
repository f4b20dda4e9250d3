package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vietanh2810/community-api/internal/domain"
)

var ErrInvalidAdjustment = errors.New("adjustment amount must not be zero")

type PointsRepository interface {
	Adjust(ctx context.Context, entry domain.PointsLedgerEntry) (int, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.PointsLedgerEntry, error)
}

type PointsService struct {
	repo PointsRepository
}

func NewPointsService(repo PointsRepository) *PointsService {
	return &PointsService{
		repo: repo,
	}
}

// Adjust applies a manual staff correction and returns the new balance.
func (s *PointsService) Adjust(ctx context.Context, actor domain.User, userID uint, amount int, description string) (int, error) {
	if !actor.IsStaff() {
		return 0, ErrPermissionDenied
	}
	if amount == 0 {
		return 0, ErrInvalidAdjustment
	}

	description = strings.TrimSpace(description)
	if description == "" {
		description = fmt.Sprintf("adjusted by user %d", actor.ID)
	}

	balance, err := s.repo.Adjust(ctx, domain.PointsLedgerEntry{
		UserID:      userID,
		Amount:      amount,
		Type:        domain.LedgerAdminAdjustment,
		Description: description,
	})
	if err != nil {
		return 0, fmt.Errorf("s.repo.Adjust -> %w", err)
	}

	return balance, nil
}

func (s *PointsService) History(ctx context.Context, userID uint) ([]domain.PointsLedgerEntry, error) {
	entries, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return entries, nil
}
