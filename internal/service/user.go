package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/community-api/internal/domain"
	"github.com/vietanh2810/community-api/internal/repository"
)

var (
	ErrUserNotFound     = repository.ErrUserNotFound
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidRole      = errors.New("invalid role")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	UpdateRole(ctx context.Context, userID uint, role domain.Role) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// ChangeRole is reserved to masters. A master cannot demote itself.
func (s *UserService) ChangeRole(ctx context.Context, actor domain.User, userID uint, role domain.Role) (domain.User, error) {
	if actor.Role != domain.RoleMaster || actor.ID == userID {
		return domain.User{}, ErrPermissionDenied
	}

	switch role {
	case domain.RoleMember, domain.RoleAdmin, domain.RoleMaster:
	default:
		return domain.User{}, ErrInvalidRole
	}

	if err := s.repo.UpdateRole(ctx, userID, role); err != nil {
		return domain.User{}, fmt.Errorf("s.repo.UpdateRole -> %w", err)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}
