package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/community-api/internal/domain"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, userID uint, role domain.Role) error {
	return m.Called(ctx, userID, role).Error(0)
}

type mockEventRepo struct{ mock.Mock }

func (m *mockEventRepo) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepo) FindByShortCode(ctx context.Context, code string) (domain.Event, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepo) FindShortCodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	codes, _ := args.Get(0).([]string)
	return codes, args.Error(1)
}

func (m *mockEventRepo) FindScheduled(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]domain.Event)
	return events, args.Error(1)
}

func (m *mockEventRepo) FindUncodedDatedBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, from, to)
	events, _ := args.Get(0).([]domain.Event)
	return events, args.Error(1)
}

func (m *mockEventRepo) UpdateStatus(ctx context.Context, id uint, status domain.EventStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockEventRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockRegistrationRepo struct{ mock.Mock }

func (m *mockRegistrationRepo) Register(ctx context.Context, reg domain.Registration, points *domain.PointsLedgerEntry) (domain.Registration, error) {
	args := m.Called(ctx, reg, points)
	return args.Get(0).(domain.Registration), args.Error(1)
}

func (m *mockRegistrationRepo) Delete(ctx context.Context, eventID, userID uint) error {
	return m.Called(ctx, eventID, userID).Error(0)
}

func (m *mockRegistrationRepo) FindByEventID(ctx context.Context, eventID uint) ([]domain.Registration, error) {
	args := m.Called(ctx, eventID)
	regs, _ := args.Get(0).([]domain.Registration)
	return regs, args.Error(1)
}

func (m *mockRegistrationRepo) CountConfirmed(ctx context.Context, eventID uint) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

type mockPointsRepo struct{ mock.Mock }

func (m *mockPointsRepo) Adjust(ctx context.Context, entry domain.PointsLedgerEntry) (int, error) {
	args := m.Called(ctx, entry)
	return args.Int(0), args.Error(1)
}

func (m *mockPointsRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.PointsLedgerEntry, error) {
	args := m.Called(ctx, userID)
	entries, _ := args.Get(0).([]domain.PointsLedgerEntry)
	return entries, args.Error(1)
}

type mockProvider struct{ mock.Mock }

func (m *mockProvider) Confirm(ctx context.Context, req domain.PaymentConfirmation) (domain.PaymentResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.PaymentResult), args.Error(1)
}

func uintPtr(u uint) *uint { return &u }

func intPtr(i int) *int { return &i }
