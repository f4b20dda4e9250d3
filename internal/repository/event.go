package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/community-api/internal/domain"
	"github.com/vietanh2810/community-api/internal/repository/dao"
)

var (
	ErrEventNotFound  = dao.ErrEventNotFound
	ErrShortCodeTaken = dao.ErrShortCodeTaken
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindByShortCode(ctx context.Context, code string) (dao.Event, error)
	FindShortCodesByPrefix(ctx context.Context, prefix string) ([]string, error)
	FindScheduled(ctx context.Context) ([]dao.Event, error)
	FindUncodedDatedBetween(ctx context.Context, from, to time.Time) ([]dao.Event, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindByShortCode(ctx context.Context, code string) (domain.Event, error) {
	found, err := r.dao.FindByShortCode(ctx, code)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByShortCode -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindShortCodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	codes, err := r.dao.FindShortCodesByPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindShortCodesByPrefix -> %w", err)
	}

	return codes, nil
}

func (r *EventRepository) FindScheduled(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindScheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindScheduled -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *EventRepository) FindUncodedDatedBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	found, err := r.dao.FindUncodedDatedBetween(ctx, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindUncodedDatedBetween -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id uint, status domain.EventStatus) error {
	if err := r.dao.UpdateStatus(ctx, id, string(status)); err != nil {
		return fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) domainToDAO(e domain.Event) dao.Event {
	event := dao.Event{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		ScheduledAt:     e.ScheduledAt.UTC(),
		MaxParticipants: e.MaxParticipants,
		Price:           e.Price,
		CreatorID:       e.CreatorID,
		Status:          string(e.Status),
	}
	if event.Status == "" {
		event.Status = dao.EventStatusScheduled
	}
	if e.EndsAt != nil {
		endsAt := e.EndsAt.UTC()
		event.EndsAt = &endsAt
	}
	if e.ShortCode != "" {
		code := e.ShortCode
		event.ShortCode = &code
	}

	return event
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	event := domain.Event{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		ScheduledAt:     e.ScheduledAt,
		EndsAt:          e.EndsAt,
		MaxParticipants: e.MaxParticipants,
		Price:           e.Price,
		CreatorID:       e.CreatorID,
		Status:          domain.EventStatus(e.Status),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.ShortCode != nil {
		event.ShortCode = *e.ShortCode
	}

	return event
}

func (r *EventRepository) daosToDomain(events []dao.Event) []domain.Event {
	result := make([]domain.Event, 0, len(events))
	for _, e := range events {
		result = append(result, r.daoToDomain(e))
	}

	return result
}
