package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vietanh2810/community-api/internal/domain"
	"github.com/vietanh2810/community-api/internal/pkg/shortcode"
	"github.com/vietanh2810/community-api/internal/repository"
)

const maxShortCodeAttempts = 3

var (
	ErrEventNotFound    = repository.ErrEventNotFound
	ErrInvalidEvent     = errors.New("invalid event")
	ErrShortCodeTaken   = repository.ErrShortCodeTaken
	errNoShortCodesLeft = errors.New("no short code left for this day")
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindShortCodesByPrefix(ctx context.Context, prefix string) ([]string, error)
	FindScheduled(ctx context.Context) ([]domain.Event, error)
	FindUncodedDatedBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error)
	UpdateStatus(ctx context.Context, id uint, status domain.EventStatus) error
	Delete(ctx context.Context, id uint) error
}

type EventRegistrationRepository interface {
	CountConfirmed(ctx context.Context, eventID uint) (int, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.Registration, error)
}

type EventService struct {
	repo    EventRepository
	regRepo EventRegistrationRepository
	now     func() time.Time
}

func NewEventService(repo EventRepository, regRepo EventRegistrationRepository) *EventService {
	return &EventService{
		repo:    repo,
		regRepo: regRepo,
		now:     time.Now,
	}
}

// CreateEvent stores the event with the next free short code for its calendar day.
func (s *EventService) CreateEvent(ctx context.Context, event domain.Event, creator domain.User) (domain.Event, error) {
	if err := validateEvent(event); err != nil {
		return domain.Event{}, err
	}

	event.ID = 0
	event.CreatorID = creator.ID
	event.Status = domain.EventScheduled

	for attempt := 1; ; attempt++ {
		code, err := s.nextShortCode(ctx, event.ScheduledAt)
		switch {
		case errors.Is(err, errNoShortCodesLeft):
			zap.L().Warn("creating event without short code", zap.Time("scheduled_at", event.ScheduledAt))
		case err != nil:
			return domain.Event{}, err
		}
		event.ShortCode = code

		created, err := s.repo.Create(ctx, event)
		if err == nil {
			return created, nil
		}
		// Another event took the same code between the lookup and the insert.
		if !errors.Is(err, ErrShortCodeTaken) || attempt == maxShortCodeAttempts {
			return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
		}
	}
}

// GetEvent reads the event and its confirmed count concurrently.
func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.EventDetails, error) {
	var (
		event     domain.Event
		confirmed int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if event, err = s.repo.FindByID(gctx, id); err != nil {
			return fmt.Errorf("s.repo.FindByID -> %w", err)
		}

		return nil
	})
	g.Go(func() error {
		var err error
		if confirmed, err = s.regRepo.CountConfirmed(gctx, id); err != nil {
			return fmt.Errorf("s.regRepo.CountConfirmed -> %w", err)
		}

		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.EventDetails{}, err
	}

	return domain.EventDetails{
		Event:          event,
		ConfirmedCount: confirmed,
		IsFull:         event.IsFull(confirmed),
	}, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindScheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindScheduled -> %w", err)
	}

	return events, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint, actor domain.User) error {
	if _, err := s.managedEvent(ctx, id, actor); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// CompleteEvent only closes the event. Participation points are granted when the member registers.
func (s *EventService) CompleteEvent(ctx context.Context, id uint, actor domain.User) (domain.Event, error) {
	event, err := s.managedEvent(ctx, id, actor)
	if err != nil {
		return domain.Event{}, err
	}

	if err = s.repo.UpdateStatus(ctx, id, domain.EventCompleted); err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}
	event.Status = domain.EventCompleted

	return event, nil
}

func (s *EventService) GetRegistrations(ctx context.Context, id uint, actor domain.User) ([]domain.Registration, error) {
	if _, err := s.managedEvent(ctx, id, actor); err != nil {
		return nil, err
	}

	regs, err := s.regRepo.FindByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("s.regRepo.FindByEventID -> %w", err)
	}

	return regs, nil
}

func (s *EventService) managedEvent(ctx context.Context, id uint, actor domain.User) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !event.CanBeManagedBy(actor) {
		return domain.Event{}, ErrPermissionDenied
	}

	return event, nil
}

// nextShortCode picks one past the highest ordinal already taken on the same month/day. Uncoded
// legacy events still answer ordinals 1..n through Resolve, so those are never handed out.
func (s *EventService) nextShortCode(ctx context.Context, at time.Time) (string, error) {
	at = at.UTC()

	codes, err := s.repo.FindShortCodesByPrefix(ctx, shortcode.Prefix(at.Month(), at.Day()))
	if err != nil {
		return "", fmt.Errorf("s.repo.FindShortCodesByPrefix -> %w", err)
	}

	legacy, err := legacyEvents(ctx, s.repo, s.now(), at.Month(), at.Day())
	if err != nil {
		return "", err
	}

	taken := highestOrdinal(codes)
	if len(legacy) > taken {
		taken = len(legacy)
	}

	code, err := shortcode.Encode(at.Month(), at.Day(), taken+1)
	if err != nil {
		return "", errNoShortCodesLeft
	}

	return code, nil
}

func validateEvent(e domain.Event) error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidEvent)
	case e.ScheduledAt.IsZero():
		return fmt.Errorf("%w: scheduled_at is required", ErrInvalidEvent)
	case e.EndsAt != nil && e.EndsAt.Before(e.ScheduledAt):
		return fmt.Errorf("%w: ends_at is before scheduled_at", ErrInvalidEvent)
	case e.MaxParticipants != nil && *e.MaxParticipants < 1:
		return fmt.Errorf("%w: max_participants must be positive", ErrInvalidEvent)
	case e.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidEvent)
	}

	return nil
}
