package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vietanh2810/community-api/internal/domain"
	"github.com/vietanh2810/community-api/internal/pkg/shortcode"
	"github.com/vietanh2810/community-api/internal/repository"
)

// legacyYears is how many calendar years, the current one included, the legacy lookup scans.
const legacyYears = 10

var ErrShortCodeNotFound = errors.New("short code not found")

type ShortCodeEventRepository interface {
	FindByShortCode(ctx context.Context, code string) (domain.Event, error)
	FindShortCodesByPrefix(ctx context.Context, prefix string) ([]string, error)
	FindUncodedDatedBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error)
}

type legacyEventRepository interface {
	FindUncodedDatedBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error)
}

type ShortCodeService struct {
	repo ShortCodeEventRepository
	now  func() time.Time
}

func NewShortCodeService(repo ShortCodeEventRepository) *ShortCodeService {
	return &ShortCodeService{
		repo: repo,
		now:  time.Now,
	}
}

// Resolve prefers the code stored on the event. Events created before codes were stored
// are found by their creation rank among the uncoded events of that month/day.
//
// Stored ordinals start past the legacy rank range, so a miss at or above the lowest stored
// ordinal is a deleted event and never falls back to ranking.
func (s *ShortCodeService) Resolve(ctx context.Context, code string) (domain.Event, error) {
	c, err := shortcode.Decode(code)
	if err != nil {
		return domain.Event{}, ErrShortCodeNotFound
	}

	event, err := s.repo.FindByShortCode(ctx, c.String())
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, repository.ErrEventNotFound) {
		return domain.Event{}, fmt.Errorf("s.repo.FindByShortCode -> %w", err)
	}

	stored, err := s.repo.FindShortCodesByPrefix(ctx, shortcode.Prefix(c.Month, c.Day))
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindShortCodesByPrefix -> %w", err)
	}
	if lowest := lowestOrdinal(stored); lowest > 0 && c.Ordinal >= lowest {
		return domain.Event{}, ErrShortCodeNotFound
	}

	legacy, err := legacyEvents(ctx, s.repo, s.now(), c.Month, c.Day)
	if err != nil {
		return domain.Event{}, err
	}
	if c.Ordinal > len(legacy) {
		return domain.Event{}, ErrShortCodeNotFound
	}

	return legacy[c.Ordinal-1], nil
}

// legacyEvents lists the uncoded events dated on month/day in the legacyYears window ending with
// now's year, oldest creation first. An event's legacy ordinal is its position plus one.
func legacyEvents(ctx context.Context, repo legacyEventRepository, now time.Time, month time.Month, day int) ([]domain.Event, error) {
	currentYear := now.UTC().Year()
	perYear := make([][]domain.Event, legacyYears)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < legacyYears; i++ {
		i := i
		from := time.Date(currentYear-i, month, day, 0, 0, 0, 0, time.UTC)
		if from.Month() != month || from.Day() != day {
			// Feb 29 outside leap years.
			continue
		}

		g.Go(func() error {
			events, err := repo.FindUncodedDatedBetween(gctx, from, from.AddDate(0, 0, 1))
			if err != nil {
				return fmt.Errorf("repo.FindUncodedDatedBetween -> %w", err)
			}
			perYear[i] = events

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var events []domain.Event
	for _, found := range perYear {
		events = append(events, found...)
	}
	sort.SliceStable(events, func(a, b int) bool {
		if events[a].CreatedAt.Equal(events[b].CreatedAt) {
			return events[a].ID < events[b].ID
		}

		return events[a].CreatedAt.Before(events[b].CreatedAt)
	})

	return events, nil
}

// lowestOrdinal is 0 when codes holds no valid code.
func lowestOrdinal(codes []string) int {
	lowest := 0
	for _, code := range codes {
		c, err := shortcode.Decode(code)
		if err != nil {
			continue
		}
		if lowest == 0 || c.Ordinal < lowest {
			lowest = c.Ordinal
		}
	}

	return lowest
}

func highestOrdinal(codes []string) int {
	highest := 0
	for _, code := range codes {
		c, err := shortcode.Decode(code)
		if err != nil {
			continue
		}
		if c.Ordinal > highest {
			highest = c.Ordinal
		}
	}

	return highest
}
