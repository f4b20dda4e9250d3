package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventDAO_ShortCodes(t *testing.T) {
	db := newTestDB(t)
	d := NewEventDAO(db)
	ctx := context.Background()

	first := createTestEvent(t, db, nil, func(e *Event) { e.ShortCode = strPtr("031501") })
	createTestEvent(t, db, nil, func(e *Event) { e.ShortCode = strPtr("031502") })
	createTestEvent(t, db, nil, func(e *Event) { e.ShortCode = strPtr("041501") })
	createTestEvent(t, db, nil)

	_, err := d.Insert(ctx, Event{Title: "dup", ScheduledAt: time.Now(), Status: EventStatusScheduled, ShortCode: strPtr("031501")})
	assert.ErrorIs(t, err, ErrShortCodeTaken)

	codes, err := d.FindShortCodesByPrefix(ctx, "0315")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"031501", "031502"}, codes)

	found, err := d.FindByShortCode(ctx, "031501")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = d.FindByShortCode(ctx, "999999")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventDAO_PersistedCodeSurvivesEarlierDelete(t *testing.T) {
	db := newTestDB(t)
	d := NewEventDAO(db)
	ctx := context.Background()

	first := createTestEvent(t, db, nil, func(e *Event) { e.ShortCode = strPtr("031501") })
	second := createTestEvent(t, db, nil, func(e *Event) { e.ShortCode = strPtr("031502") })

	require.NoError(t, d.Delete(ctx, first.ID))

	found, err := d.FindByShortCode(ctx, "031502")
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
}

func TestEventDAO_FindUncodedDatedBetween(t *testing.T) {
	db := newTestDB(t)
	d := NewEventDAO(db)
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	march15 := func(year, hour int) func(*Event) {
		return func(e *Event) {
			e.ScheduledAt = time.Date(year, time.March, 15, hour, 0, 0, 0, time.UTC)
		}
	}
	createdAt := func(offset time.Duration) func(*Event) {
		return func(e *Event) { e.CreatedAt = base.Add(offset) }
	}

	late := createTestEvent(t, db, nil, march15(2022, 20), createdAt(2*time.Hour))
	early := createTestEvent(t, db, nil, march15(2022, 9), createdAt(time.Hour))
	createTestEvent(t, db, nil, march15(2023, 9), createdAt(0))
	createTestEvent(t, db, nil, func(e *Event) { e.ScheduledAt = time.Date(2022, time.March, 16, 0, 0, 0, 0, time.UTC) })
	// Rows that carry their own code never take part in ordinal ranking.
	createTestEvent(t, db, nil, march15(2022, 12), createdAt(90*time.Minute), func(e *Event) { e.ShortCode = strPtr("031501") })

	from := time.Date(2022, time.March, 15, 0, 0, 0, 0, time.UTC)
	events, err := d.FindUncodedDatedBetween(context.Background(), from, from.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, early.ID, events[0].ID)
	assert.Equal(t, late.ID, events[1].ID)
}

func TestEventDAO_StatusAndDelete(t *testing.T) {
	db := newTestDB(t)
	d := NewEventDAO(db)
	ctx := context.Background()

	event := createTestEvent(t, db, nil)
	_, err := NewRegistrationDAO(db).Register(ctx, Registration{EventID: event.ID, GuestName: "g", GuestContact: "c"}, nil)
	require.NoError(t, err)

	scheduled, err := d.FindScheduled(ctx)
	require.NoError(t, err)
	assert.Len(t, scheduled, 1)

	require.NoError(t, d.UpdateStatus(ctx, event.ID, EventStatusCompleted))
	scheduled, err = d.FindScheduled(ctx)
	require.NoError(t, err)
	assert.Empty(t, scheduled)

	require.NoError(t, d.Delete(ctx, event.ID))
	_, err = d.FindByID(ctx, event.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)

	var regs int64
	require.NoError(t, db.Model(&Registration{}).Count(&regs).Error)
	assert.Zero(t, regs)

	assert.ErrorIs(t, d.Delete(ctx, event.ID), ErrEventNotFound)
	assert.ErrorIs(t, d.UpdateStatus(ctx, event.ID, EventStatusCompleted), ErrEventNotFound)
}
