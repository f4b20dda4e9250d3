package dao

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database alive and serializes transactions.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, InitTables(db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, points int) User {
	t.Helper()

	user, err := NewUserDAO(db).Insert(context.Background(), User{
		Email:    email,
		Password: "hash",
		Profile:  Profile{Name: "tester", Role: "member"},
	})
	require.NoError(t, err)

	if points > 0 {
		require.NoError(t, db.Model(&Profile{}).Where("user_id = ?", user.ID).Update("points", points).Error)
		user.Profile.Points = points
	}

	return user
}

func createTestEvent(t *testing.T, db *gorm.DB, capacity *int, mutate ...func(*Event)) Event {
	t.Helper()

	e := Event{
		Title:           "Meetup",
		ScheduledAt:     time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC),
		MaxParticipants: capacity,
		Price:           300,
		CreatorID:       1,
		Status:          EventStatusScheduled,
	}
	for _, m := range mutate {
		m(&e)
	}

	created, err := NewEventDAO(db).Insert(context.Background(), e)
	require.NoError(t, err)

	return created
}

func intPtr(i int) *int { return &i }

func uintPtr(u uint) *uint { return &u }

func strPtr(s string) *string { return &s }
