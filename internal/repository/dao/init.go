package dao

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Profile{},
		&Event{},
		&Registration{},
		&PointsLedgerEntry{},
	)
}

// forUpdate is ignored by dialects without row locks (sqlite), where the transaction itself serializes writers.
var forUpdate = clause.Locking{Strength: "UPDATE"}

// isUniqueViolation covers postgres errors and drivers opened with TranslateError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return true
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}
