package repository

import (
	"context"
	"database/sql"
	"time"
)

type HealthRepository struct {
	db *sql.DB
}

func NewHealthRepository(db *sql.DB) *HealthRepository {
	return &HealthRepository{db}
}

// Now asks the store for its current time, proving liveness end to end.
func (r *HealthRepository) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	query := `SELECT NOW()`
	err := r.db.QueryRowContext(ctx, query).Scan(&now)
	if err != nil {
		return time.Time{}, err
	}

	return now, nil
}
