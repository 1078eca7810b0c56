package repository

import (
	"context"

	"blogCPT/internal/apperr"

	"github.com/jmoiron/sqlx"
)

type healthRepository struct {
	db *sqlx.DB
}

func NewHealthRepository(db *sqlx.DB) HealthRepository {
	return &healthRepository{db: db}
}

// Ping runs a trivial query so the check covers the pool and the driver.
func (r *healthRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.db.GetContext(ctx, &one, `SELECT 1`); err != nil {
		return apperr.Internal(err, "database is unreachable")
	}

	return nil
}
