package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetOverview() (Overview, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var o Overview

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM app_users`).Scan(&o.TotalUsers); err != nil {
		return Overview{}, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bulletin`).Scan(&o.TotalBulletins); err != nil {
		return Overview{}, err
	}

	// No rows is fine on an empty board; the author block stays zero-valued.
	_ = r.db.QueryRowContext(ctx, `
		SELECT u.username, COUNT(*) AS cnt
		FROM bulletin b
		JOIN app_users u ON u.id = b.user_id
		GROUP BY u.username
		ORDER BY cnt DESC
		LIMIT 1
	`).Scan(&o.BusiestAuthor.Username, &o.BusiestAuthor.BulletinCount)

	return o, nil
}
