package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rkravchenko/bulletin-board/internal/models"
)

type PostgresBulletinRepository struct {
	db *sql.DB
}

func NewPostgresBulletinRepository(db *sql.DB) *PostgresBulletinRepository {
	return &PostgresBulletinRepository{db: db}
}

func (r *PostgresBulletinRepository) GetByID(id int) (models.Bulletin, error) {
	query := `
		SELECT b.id, b.header, b.description, b.user_id, u.username, b.creation_time
		FROM bulletin b
		JOIN app_users u ON u.id = b.user_id
		WHERE b.id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var b models.Bulletin
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.Header, &b.Description, &b.UserID, &b.OwnerUsername, &b.CreationTime)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bulletin{}, ErrBulletinNotFound
	}
	return b, err
}

func (r *PostgresBulletinRepository) Create(b models.Bulletin) (models.Bulletin, error) {
	query := `INSERT INTO bulletin (header, description, user_id) VALUES ($1, $2, $3)
		RETURNING id, creation_time`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, b.Header, b.Description, b.UserID).
		Scan(&b.ID, &b.CreationTime)
	if isUniqueViolation(err) {
		return models.Bulletin{}, ErrDuplicateHeader
	}
	return b, err
}

func (r *PostgresBulletinRepository) Delete(id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM bulletin WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrBulletinNotFound
	}
	return nil
}
