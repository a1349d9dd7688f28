package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/dicebot/internal/domain"
)

// Repository wraps the connection pool with typed queries.
type Repository struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

type userRow struct {
	ID         int64     `db:"id"`
	TelegramID int64     `db:"telegram_id"`
	IsAdmin    bool      `db:"is_admin"`
	FirstName  string    `db:"first_name"`
	Username   string    `db:"username"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:         r.ID,
		TelegramID: r.TelegramID,
		IsAdmin:    r.IsAdmin,
		FirstName:  r.FirstName,
		Username:   r.Username,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (r *Repository) GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, r.db, &row,
		`SELECT id, telegram_id, is_admin, first_name, username, created_at, updated_at
		 FROM users WHERE telegram_id = $1`, telegramID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return row.toDomain(), nil
}

func (r *Repository) CreateUser(ctx context.Context, telegramID int64, firstName, username string, isAdmin bool) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, r.db, &row,
		`INSERT INTO users (telegram_id, first_name, username, is_admin)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (telegram_id) DO UPDATE
		   SET first_name = EXCLUDED.first_name, username = EXCLUDED.username, updated_at = now()
		 RETURNING id, telegram_id, is_admin, first_name, username, created_at, updated_at`,
		telegramID, firstName, username, isAdmin)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return row.toDomain(), nil
}

func (r *Repository) UpdateUserInfo(ctx context.Context, id int64, firstName, username string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET first_name = $2, username = $3, updated_at = now() WHERE id = $1`,
		id, firstName, username)
	if err != nil {
		return fmt.Errorf("update user info: %w", err)
	}
	return nil
}
