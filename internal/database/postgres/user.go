package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/repository"
)

type userRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *pgxpool.Pool) repository.Users {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	query := `
		INSERT INTO users (username)
		VALUES ($1)
		RETURNING user_id, username, total_points, created_at
	`

	var u domain.User
	var points int
	err := r.db.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &points, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	u.TotalPoints = domain.Points(points)
	return &u, nil
}

func (r *userRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, total_points, created_at
		FROM users
		WHERE user_id = $1
	`
	return r.getUser(ctx, query, userID)
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, total_points, created_at
		FROM users
		WHERE username = $1
	`
	return r.getUser(ctx, query, username)
}

func (r *userRepository) getUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	var points int
	err := r.db.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &points, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.TotalPoints = domain.Points(points)
	return &u, nil
}

func (r *userRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AddPoints adjusts the user's total atomically. GREATEST keeps the stored
// total non-negative even for negative deltas.
func (r *userRepository) AddPoints(ctx context.Context, userID string, delta domain.Points) (domain.Points, error) {
	query := `
		UPDATE users
		SET total_points = GREATEST(total_points + $2, 0)
		WHERE user_id = $1
		RETURNING total_points
	`

	var total int
	err := r.db.QueryRow(ctx, query, userID, delta.Int()).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to add points: %w", err)
	}
	return domain.Points(total), nil
}
