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

type statsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new PostgreSQL stats repository
func NewStatsRepository(db *pgxpool.Pool) repository.Stats {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetUserStats(ctx context.Context, userID string) ([]domain.UserStat, error) {
	query := `
		SELECT stat_type, current_value, allocated_value
		FROM user_stats
		WHERE user_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.UserStat
	for rows.Next() {
		st := domain.UserStat{UserID: userID}
		if err := rows.Scan(&st.Type, &st.Value.Current, &st.Value.Allocated); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// GetStat returns the stored value for one dimension. Missing rows read as
// the zero value; the row is created on first save.
func (r *statsRepository) GetStat(ctx context.Context, userID string, statType domain.StatType) (domain.StatValue, error) {
	query := `
		SELECT current_value, allocated_value
		FROM user_stats
		WHERE user_id = $1 AND stat_type = $2
	`

	var v domain.StatValue
	err := r.db.QueryRow(ctx, query, userID, string(statType)).Scan(&v.Current, &v.Allocated)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.StatValue{}, nil
	}
	if err != nil {
		return domain.StatValue{}, err
	}
	return v, nil
}

func (r *statsRepository) SaveStat(ctx context.Context, userID string, statType domain.StatType, value domain.StatValue) error {
	query := `
		INSERT INTO user_stats (user_id, stat_type, current_value, allocated_value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, stat_type)
		DO UPDATE SET current_value = $3, allocated_value = $4, updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, userID, string(statType), value.Current, value.Allocated)
	if err != nil {
		return fmt.Errorf("failed to save stat: %w", err)
	}
	return nil
}
