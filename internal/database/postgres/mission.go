package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/repository"
)

const missionColumns = `mission_id, user_id, title, category, difficulty, status,
	progress, reward_points, assigned_at, started_at, completed_at, expires_at`

type missionRepository struct {
	db *pgxpool.Pool
}

// NewMissionRepository creates a new PostgreSQL mission repository
func NewMissionRepository(db *pgxpool.Pool) repository.Missions {
	return &missionRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMission(row rowScanner) (*domain.Mission, error) {
	var m domain.Mission
	var reward int
	err := row.Scan(&m.ID, &m.UserID, &m.Title, &m.Category, &m.Difficulty, &m.Status,
		&m.Progress, &reward, &m.AssignedAt, &m.StartedAt, &m.CompletedAt, &m.ExpiresAt)
	if err != nil {
		return nil, err
	}
	m.RewardPoints = domain.Points(reward)
	return &m, nil
}

func (r *missionRepository) GetMission(ctx context.Context, id uuid.UUID) (*domain.Mission, error) {
	query := `SELECT ` + missionColumns + ` FROM missions WHERE mission_id = $1`

	m, err := scanMission(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return m, err
}

func (r *missionRepository) ListUserMissions(ctx context.Context, userID string, day time.Time) ([]domain.Mission, error) {
	query := `
		SELECT ` + missionColumns + `
		FROM missions
		WHERE user_id = $1 AND assigned_at::date = $2::date
		ORDER BY assigned_at, mission_id
	`
	return r.queryMissions(ctx, query, userID, day)
}

func (r *missionRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]domain.Mission, error) {
	query := `
		SELECT ` + missionColumns + `
		FROM missions
		WHERE status IN ('ASSIGNED', 'IN_PROGRESS') AND expires_at < $1
		ORDER BY expires_at
		LIMIT $2
	`
	return r.queryMissions(ctx, query, now, limit)
}

func (r *missionRepository) queryMissions(ctx context.Context, query string, args ...any) ([]domain.Mission, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var missions []domain.Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, err
		}
		missions = append(missions, *m)
	}
	return missions, rows.Err()
}

func (r *missionRepository) CreateMissions(ctx context.Context, missions []domain.Mission) error {
	query := `
		INSERT INTO missions (` + missionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	batch := &pgx.Batch{}
	for _, m := range missions {
		batch.Queue(query, m.ID, m.UserID, m.Title, string(m.Category), string(m.Difficulty),
			string(m.Status), m.Progress, m.RewardPoints.Int(), m.AssignedAt, m.StartedAt,
			m.CompletedAt, m.ExpiresAt)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	for range missions {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert mission: %w", err)
		}
	}
	return nil
}

func (r *missionRepository) UpdateMission(ctx context.Context, m domain.Mission) error {
	query := `
		UPDATE missions
		SET status = $2, progress = $3, started_at = $4, completed_at = $5
		WHERE mission_id = $1
	`

	tag, err := r.db.Exec(ctx, query, m.ID, string(m.Status), m.Progress, m.StartedAt, m.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMissionNotFound
	}
	return nil
}

// SaveCompletion persists the completed mission and awards its points inside
// one transaction, so the user never ends up with a committed completion whose
// reward was lost.
func (r *missionRepository) SaveCompletion(ctx context.Context, m domain.Mission, reward domain.Points) (domain.Points, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	update := `
		UPDATE missions
		SET status = $2, progress = $3, started_at = $4, completed_at = $5
		WHERE mission_id = $1
	`
	tag, err := tx.Exec(ctx, update, m.ID, string(m.Status), m.Progress, m.StartedAt, m.CompletedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to update mission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, domain.ErrMissionNotFound
	}

	award := `
		UPDATE users
		SET total_points = GREATEST(total_points + $2, 0)
		WHERE user_id = $1
		RETURNING total_points
	`
	var total int
	err = tx.QueryRow(ctx, award, m.UserID, reward.Int()).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to award mission points: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit mission completion: %w", err)
	}
	return domain.Points(total), nil
}

func (r *missionRepository) CountCompleted(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM missions WHERE user_id = $1 AND status = 'COMPLETED'`

	var count int
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}

func (r *missionRepository) CountCompletedByCategory(ctx context.Context, userID string) (map[domain.MissionCategory]int, error) {
	query := `
		SELECT category, COUNT(*)
		FROM missions
		WHERE user_id = $1 AND status = 'COMPLETED'
		GROUP BY category
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.MissionCategory]int)
	for rows.Next() {
		var category domain.MissionCategory
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[category] = count
	}
	return counts, rows.Err()
}

func (r *missionRepository) ListTemplates(ctx context.Context) ([]domain.MissionTemplate, error) {
	query := `
		SELECT template_id, title, category, difficulty, active
		FROM mission_templates
		WHERE active
		ORDER BY template_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []domain.MissionTemplate
	for rows.Next() {
		var t domain.MissionTemplate
		if err := rows.Scan(&t.ID, &t.Title, &t.Category, &t.Difficulty, &t.Active); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// BeginStart locks the user row so concurrent start attempts for the same user
// serialize on admission control.
func (r *missionRepository) BeginStart(ctx context.Context, userID string) (repository.MissionStartTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, `SELECT 1 FROM users WHERE user_id = $1 FOR UPDATE`, userID); err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("failed to lock user row: %w", err)
	}

	return &missionStartTx{tx: tx}, nil
}

type missionStartTx struct {
	tx pgx.Tx
}

func (t *missionStartTx) Mission(ctx context.Context, id uuid.UUID) (*domain.Mission, error) {
	query := `SELECT ` + missionColumns + ` FROM missions WHERE mission_id = $1 FOR UPDATE`

	m, err := scanMission(t.tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return m, err
}

func (t *missionStartTx) HasOngoing(ctx context.Context, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM missions WHERE user_id = $1 AND status = 'IN_PROGRESS')`

	var ongoing bool
	err := t.tx.QueryRow(ctx, query, userID).Scan(&ongoing)
	return ongoing, err
}

func (t *missionStartTx) StartedToday(ctx context.Context, userID string, day time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM missions
		WHERE user_id = $1 AND started_at IS NOT NULL AND started_at::date = $2::date
	`

	var count int
	err := t.tx.QueryRow(ctx, query, userID, day).Scan(&count)
	return count, err
}

func (t *missionStartTx) UpdateMission(ctx context.Context, m domain.Mission) error {
	query := `
		UPDATE missions
		SET status = $2, progress = $3, started_at = $4, completed_at = $5
		WHERE mission_id = $1
	`

	tag, err := t.tx.Exec(ctx, query, m.ID, string(m.Status), m.Progress, m.StartedAt, m.CompletedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMissionNotFound
	}
	return nil
}

func (t *missionStartTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *missionStartTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}
