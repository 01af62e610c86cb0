package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/repository"
)

type dailyQuestRepository struct {
	db *pgxpool.Pool
}

// NewDailyQuestRepository creates a new PostgreSQL daily quest repository
func NewDailyQuestRepository(db *pgxpool.Pool) repository.DailyQuests {
	return &dailyQuestRepository{db: db}
}

func (r *dailyQuestRepository) ListProgress(ctx context.Context, userID string, day time.Time) ([]domain.DailyQuestProgress, error) {
	query := `
		SELECT user_id, quest_date, quest_type, completed, completed_at, reward_banked
		FROM daily_quest_progress
		WHERE user_id = $1 AND quest_date = $2::date
	`

	rows, err := r.db.Query(ctx, query, userID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var progress []domain.DailyQuestProgress
	for rows.Next() {
		var p domain.DailyQuestProgress
		if err := rows.Scan(&p.UserID, &p.QuestDate, &p.QuestType, &p.Completed, &p.CompletedAt, &p.RewardBanked); err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}

func (r *dailyQuestRepository) GetSummary(ctx context.Context, userID string, day time.Time) (*domain.DailyQuestSummary, error) {
	return scanSummary(r.db.QueryRow(ctx, summarySelect, userID, day))
}

const summarySelect = `
	SELECT user_id, quest_date, completed_count, completion_pct, special_rewards, total_reward_points
	FROM daily_quest_summaries
	WHERE user_id = $1 AND quest_date = $2::date
`

func scanSummary(row rowScanner) (*domain.DailyQuestSummary, error) {
	var s domain.DailyQuestSummary
	var pct int
	var rewards []string
	var total int
	err := row.Scan(&s.UserID, &s.QuestDate, &s.CompletedCount, &pct, &rewards, &total)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.CompletionPct = domain.CompletionPercentage(pct)
	s.TotalRewardPoints = domain.Points(total)
	for _, reward := range rewards {
		s.SpecialRewardsEarned = append(s.SpecialRewardsEarned, domain.SpecialRewardTier(reward))
	}
	return &s, nil
}

// BeginCheck serializes check-offs per (user, day) by locking the summary row,
// inserting it first if the day has no row yet.
func (r *dailyQuestRepository) BeginCheck(ctx context.Context, userID string, day time.Time) (repository.QuestCheckTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	insert := `
		INSERT INTO daily_quest_summaries (user_id, quest_date)
		VALUES ($1, $2::date)
		ON CONFLICT (user_id, quest_date) DO NOTHING
	`
	if _, err := tx.Exec(ctx, insert, userID, day); err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("failed to seed summary row: %w", err)
	}

	lock := summarySelect + ` FOR UPDATE`
	if _, err := tx.Exec(ctx, lock, userID, day); err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("failed to lock summary row: %w", err)
	}

	return &questCheckTx{tx: tx, userID: userID, day: day}, nil
}

// GetCurrentStreak counts consecutive fully-completed days ending today or
// yesterday, so a streak is not broken before today's quests are done.
func (r *dailyQuestRepository) GetCurrentStreak(ctx context.Context, userID string, today time.Time) (int, error) {
	query := `
		WITH perfect_days AS (
			SELECT quest_date
			FROM daily_quest_summaries
			WHERE user_id = $1 AND completion_pct = 100 AND quest_date <= $2::date
		),
		runs AS (
			SELECT quest_date,
			       quest_date + (ROW_NUMBER() OVER (ORDER BY quest_date DESC))::int AS grp
			FROM perfect_days
		)
		SELECT COUNT(*)
		FROM runs
		WHERE grp = (SELECT grp FROM runs ORDER BY quest_date DESC LIMIT 1)
		  AND (SELECT MAX(quest_date) FROM perfect_days) >= $2::date - 1
	`

	var streak int
	err := r.db.QueryRow(ctx, query, userID, today).Scan(&streak)
	return streak, err
}

type questCheckTx struct {
	tx     pgx.Tx
	userID string
	day    time.Time
}

func (t *questCheckTx) ProgressForUpdate(ctx context.Context, questType domain.QuestType) (*domain.DailyQuestProgress, error) {
	query := `
		SELECT user_id, quest_date, quest_type, completed, completed_at, reward_banked
		FROM daily_quest_progress
		WHERE user_id = $1 AND quest_date = $2::date AND quest_type = $3
		FOR UPDATE
	`

	var p domain.DailyQuestProgress
	err := t.tx.QueryRow(ctx, query, t.userID, t.day, string(questType)).
		Scan(&p.UserID, &p.QuestDate, &p.QuestType, &p.Completed, &p.CompletedAt, &p.RewardBanked)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (t *questCheckTx) SaveProgress(ctx context.Context, p domain.DailyQuestProgress) error {
	query := `
		INSERT INTO daily_quest_progress (user_id, quest_date, quest_type, completed, completed_at, reward_banked)
		VALUES ($1, $2::date, $3, $4, $5, $6)
		ON CONFLICT (user_id, quest_date, quest_type)
		DO UPDATE SET completed = $4, completed_at = $5, reward_banked = $6
	`

	_, err := t.tx.Exec(ctx, query, p.UserID, p.QuestDate, string(p.QuestType), p.Completed, p.CompletedAt, p.RewardBanked)
	if err != nil {
		return fmt.Errorf("failed to save quest progress: %w", err)
	}
	return nil
}

func (t *questCheckTx) Summary(ctx context.Context) (*domain.DailyQuestSummary, error) {
	return scanSummary(t.tx.QueryRow(ctx, summarySelect, t.userID, t.day))
}

func (t *questCheckTx) SaveSummary(ctx context.Context, s domain.DailyQuestSummary) error {
	query := `
		UPDATE daily_quest_summaries
		SET completed_count = $3, completion_pct = $4, special_rewards = $5, total_reward_points = $6
		WHERE user_id = $1 AND quest_date = $2::date
	`

	rewards := make([]string, len(s.SpecialRewardsEarned))
	for i, tier := range s.SpecialRewardsEarned {
		rewards[i] = string(tier)
	}

	_, err := t.tx.Exec(ctx, query, s.UserID, s.QuestDate, s.CompletedCount,
		s.CompletionPct.Int(), rewards, s.TotalRewardPoints.Int())
	if err != nil {
		return fmt.Errorf("failed to save quest summary: %w", err)
	}
	return nil
}

// AddUserPoints grants reward points inside the check transaction, so a
// committed check-off and its point award cannot diverge.
func (t *questCheckTx) AddUserPoints(ctx context.Context, delta domain.Points) (domain.Points, error) {
	query := `
		UPDATE users
		SET total_points = GREATEST(total_points + $2, 0)
		WHERE user_id = $1
		RETURNING total_points
	`

	var total int
	err := t.tx.QueryRow(ctx, query, t.userID, delta.Int()).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to add points: %w", err)
	}
	return domain.Points(total), nil
}

func (t *questCheckTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *questCheckTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}
