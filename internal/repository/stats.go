package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkazarau/histbot/internal/domain/entities"
)

// Rolling attempt history kept per question.
const maxAttemptHistory = 10

// StatsRepository persists per-user test statistics in Postgres:
// aggregate counters per question plus a bounded attempt history.
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// RecordResult registers one graded answer: it bumps the per-question
// counters and appends to the attempt history, trimming it to the last
// maxAttemptHistory entries.
func (r *StatsRepository) RecordResult(
	ctx context.Context,
	userID int64,
	testType entities.QuestionType,
	question string,
	isCorrect bool,
) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()

	upsert := `
		INSERT INTO question_stats (user_id, question, test_type, attempts, correct, last_attempt_at)
		VALUES ($1, $2, $3, 1, CASE WHEN $4 THEN 1 ELSE 0 END, $5)
		ON CONFLICT (user_id, question)
		DO UPDATE SET
			attempts = question_stats.attempts + 1,
			correct = question_stats.correct + CASE WHEN $4 THEN 1 ELSE 0 END,
			last_attempt_at = excluded.last_attempt_at
	`
	if _, err = tx.Exec(ctx, upsert, userID, question, string(testType), isCorrect, now); err != nil {
		return fmt.Errorf("upsert question stats: %w", err)
	}

	insertAttempt := `
		INSERT INTO question_attempts (user_id, question, is_correct, attempted_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err = tx.Exec(ctx, insertAttempt, userID, question, isCorrect, now); err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}

	trim := `
		DELETE FROM question_attempts
		WHERE id IN (
			SELECT id FROM question_attempts
			WHERE user_id = $1 AND question = $2
			ORDER BY attempted_at DESC, id DESC
			OFFSET $3
		)
	`
	if _, err = tx.Exec(ctx, trim, userID, question, maxAttemptHistory); err != nil {
		return fmt.Errorf("trim attempt history: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// GetUserStats returns the per-user summary with totals and per-type counters.
// A user with no recorded tests gets a zero-valued summary.
func (r *StatsRepository) GetUserStats(ctx context.Context, userID int64) (*entities.UserStats, error) {
	query := `
		SELECT test_type, SUM(attempts), SUM(correct)
		FROM question_stats
		WHERE user_id = $1
		GROUP BY test_type
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get user stats: %w", err)
	}
	defer rows.Close()

	stats := &entities.UserStats{
		ByType: make(map[entities.QuestionType]entities.TestTypeStats),
	}

	for rows.Next() {
		var (
			testType string
			total    int
			correct  int
		)
		if err = rows.Scan(&testType, &total, &correct); err != nil {
			return nil, fmt.Errorf("get user stats: %w", err)
		}

		stats.TestsTotal += total
		stats.TestsCorrect += correct
		stats.ByType[entities.QuestionType(testType)] = entities.TestTypeStats{
			Total:    total,
			Correct:  correct,
			Accuracy: accuracyPercent(correct, total),
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("get user stats: %w", err)
	}

	stats.Accuracy = accuracyPercent(stats.TestsCorrect, stats.TestsTotal)

	return stats, nil
}

// GetDifficultQuestions returns questions with at least two attempts and
// accuracy below 50%, worst accuracy first.
func (r *StatsRepository) GetDifficultQuestions(ctx context.Context, userID int64, limit int) ([]*entities.QuestionStats, error) {
	query := `
		SELECT question, test_type, attempts, correct, last_attempt_at
		FROM question_stats
		WHERE user_id = $1
		  AND attempts >= 2
		  AND correct * 100.0 / attempts < 50
		ORDER BY correct * 100.0 / attempts ASC
		LIMIT $2
	`

	return r.queryQuestionStats(ctx, query, userID, limit)
}

// GetRecentlyIncorrect returns questions whose most recent attempt was
// incorrect, newest first.
func (r *StatsRepository) GetRecentlyIncorrect(ctx context.Context, userID int64, limit int) ([]*entities.QuestionStats, error) {
	query := `
		SELECT qs.question, qs.test_type, qs.attempts, qs.correct, qs.last_attempt_at
		FROM question_stats qs
		JOIN LATERAL (
			SELECT qa.is_correct
			FROM question_attempts qa
			WHERE qa.user_id = qs.user_id AND qa.question = qs.question
			ORDER BY qa.attempted_at DESC, qa.id DESC
			LIMIT 1
		) last ON TRUE
		WHERE qs.user_id = $1 AND NOT last.is_correct
		ORDER BY qs.last_attempt_at DESC
		LIMIT $2
	`

	return r.queryQuestionStats(ctx, query, userID, limit)
}

func (r *StatsRepository) queryQuestionStats(ctx context.Context, query string, userID int64, limit int) ([]*entities.QuestionStats, error) {
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query question stats: %w", err)
	}
	defer rows.Close()

	var result []*entities.QuestionStats
	for rows.Next() {
		var (
			qs       entities.QuestionStats
			testType string
		)
		if err = rows.Scan(&qs.Question, &testType, &qs.Attempts, &qs.Correct, &qs.LastAttemptAt); err != nil {
			return nil, fmt.Errorf("scan question stats: %w", err)
		}
		qs.TestType = entities.QuestionType(testType)
		qs.Accuracy = accuracyPercent(qs.Correct, qs.Attempts)
		result = append(result, &qs)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("query question stats: %w", err)
	}

	return result, nil
}

// GetDailyProgress returns per-day attempt counts for the last days.
// Days without activity are filled with zeroes.
func (r *StatsRepository) GetDailyProgress(ctx context.Context, userID int64, days int) ([]*entities.DailyProgress, error) {
	since := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))

	query := `
		SELECT date_trunc('day', attempted_at) AS day,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE is_correct)
		FROM question_attempts
		WHERE user_id = $1 AND attempted_at >= $2
		GROUP BY day
		ORDER BY day
	`

	rows, err := r.db.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("get daily progress: %w", err)
	}
	defer rows.Close()

	byDay := make(map[time.Time]*entities.DailyProgress, days)
	for rows.Next() {
		var p entities.DailyProgress
		if err = rows.Scan(&p.Day, &p.Total, &p.Correct); err != nil {
			return nil, fmt.Errorf("get daily progress: %w", err)
		}
		p.Accuracy = accuracyPercent(p.Correct, p.Total)
		byDay[p.Day.Truncate(24*time.Hour)] = &p
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("get daily progress: %w", err)
	}

	result := make([]*entities.DailyProgress, 0, days)
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i)
		if p, ok := byDay[day]; ok {
			result = append(result, p)
			continue
		}
		result = append(result, &entities.DailyProgress{Day: day})
	}

	return result, nil
}

// ResetUserStats removes all statistics for a user.
func (r *StatsRepository) ResetUserStats(ctx context.Context, userID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `DELETE FROM question_attempts WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM question_stats WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete stats: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// accuracyPercent returns correct/total as a percentage rounded to 2 decimals.
func accuracyPercent(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*100*100) / 100
}
