package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkazarau/histbot/internal/domain/entities"
)

var ErrRemindersNotFound = errors.New("reminders not found")

// ReminderRepository persists per-user reminder settings in Postgres.
type ReminderRepository struct {
	db *pgxpool.Pool
}

// NewReminderRepository creates a new ReminderRepository.
func NewReminderRepository(db *pgxpool.Pool) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// GetByUserID returns the user's reminder settings.
// Returns ErrRemindersNotFound when the user has none yet.
func (r *ReminderRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserReminders, error) {
	query := `
		SELECT user_id, chat_id, enabled, interval_hours, last_sent_at
		FROM user_reminders
		WHERE user_id = $1
	`

	var rem entities.UserReminders
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&rem.UserID,
		&rem.ChatID,
		&rem.Enabled,
		&rem.IntervalHours,
		&rem.LastSentAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRemindersNotFound
		}
		return nil, fmt.Errorf("get reminders: %w", err)
	}

	return &rem, nil
}

// Upsert creates or updates the user's reminder settings.
func (r *ReminderRepository) Upsert(ctx context.Context, rem *entities.UserReminders) error {
	query := `
		INSERT INTO user_reminders (user_id, chat_id, enabled, interval_hours, last_sent_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id)
		DO UPDATE SET
			chat_id = excluded.chat_id,
			enabled = excluded.enabled,
			interval_hours = excluded.interval_hours,
			last_sent_at = excluded.last_sent_at
	`

	_, err := r.db.Exec(ctx, query, rem.UserID, rem.ChatID, rem.Enabled, rem.IntervalHours, rem.LastSentAt)
	if err != nil {
		return fmt.Errorf("upsert reminders: %w", err)
	}

	return nil
}

// GetDueReminders returns enabled reminders whose interval has elapsed by now.
func (r *ReminderRepository) GetDueReminders(ctx context.Context, now time.Time) ([]*entities.UserReminders, error) {
	query := `
		SELECT user_id, chat_id, enabled, interval_hours, last_sent_at
		FROM user_reminders
		WHERE enabled
		  AND (last_sent_at IS NULL OR last_sent_at <= $1 - interval_hours * interval '1 hour')
	`

	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("get due reminders: %w", err)
	}
	defer rows.Close()

	var result []*entities.UserReminders
	for rows.Next() {
		var rem entities.UserReminders
		err = rows.Scan(&rem.UserID, &rem.ChatID, &rem.Enabled, &rem.IntervalHours, &rem.LastSentAt)
		if err != nil {
			return nil, fmt.Errorf("get due reminders: %w", err)
		}
		result = append(result, &rem)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("get due reminders: %w", err)
	}

	return result, nil
}

// MarkAsSent stamps the last reminder delivery time.
func (r *ReminderRepository) MarkAsSent(ctx context.Context, userID int64, sentAt time.Time) error {
	query := `UPDATE user_reminders SET last_sent_at = $2 WHERE user_id = $1`

	_, err := r.db.Exec(ctx, query, userID, sentAt)
	if err != nil {
		return fmt.Errorf("mark reminder as sent: %w", err)
	}

	return nil
}
