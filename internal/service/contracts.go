package service

import (
	"context"
	"time"

	"github.com/dkazarau/histbot/internal/domain/entities"
)

type FactRepository interface {
	GetAllEvents(ctx context.Context) ([]*entities.Event, error)
	GetAllFigures(ctx context.Context) ([]*entities.Figure, error)
	AddEvent(ctx context.Context, date, description string) (int, error)
	AddFigure(ctx context.Context, name, achievement string) (int, error)
	GetRandomEvent(ctx context.Context) (*entities.Event, error)
	GetRandomFigure(ctx context.Context) (*entities.Figure, error)
}

type StatsRepository interface {
	RecordResult(ctx context.Context, userID int64, testType entities.QuestionType, question string, isCorrect bool) error
	GetUserStats(ctx context.Context, userID int64) (*entities.UserStats, error)
	GetDifficultQuestions(ctx context.Context, userID int64, limit int) ([]*entities.QuestionStats, error)
	GetRecentlyIncorrect(ctx context.Context, userID int64, limit int) ([]*entities.QuestionStats, error)
	GetDailyProgress(ctx context.Context, userID int64, days int) ([]*entities.DailyProgress, error)
	ResetUserStats(ctx context.Context, userID int64) error
}

// ReminderRepository manages reminder persistence.
type ReminderRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*entities.UserReminders, error)
	Upsert(ctx context.Context, rem *entities.UserReminders) error
	GetDueReminders(ctx context.Context, now time.Time) ([]*entities.UserReminders, error)
	MarkAsSent(ctx context.Context, userID int64, sentAt time.Time) error
}

// ReminderNotifier sends reminder notifications to users.
type ReminderNotifier interface {
	SendReminder(chatID int64, text string) error
}
