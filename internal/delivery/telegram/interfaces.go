package telegram

import (
	"context"

	"github.com/dkazarau/histbot/internal/domain/entities"
	"github.com/dkazarau/histbot/internal/storage"
)

type QuizService interface {
	StartQuestion(ctx context.Context, userID int64, qType entities.QuestionType) (*entities.Question, error)
	GradeAnswer(ctx context.Context, userID int64, answer string) (entities.GradeResult, *entities.Question, error)
}

type MarathonService interface {
	Start(ctx context.Context, userID int64, count int) error
	NextQuestion(ctx context.Context, userID int64) (*entities.Question, *entities.MarathonSession, error)
	Active(userID int64) bool
	Progress(userID int64) (current, total int, err error)
}

type FactService interface {
	AddEvent(ctx context.Context, date, description string) (int, error)
	AddFigure(ctx context.Context, name, achievement string) (int, error)
	Counts(ctx context.Context) (events, figures int, err error)
}

type StatsService interface {
	GetSummary(ctx context.Context, userID int64) (*entities.UserStats, error)
	GetDifficultQuestions(ctx context.Context, userID int64, limit int) ([]*entities.QuestionStats, error)
	GetRecentlyIncorrect(ctx context.Context, userID int64, limit int) ([]*entities.QuestionStats, error)
	GetDailyProgress(ctx context.Context, userID int64, days int) ([]*entities.DailyProgress, error)
	GetRecommendations(ctx context.Context, userID int64) ([]string, error)
	Reset(ctx context.Context, userID int64) error
}

type ReminderService interface {
	Get(ctx context.Context, userID, chatID int64) (*entities.UserReminders, error)
	Toggle(ctx context.Context, userID, chatID int64) (*entities.UserReminders, error)
	SetIntervalHours(ctx context.Context, userID, chatID int64, hours int) error
}

// SessionStore exposes the per-user session used for pending input flows.
type SessionStore interface {
	Get(userID int64) *storage.UserSession
}
