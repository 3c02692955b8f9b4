package service

import (
	"context"
	"fmt"

	"github.com/dkazarau/histbot/internal/domain/entities"
)

const (
	difficultQuestionsLimit  = 3
	minAttemptsForTypeAdvice = 5
	minTestsForAccuracy      = 10
)

// StatsService builds user-facing statistics summaries and study
// recommendations on top of the statistics repository.
type StatsService struct {
	statsRepo StatsRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(statsRepo StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// GetSummary returns the per-user statistics summary.
func (s *StatsService) GetSummary(ctx context.Context, userID int64) (*entities.UserStats, error) {
	return s.statsRepo.GetUserStats(ctx, userID)
}

// GetDifficultQuestions returns questions the user keeps getting wrong:
// at least two attempts with accuracy below 50%, worst first.
func (s *StatsService) GetDifficultQuestions(ctx context.Context, userID int64, limit int) ([]*entities.QuestionStats, error) {
	return s.statsRepo.GetDifficultQuestions(ctx, userID, limit)
}

// GetRecentlyIncorrect returns questions whose most recent attempt was wrong,
// newest first.
func (s *StatsService) GetRecentlyIncorrect(ctx context.Context, userID int64, limit int) ([]*entities.QuestionStats, error) {
	return s.statsRepo.GetRecentlyIncorrect(ctx, userID, limit)
}

// GetDailyProgress returns per-day activity for the last days.
func (s *StatsService) GetDailyProgress(ctx context.Context, userID int64, days int) ([]*entities.DailyProgress, error) {
	return s.statsRepo.GetDailyProgress(ctx, userID, days)
}

// Reset wipes all statistics for the user.
func (s *StatsService) Reset(ctx context.Context, userID int64) error {
	return s.statsRepo.ResetUserStats(ctx, userID)
}

// GetRecommendations builds personal study recommendations from the user's
// accuracy, weak question types and difficult questions.
func (s *StatsService) GetRecommendations(ctx context.Context, userID int64) ([]string, error) {
	stats, err := s.statsRepo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	if stats.TestsTotal == 0 {
		return []string{"Начните регулярно проходить тесты для отслеживания прогресса"}, nil
	}

	var recs []string

	if stats.TestsTotal < minTestsForAccuracy {
		recs = append(recs, "Увеличьте количество пройденных тестов для более точной статистики")
	}

	switch {
	case stats.Accuracy < 50:
		recs = append(recs, "Ваша общая точность ниже 50%. Рекомендуем начать с базовых материалов и постепенно переходить к сложным")
	case stats.Accuracy < 70:
		recs = append(recs, "Используйте режим обучения для регулярного получения и закрепления материала")
	}

	for _, qType := range entities.AllQuestionTypes {
		typeStats, ok := stats.ByType[qType]
		if !ok || typeStats.Total < minAttemptsForTypeAdvice {
			continue
		}
		if typeStats.Accuracy < 50 {
			recs = append(recs, fmt.Sprintf("Уделите больше внимания теме «%s» (точность %.2f%%)", typeTopic(qType), typeStats.Accuracy))
		}
	}

	difficult, err := s.statsRepo.GetDifficultQuestions(ctx, userID, difficultQuestionsLimit)
	if err != nil {
		return nil, err
	}
	if len(difficult) > 0 {
		recs = append(recs, "Повторите материал по следующим сложным для вас вопросам:")
		for _, q := range difficult {
			recs = append(recs, fmt.Sprintf("• %s (точность %.2f%%)", q.Question, q.Accuracy))
		}
	}

	return recs, nil
}

// typeTopic returns the recommendation topic wording for a question type.
func typeTopic(t entities.QuestionType) string {
	switch t {
	case entities.ByDate:
		return "даты"
	case entities.ByEvent:
		return "события"
	case entities.ByFigureName:
		return "исторические деятели"
	case entities.ByAchievement:
		return "достижения"
	}
	return string(t)
}
