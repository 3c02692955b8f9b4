package entities

import "time"

// TestTypeStats aggregates results for one question type.
type TestTypeStats struct {
	Total    int
	Correct  int
	Accuracy float64 // percentage rounded to 2 decimals
}

// UserStats is the per-user statistics summary.
type UserStats struct {
	TestsTotal   int
	TestsCorrect int
	Accuracy     float64 // percentage rounded to 2 decimals
	ByType       map[QuestionType]TestTypeStats
}

// QuestionStats tracks a single question's attempt history for a user.
type QuestionStats struct {
	Question      string // question label, e.g. "Дата: 1569"
	TestType      QuestionType
	Attempts      int
	Correct       int
	Accuracy      float64 // percentage rounded to 2 decimals
	LastAttemptAt time.Time
}

// DailyProgress is one day of quiz activity.
type DailyProgress struct {
	Day      time.Time
	Total    int
	Correct  int
	Accuracy float64
}
