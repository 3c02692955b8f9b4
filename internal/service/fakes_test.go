package service

import (
	"context"

	"github.com/dkazarau/histbot/internal/domain/entities"
)

// fakeFactRepo is an in-memory FactRepository for service tests.
type fakeFactRepo struct {
	events  []*entities.Event
	figures []*entities.Figure
}

func (f *fakeFactRepo) GetAllEvents(context.Context) ([]*entities.Event, error) {
	return f.events, nil
}

func (f *fakeFactRepo) GetAllFigures(context.Context) ([]*entities.Figure, error) {
	return f.figures, nil
}

func (f *fakeFactRepo) AddEvent(_ context.Context, date, description string) (int, error) {
	id := len(f.events)
	f.events = append(f.events, &entities.Event{ID: id, Date: date, Description: description})
	return id, nil
}

func (f *fakeFactRepo) AddFigure(_ context.Context, name, achievement string) (int, error) {
	id := len(f.figures)
	f.figures = append(f.figures, &entities.Figure{ID: id, Name: name, Achievement: achievement})
	return id, nil
}

func (f *fakeFactRepo) GetRandomEvent(context.Context) (*entities.Event, error) {
	if len(f.events) == 0 {
		return nil, ErrNoFacts
	}
	return f.events[0], nil
}

func (f *fakeFactRepo) GetRandomFigure(context.Context) (*entities.Figure, error) {
	if len(f.figures) == 0 {
		return nil, ErrNoFacts
	}
	return f.figures[0], nil
}

type recordedResult struct {
	userID    int64
	testType  entities.QuestionType
	question  string
	isCorrect bool
}

// fakeStatsRepo is an in-memory StatsRepository capturing recorded results.
type fakeStatsRepo struct {
	recorded  []recordedResult
	stats     *entities.UserStats
	difficult []*entities.QuestionStats
	recent    []*entities.QuestionStats
	resets    int
}

func (f *fakeStatsRepo) RecordResult(_ context.Context, userID int64, testType entities.QuestionType, question string, isCorrect bool) error {
	f.recorded = append(f.recorded, recordedResult{userID, testType, question, isCorrect})
	return nil
}

func (f *fakeStatsRepo) GetUserStats(context.Context, int64) (*entities.UserStats, error) {
	if f.stats == nil {
		return &entities.UserStats{ByType: map[entities.QuestionType]entities.TestTypeStats{}}, nil
	}
	return f.stats, nil
}

func (f *fakeStatsRepo) GetDifficultQuestions(context.Context, int64, int) ([]*entities.QuestionStats, error) {
	return f.difficult, nil
}

func (f *fakeStatsRepo) GetRecentlyIncorrect(context.Context, int64, int) ([]*entities.QuestionStats, error) {
	return f.recent, nil
}

func (f *fakeStatsRepo) GetDailyProgress(context.Context, int64, int) ([]*entities.DailyProgress, error) {
	return nil, nil
}

func (f *fakeStatsRepo) ResetUserStats(context.Context, int64) error {
	f.resets++
	return nil
}

var (
	_ FactRepository  = (*fakeFactRepo)(nil)
	_ StatsRepository = (*fakeStatsRepo)(nil)
)
