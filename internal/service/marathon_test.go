package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dkazarau/histbot/internal/domain/entities"
	"github.com/dkazarau/histbot/internal/storage"
)

func TestBuildTypeSequence_CoversAllTypesAtFour(t *testing.T) {
	for i := 0; i < 20; i++ {
		seq := buildTypeSequence(4)
		require.Len(t, seq, 4)

		seen := make(map[entities.QuestionType]bool)
		for _, qt := range seq {
			seen[qt] = true
		}
		assert.Len(t, seen, 4, "sequence %v misses a type", seq)
	}
}

func TestBuildTypeSequence_Lengths(t *testing.T) {
	assert.Len(t, buildTypeSequence(2), 2)
	assert.Len(t, buildTypeSequence(7), 7)
}

func TestMarathon_FullRun(t *testing.T) {
	factRepo := &fakeFactRepo{}
	statsRepo := &fakeStatsRepo{}
	sessions := storage.NewSessionStorage()
	quiz := NewQuizService(NewSelector(factRepo), NewGrader(), statsRepo, sessions, zap.NewNop())
	marathon := NewMarathonService(quiz, sessions, zap.NewNop())

	ctx := context.Background()
	_, err := factRepo.AddEvent(ctx, "1569", "Люблинская уния")
	require.NoError(t, err)
	_, err = factRepo.AddFigure(ctx, "Франциск Скорина", "Белорусский первопечатник")
	require.NoError(t, err)

	const userID = int64(99)

	require.NoError(t, marathon.Start(ctx, userID, 5))
	assert.True(t, marathon.Active(userID))

	var finished *entities.MarathonSession
	for i := 0; i < 10; i++ {
		q, fin, err := marathon.NextQuestion(ctx, userID)
		require.NoError(t, err)
		if fin != nil {
			finished = fin
			break
		}

		current, total, err := marathon.Progress(userID)
		require.NoError(t, err)
		assert.Equal(t, i+1, current)
		assert.Equal(t, 5, total)

		// Answer every question with the exact expected text.
		_, _, err = quiz.GradeAnswer(ctx, userID, q.Expected())
		require.NoError(t, err)
	}

	require.NotNil(t, finished, "marathon never finished")
	assert.Equal(t, 5, finished.Total)
	assert.Equal(t, 5, finished.Correct)
	assert.Len(t, finished.History, 5)
	assert.Equal(t, 100.0, finished.Accuracy())
	assert.Equal(t, entities.TierStrong, finished.Tier())

	// The finished session is gone.
	assert.False(t, marathon.Active(userID))
	_, _, err = marathon.NextQuestion(ctx, userID)
	assert.ErrorIs(t, err, ErrNoMarathon)

	// Every answer also landed in statistics.
	assert.Len(t, statsRepo.recorded, 5)
}

func TestMarathon_DefaultCount(t *testing.T) {
	sessions := storage.NewSessionStorage()
	quiz := NewQuizService(NewSelector(&fakeFactRepo{}), NewGrader(), &fakeStatsRepo{}, sessions, zap.NewNop())
	marathon := NewMarathonService(quiz, sessions, zap.NewNop())

	require.NoError(t, marathon.Start(context.Background(), 1, 0))

	_, total, err := marathon.Progress(1)
	require.NoError(t, err)
	assert.Equal(t, DefaultMarathonQuestions, total)
}

func TestMarathonSession_AccuracyAndTiers(t *testing.T) {
	m := entities.NewMarathonSession([]entities.QuestionType{
		entities.ByDate, entities.ByEvent, entities.ByFigureName,
	})

	q := &entities.Question{Type: entities.ByDate, Event: &entities.Event{Date: "1569", Description: "уния"}}
	m.RecordAnswer(q, true)
	m.RecordAnswer(q, false)
	m.RecordAnswer(q, false)

	assert.InDelta(t, 33.33, m.Accuracy(), 1e-9)
	assert.Equal(t, entities.TierWeak, m.Tier())
}
