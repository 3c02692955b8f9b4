package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkazarau/histbot/internal/storage"
)

func TestSelector_EventsDoNotRepeatWithinPass(t *testing.T) {
	repo := &fakeFactRepo{}
	for i := 0; i < 5; i++ {
		_, err := repo.AddEvent(context.Background(), "1569", "событие")
		require.NoError(t, err)
	}

	sel := NewSelector(repo)
	sess := &storage.UserSession{}
	sess.Lock()
	defer sess.Unlock()

	seen := make(map[int]bool)
	for i := 0; i < 5; i++ {
		ev, err := sel.SelectEvent(context.Background(), sess)
		require.NoError(t, err)
		assert.False(t, seen[ev.ID], "event %d repeated within a pass", ev.ID)
		seen[ev.ID] = true
	}
	assert.Len(t, seen, 5)
}

func TestSelector_ResetsAfterExhaustion(t *testing.T) {
	repo := &fakeFactRepo{}
	_, err := repo.AddFigure(context.Background(), "Франциск Скорина", "первопечатник")
	require.NoError(t, err)

	sel := NewSelector(repo)
	sess := &storage.UserSession{}
	sess.Lock()
	defer sess.Unlock()

	// The single figure keeps coming back pass after pass.
	for i := 0; i < 3; i++ {
		f, err := sel.SelectFigure(context.Background(), sess)
		require.NoError(t, err)
		assert.Equal(t, 0, f.ID)
	}
}

func TestSelector_EmptyPool(t *testing.T) {
	sel := NewSelector(&fakeFactRepo{})
	sess := &storage.UserSession{}
	sess.Lock()
	defer sess.Unlock()

	_, err := sel.SelectEvent(context.Background(), sess)
	assert.ErrorIs(t, err, ErrNoFacts)

	_, err = sel.SelectFigure(context.Background(), sess)
	assert.ErrorIs(t, err, ErrNoFacts)
}
