package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*FactRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "facts.json")
	repo, err := NewFactRepository(path)
	require.NoError(t, err)
	return repo, path
}

func TestFactRepository_CreatesEmptyFile(t *testing.T) {
	_, path := newTestRepo(t)

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFactRepository_DenseIDs(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.AddEvent(ctx, "1569", "Люблинская уния")
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	id, err = repo.AddEvent(ctx, "1863-1864", "Восстание Калиновского")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	// Figures number independently of events.
	id, err = repo.AddFigure(ctx, "Франциск Скорина", "Первопечатник")
	require.NoError(t, err)
	assert.Equal(t, 0, id)
}

func TestFactRepository_PersistsAcrossReopen(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddEvent(ctx, "1569", "Люблинская уния")
	require.NoError(t, err)
	_, err = repo.AddFigure(ctx, "Тадеуш Костюшко", "Руководитель восстания 1794 года")
	require.NoError(t, err)

	reopened, err := NewFactRepository(path)
	require.NoError(t, err)

	events, err := reopened.GetAllEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "1569", events[0].Date)

	figures, err := reopened.GetAllFigures(ctx)
	require.NoError(t, err)
	require.Len(t, figures, 1)
	assert.Equal(t, "Тадеуш Костюшко", figures[0].Name)
}

func TestFactRepository_CorruptFileResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facts.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo, err := NewFactRepository(path)
	require.NoError(t, err)

	events, err := repo.GetAllEvents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestFactRepository_RandomOnEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetRandomEvent(context.Background())
	assert.ErrorIs(t, err, ErrFactNotFound)

	_, err = repo.GetRandomFigure(context.Background())
	assert.ErrorIs(t, err, ErrFactNotFound)
}

func TestFactRepository_LookupHelpers(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddEvent(ctx, "1569", "Люблинская уния")
	require.NoError(t, err)
	_, err = repo.AddFigure(ctx, "Франциск Скорина", "Первопечатник")
	require.NoError(t, err)

	ev, err := repo.GetEventByDate(ctx, "1569")
	require.NoError(t, err)
	assert.Equal(t, "Люблинская уния", ev.Description)

	ev, err = repo.GetEventByDescription(ctx, "Люблинская уния")
	require.NoError(t, err)
	assert.Equal(t, "1569", ev.Date)

	f, err := repo.GetFigureByName(ctx, "франциск скорина")
	require.NoError(t, err)
	assert.Equal(t, "Франциск Скорина", f.Name)

	f, err = repo.GetFigureByAchievement(ctx, "Первопечатник")
	require.NoError(t, err)
	assert.Equal(t, "Франциск Скорина", f.Name)

	_, err = repo.GetEventByDate(ctx, "1794")
	assert.ErrorIs(t, err, ErrFactNotFound)
}

func TestFactRepository_SeedOnlyWhenEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SeedSampleData(ctx))

	events, err := repo.GetAllEvents(ctx)
	require.NoError(t, err)
	figures, err := repo.GetAllFigures(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, events)
	assert.NotEmpty(t, figures)

	// Seeding again must not duplicate anything.
	require.NoError(t, repo.SeedSampleData(ctx))

	events2, err := repo.GetAllEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events2, len(events))
}
