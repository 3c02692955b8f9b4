package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync"

	"github.com/dkazarau/histbot/internal/domain/entities"
)

var ErrFactNotFound = errors.New("fact not found")

// FactRepository stores the fact database in a JSON file. IDs are assigned
// densely per kind starting at 0 and are stable for the process lifetime.
type FactRepository struct {
	mu   sync.RWMutex
	path string
	data factData
}

type factData struct {
	Events  []*entities.Event  `json:"events"`
	Figures []*entities.Figure `json:"figures"`
}

// NewFactRepository loads the fact database from path, creating an empty
// file when it does not exist. A corrupt file is treated as empty, matching
// first-run behavior.
func NewFactRepository(path string) (*FactRepository, error) {
	r := &FactRepository{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := r.save(); err != nil {
			return nil, err
		}
		return r, nil
	case err != nil:
		return nil, fmt.Errorf("read facts file: %w", err)
	}

	if err := json.Unmarshal(raw, &r.data); err != nil {
		r.data = factData{}
		if err := r.save(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// save writes the current database to disk. Caller must hold the write lock
// (or have exclusive access during construction).
func (r *FactRepository) save() error {
	raw, err := json.MarshalIndent(r.data, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal facts: %w", err)
	}

	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write facts file: %w", err)
	}

	return nil
}

// AddEvent appends a dated event and persists the database.
// The new event gets the next dense ID.
func (r *FactRepository) AddEvent(_ context.Context, date, description string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := len(r.data.Events)
	r.data.Events = append(r.data.Events, &entities.Event{
		ID:          id,
		Date:        date,
		Description: description,
	})

	if err := r.save(); err != nil {
		return 0, err
	}

	return id, nil
}

// AddFigure appends a historical figure and persists the database.
func (r *FactRepository) AddFigure(_ context.Context, name, achievement string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := len(r.data.Figures)
	r.data.Figures = append(r.data.Figures, &entities.Figure{
		ID:          id,
		Name:        name,
		Achievement: achievement,
	})

	if err := r.save(); err != nil {
		return 0, err
	}

	return id, nil
}

// GetAllEvents returns all events in insertion order.
func (r *FactRepository) GetAllEvents(_ context.Context) ([]*entities.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*entities.Event(nil), r.data.Events...), nil
}

// GetAllFigures returns all figures in insertion order.
func (r *FactRepository) GetAllFigures(_ context.Context) ([]*entities.Figure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*entities.Figure(nil), r.data.Figures...), nil
}

// GetRandomEvent returns a uniformly random event.
func (r *FactRepository) GetRandomEvent(_ context.Context) (*entities.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.data.Events) == 0 {
		return nil, ErrFactNotFound
	}

	return r.data.Events[rand.Intn(len(r.data.Events))], nil
}

// GetRandomFigure returns a uniformly random figure.
func (r *FactRepository) GetRandomFigure(_ context.Context) (*entities.Figure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.data.Figures) == 0 {
		return nil, ErrFactNotFound
	}

	return r.data.Figures[rand.Intn(len(r.data.Figures))], nil
}

// GetEventByDate returns the first event with the exact date.
func (r *FactRepository) GetEventByDate(_ context.Context, date string) (*entities.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ev := range r.data.Events {
		if ev.Date == date {
			return ev, nil
		}
	}

	return nil, ErrFactNotFound
}

// GetEventByDescription returns the first event with the exact description.
func (r *FactRepository) GetEventByDescription(_ context.Context, description string) (*entities.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ev := range r.data.Events {
		if ev.Description == description {
			return ev, nil
		}
	}

	return nil, ErrFactNotFound
}

// GetFigureByName returns the figure with the given name, case-insensitively.
func (r *FactRepository) GetFigureByName(_ context.Context, name string) (*entities.Figure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.data.Figures {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}

	return nil, ErrFactNotFound
}

// GetFigureByAchievement returns the first figure with the exact achievement.
func (r *FactRepository) GetFigureByAchievement(_ context.Context, achievement string) (*entities.Figure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.data.Figures {
		if f.Achievement == achievement {
			return f, nil
		}
	}

	return nil, ErrFactNotFound
}

// SeedSampleData fills an empty database with the bundled sample facts.
// Does nothing when the database already has data.
func (r *FactRepository) SeedSampleData(ctx context.Context) error {
	r.mu.RLock()
	empty := len(r.data.Events) == 0 && len(r.data.Figures) == 0
	r.mu.RUnlock()

	if !empty {
		return nil
	}

	for _, ev := range sampleEvents {
		if _, err := r.AddEvent(ctx, ev.Date, ev.Description); err != nil {
			return err
		}
	}
	for _, f := range sampleFigures {
		if _, err := r.AddFigure(ctx, f.Name, f.Achievement); err != nil {
			return err
		}
	}

	return nil
}
