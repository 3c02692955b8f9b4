package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/dkazarau/histbot/internal/domain/entities"
	"github.com/dkazarau/histbot/internal/storage"
)

// ErrNoFacts is returned when the fact pool for the requested kind is empty.
var ErrNoFacts = errors.New("no facts available")

// Selector picks random non-repeating facts per user and fact kind. A fact is
// not shown again until the user has seen the whole pool, after which the
// consumed set resets and selection starts over.
//
// Methods take an already locked session: the quiz service holds the per-user
// lock across select-and-assign.
type Selector struct {
	factRepo FactRepository
}

// NewSelector creates a new Selector.
func NewSelector(factRepo FactRepository) *Selector {
	return &Selector{factRepo: factRepo}
}

// SelectEvent picks a random event the user has not seen in the current pass.
func (s *Selector) SelectEvent(ctx context.Context, sess *storage.UserSession) (*entities.Event, error) {
	events, err := s.factRepo.GetAllEvents(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrNoFacts
	}

	consumed := sess.ConsumedFor(entities.KindEvent)

	available := make([]*entities.Event, 0, len(events))
	for _, ev := range events {
		if _, seen := consumed[ev.ID]; !seen {
			available = append(available, ev)
		}
	}

	if len(available) == 0 {
		sess.ResetConsumed(entities.KindEvent)
		consumed = sess.ConsumedFor(entities.KindEvent)
		available = events
	}

	ev := available[rand.Intn(len(available))]
	consumed[ev.ID] = struct{}{}

	return ev, nil
}

// SelectFigure picks a random figure the user has not seen in the current pass.
func (s *Selector) SelectFigure(ctx context.Context, sess *storage.UserSession) (*entities.Figure, error) {
	figures, err := s.factRepo.GetAllFigures(ctx)
	if err != nil {
		return nil, err
	}
	if len(figures) == 0 {
		return nil, ErrNoFacts
	}

	consumed := sess.ConsumedFor(entities.KindFigure)

	available := make([]*entities.Figure, 0, len(figures))
	for _, f := range figures {
		if _, seen := consumed[f.ID]; !seen {
			available = append(available, f)
		}
	}

	if len(available) == 0 {
		sess.ResetConsumed(entities.KindFigure)
		consumed = sess.ConsumedFor(entities.KindFigure)
		available = figures
	}

	f := available[rand.Intn(len(available))]
	consumed[f.ID] = struct{}{}

	return f, nil
}
