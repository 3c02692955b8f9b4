package service

import (
	"context"
	"fmt"
	"strings"
)

// FactService exposes the fact database to the delivery layer.
type FactService struct {
	factRepo FactRepository
}

// NewFactService creates a new FactService.
func NewFactService(factRepo FactRepository) *FactService {
	return &FactService{factRepo: factRepo}
}

// AddEvent validates and stores a new dated event.
func (s *FactService) AddEvent(ctx context.Context, date, description string) (int, error) {
	date = strings.TrimSpace(date)
	description = strings.TrimSpace(description)
	if date == "" || description == "" {
		return 0, fmt.Errorf("event date and description must not be empty")
	}

	return s.factRepo.AddEvent(ctx, date, description)
}

// AddFigure validates and stores a new historical figure.
func (s *FactService) AddFigure(ctx context.Context, name, achievement string) (int, error) {
	name = strings.TrimSpace(name)
	achievement = strings.TrimSpace(achievement)
	if name == "" || achievement == "" {
		return 0, fmt.Errorf("figure name and achievement must not be empty")
	}

	return s.factRepo.AddFigure(ctx, name, achievement)
}

// Counts returns the sizes of both fact pools.
func (s *FactService) Counts(ctx context.Context) (events, figures int, err error) {
	evs, err := s.factRepo.GetAllEvents(ctx)
	if err != nil {
		return 0, 0, err
	}
	figs, err := s.factRepo.GetAllFigures(ctx)
	if err != nil {
		return 0, 0, err
	}
	return len(evs), len(figs), nil
}
