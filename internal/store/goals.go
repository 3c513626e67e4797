package store

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack/internal/model"
)

// Goals returns the profile's savings goals in creation order.
func (s *Store) Goals(ctx context.Context) ([]model.Goal, error) {
	var goals []model.Goal
	if _, err := s.getJSON(ctx, keyGoals, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// AddGoal appends a goal.
func (s *Store) AddGoal(ctx context.Context, goal model.Goal) error {
	if goal.ID == "" {
		return fmt.Errorf("goal id is required")
	}

	goals, err := s.Goals(ctx)
	if err != nil {
		return err
	}
	return s.setJSON(ctx, keyGoals, append(goals, goal))
}

// RemoveGoal filters out the goal with the given id. Removing an absent id is
// a silent no-op. Parked transactions referencing the goal are kept; they
// simply stop counting toward any goal.
func (s *Store) RemoveGoal(ctx context.Context, id string) error {
	goals, err := s.Goals(ctx)
	if err != nil {
		return err
	}

	kept := goals[:0]
	for _, g := range goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	return s.setJSON(ctx, keyGoals, kept)
}
