package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target funded by parked transactions.
type Goal struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	// Deadline is advisory only and never enforced.
	Deadline *time.Time `json:"deadline,omitempty"`
}

// Validate checks the creation invariants.
func (g *Goal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("goal name is required")
	}
	if !g.TargetAmount.IsPositive() {
		return fmt.Errorf("target amount must be positive, got %s", g.TargetAmount)
	}
	return nil
}
