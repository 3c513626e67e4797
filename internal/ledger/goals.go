package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/model"
)

// UnknownAccount is the bucket for parked funds whose transaction carries no
// account.
const UnknownAccount = "Unknown"

// GoalSummary describes how far along a goal is and where its funds sit.
type GoalSummary struct {
	Saved decimal.Decimal
	// PerAccount groups the goal's parked funds by holding account.
	PerAccount map[string]decimal.Decimal
	// Percent is clamped to [0, 100]: over-funding never renders past 100.
	Percent float64
}

// GoalProgress sums the parked transactions referencing the goal.
func GoalProgress(goal model.Goal, txs []model.Transaction) GoalSummary {
	progress := GoalSummary{
		PerAccount: make(map[string]decimal.Decimal),
	}

	for _, tx := range txs {
		if tx.Type != model.TypeParked || tx.GoalID != goal.ID {
			continue
		}
		progress.Saved = progress.Saved.Add(tx.Amount)

		account := tx.BankAccount
		if account == "" {
			account = UnknownAccount
		}
		progress.PerAccount[account] = progress.PerAccount[account].Add(tx.Amount)
	}

	progress.Percent = goalPercent(progress.Saved, goal.TargetAmount)
	return progress
}

// goalPercent clamps to 100 and defines the zero-target edge: a funded goal
// with no target is complete, an unfunded one is at zero.
func goalPercent(saved, target decimal.Decimal) float64 {
	if !target.IsPositive() {
		if saved.IsPositive() {
			return 100
		}
		return 0
	}

	pct, _ := saved.Div(target).Mul(decimal.NewFromInt(100)).Float64()
	if pct > 100 {
		return 100
	}
	return pct
}
