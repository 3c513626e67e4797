package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/model"
)

// seedForeign populates a fresh foreign profile with a small self-consistent
// dataset: one user, privacy-on settings, two goals, and six transactions
// spanning income, expenses and parked funds. The user record is written
// last and doubles as the seeded marker.
func seedForeign(ctx context.Context, s *Store) error {
	now := time.Now()

	settings := model.DefaultSettings()
	settings.PrivacyModeEnabled = true
	if err := s.SaveSettings(ctx, settings); err != nil {
		return err
	}

	vacation := model.Goal{
		ID:           uuid.NewString(),
		Name:         "Vacation Fund",
		TargetAmount: decimal.NewFromInt(2000),
	}
	laptop := model.Goal{
		ID:           uuid.NewString(),
		Name:         "New Laptop",
		TargetAmount: decimal.NewFromInt(1200),
	}
	for _, goal := range []model.Goal{vacation, laptop} {
		if err := s.AddGoal(ctx, goal); err != nil {
			return err
		}
	}

	txs := []model.Transaction{
		{
			Type: model.TypeIncome, Amount: decimal.NewFromInt(3200),
			Category: "Salary", BankAccount: "Main Bank",
			Date: now.AddDate(0, 0, -21), Note: "Monthly salary",
		},
		{
			Type: model.TypeExpense, Amount: decimal.NewFromFloat(84.50),
			Category: "Food & Dining", Tag: model.TagNeed, BankAccount: "Main Bank",
			Date: now.AddDate(0, 0, -18), Note: "Groceries",
		},
		{
			Type: model.TypeExpense, Amount: decimal.NewFromFloat(45.99),
			Category: "Entertainment", Tag: model.TagWant, BankAccount: "Cash",
			Date: now.AddDate(0, 0, -14), Note: "Cinema night",
		},
		{
			Type: model.TypeExpense, Amount: decimal.NewFromFloat(120.00),
			Category: "Bills & Utilities", Tag: model.TagNeed, BankAccount: "Main Bank",
			Date: now.AddDate(0, 0, -10), Note: "Electricity",
		},
		{
			Type: model.TypeParked, Amount: decimal.NewFromInt(250),
			Category: "Goal Contribution", BankAccount: "Vault", GoalID: vacation.ID,
			Date: now.AddDate(0, 0, -7), Note: "Holiday savings",
		},
		{
			Type: model.TypeParked, Amount: decimal.NewFromInt(150),
			Category: "Goal Contribution", BankAccount: "Main Bank", GoalID: laptop.ID,
			Date: now.AddDate(0, 0, -3), Note: "Laptop savings",
		},
	}
	for i := len(txs) - 1; i >= 0; i-- {
		txs[i].ID = uuid.NewString()
		if err := s.AddTransaction(ctx, txs[i]); err != nil {
			return err
		}
	}

	return s.SaveUser(ctx, model.User{
		ID:    uuid.NewString(),
		Name:  "Jamie Doe",
		Email: "jamie.doe@example.com",
	})
}
