package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fintrackhq/fintrack/internal/cli"
	"github.com/fintrackhq/fintrack/internal/model"
)

// Categories assigned when the user does not pick one.
const (
	categoryGoalContribution = "Goal Contribution"
	categoryTransfer         = "Inter Account Transfer"
)

func addCmd() *cobra.Command {
	var (
		txType   string
		amount   string
		category string
		tag      string
		account  string
		to       string
		goalID   string
		note     string
		date     string
		editID   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or edit a transaction",
		Long: `Record an income, expense, parked or transfer transaction. Pass --id to
replace an existing transaction instead of creating a new one.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			tx, err := buildTransaction(txType, amount, category, tag, account, to, goalID, note, date)
			if err != nil {
				return err
			}

			if editID != "" {
				tx.ID = editID
				if err := s.UpdateTransaction(ctx, tx); err != nil {
					return fmt.Errorf("failed to update transaction: %w", err)
				}
				fmt.Println(cli.SuccessStyle.Render("Transaction updated."))
				return nil
			}

			tx.ID = uuid.NewString()
			if err := s.AddTransaction(ctx, tx); err != nil {
				return fmt.Errorf("failed to add transaction: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Transaction recorded (%s).", tx.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "expense", "transaction type (income, expense, parked, transfer)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&category, "category", "", "category")
	cmd.Flags().StringVar(&tag, "tag", "", "budget tag for expenses (Need, Want, Invest, Adjustments)")
	cmd.Flags().StringVar(&account, "account", "", "source account, or the park account for parked funds")
	cmd.Flags().StringVar(&to, "to", "", "destination account for transfers")
	cmd.Flags().StringVar(&goalID, "goal", "", "goal id for parked funds")
	cmd.Flags().StringVar(&note, "note", "", "free-form note")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&editID, "id", "", "id of an existing transaction to replace")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// buildTransaction validates the flag values into a transaction. Validation
// failures happen before any store mutation; a rejected transaction is never
// partially applied.
func buildTransaction(txType, amount, category, tag, account, to, goalID, note, date string) (model.Transaction, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	when := time.Now()
	if date != "" {
		when, err = time.Parse("2006-01-02", date)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", date, err)
		}
	}

	tx := model.Transaction{
		Amount:      value,
		Type:        model.TransactionType(txType),
		Category:    category,
		Date:        when,
		Note:        note,
		Tag:         model.Tag(tag),
		BankAccount: account,
		ToAccount:   to,
		GoalID:      goalID,
	}

	// Fill the category the product assigns when the user leaves it blank.
	if tx.Category == "" {
		switch tx.Type {
		case model.TypeIncome:
			tx.Category = "Salary"
		case model.TypeParked:
			tx.Category = categoryGoalContribution
		case model.TypeTransfer:
			tx.Category = categoryTransfer
		}
	}

	if err := tx.Validate(); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}
