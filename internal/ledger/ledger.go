// Package ledger derives balances, totals and aggregates from the raw
// transaction log. Everything here is a pure function over (transactions,
// settings): nothing is materialized or incrementally maintained, views are
// recomputed from the full log on every read.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/model"
)

// Summary holds the dashboard totals for a scope-filtered transaction set.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	TotalParked  decimal.Decimal
	// TransferNet is incoming minus outgoing transfers for the primary
	// account. In all-accounts scope it is zero: transfers only move money
	// between owned accounts, so they net out across the whole system.
	TransferNet decimal.Decimal
	Balance     decimal.Decimal
}

// Summarize computes the dashboard totals under the settings' scope.
func Summarize(txs []model.Transaction, settings model.Settings) Summary {
	primaryOnly := settings.DashboardScope == model.ScopePrimary
	primary := settings.PrimaryAccount

	var sum Summary
	for _, tx := range txs {
		if primaryOnly && tx.BankAccount != primary && tx.ToAccount != primary {
			continue
		}

		switch tx.Type {
		case model.TypeIncome, model.TypeExpense, model.TypeParked:
			if primaryOnly && tx.BankAccount != primary {
				continue
			}
			switch tx.Type {
			case model.TypeIncome:
				sum.TotalIncome = sum.TotalIncome.Add(tx.Amount)
			case model.TypeExpense:
				sum.TotalExpense = sum.TotalExpense.Add(tx.Amount)
			default:
				sum.TotalParked = sum.TotalParked.Add(tx.Amount)
			}
		case model.TypeTransfer:
			if !primaryOnly {
				continue
			}
			if tx.ToAccount == primary {
				sum.TransferNet = sum.TransferNet.Add(tx.Amount)
			}
			if tx.BankAccount == primary {
				sum.TransferNet = sum.TransferNet.Sub(tx.Amount)
			}
		}
	}

	sum.Balance = sum.TotalIncome.
		Sub(sum.TotalExpense).
		Sub(sum.TotalParked).
		Add(sum.TransferNet)
	return sum
}

// AccountBalance is the lifetime position of a single declared bank account.
type AccountBalance struct {
	Name    string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Parked  decimal.Decimal
	Balance decimal.Decimal
}

// AccountBalances computes per-account positions over the entire unfiltered
// log, one entry per declared bank account in settings order. Account-level
// views are always global, unlike the dashboard, so the dashboard scope does
// not apply here.
func AccountBalances(txs []model.Transaction, settings model.Settings) []AccountBalance {
	balances := make([]AccountBalance, 0, len(settings.BankAccounts))
	for _, name := range settings.BankAccounts {
		ab := AccountBalance{Name: name}
		for _, tx := range txs {
			if tx.BankAccount != name {
				continue
			}
			switch tx.Type {
			case model.TypeIncome:
				ab.Income = ab.Income.Add(tx.Amount)
			case model.TypeExpense:
				ab.Expense = ab.Expense.Add(tx.Amount)
			case model.TypeParked:
				ab.Parked = ab.Parked.Add(tx.Amount)
			}
		}
		ab.Balance = ab.Income.Sub(ab.Expense).Sub(ab.Parked)
		balances = append(balances, ab)
	}
	return balances
}
