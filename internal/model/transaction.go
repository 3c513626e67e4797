// Package model defines the core domain types shared across the application.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies what a transaction does to the ledger.
type TransactionType string

const (
	// TypeIncome represents money entering an account.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money leaving an account.
	TypeExpense TransactionType = "expense"
	// TypeParked represents money earmarked toward a goal but still resident in an account.
	TypeParked TransactionType = "parked"
	// TypeTransfer represents a zero-sum movement between two owned accounts.
	TypeTransfer TransactionType = "transfer"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeParked, TypeTransfer:
		return true
	}
	return false
}

// Tag is a budgeting classification attached only to expense transactions.
type Tag string

const (
	TagNeed       Tag = "Need"
	TagWant       Tag = "Want"
	TagInvest     Tag = "Invest"
	TagAdjustment Tag = "Adjustments"
)

// Tags lists every known tag in display order.
func Tags() []Tag {
	return []Tag{TagNeed, TagWant, TagInvest, TagAdjustment}
}

// DefaultNote is stored when a transaction is created without a note.
const DefaultNote = "No description"

// Transaction is a single ledger entry. Records are immutable by id and only
// change via full replacement through the store.
type Transaction struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
	Note     string          `json:"note"`

	// Tag is set only for expenses.
	Tag Tag `json:"tag,omitempty"`
	// BankAccount is the source account for expenses and transfers, the
	// deposit target for income, and the account holding the funds for
	// parked transactions.
	BankAccount string `json:"bankAccount,omitempty"`
	// ToAccount is the destination account, set only for transfers.
	ToAccount string `json:"toAccount,omitempty"`
	// GoalID references a goal, set only for parked transactions.
	GoalID string `json:"goalId,omitempty"`
}

// Validate checks the creation invariants. Persisted records are never
// re-validated on read: data imported from elsewhere may violate these rules
// and the engine still has to sum it.
func (t *Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", t.Amount)
	}

	if t.Type == TypeExpense && t.Tag == "" {
		return fmt.Errorf("expense requires a tag")
	}
	if t.Type != TypeExpense && t.Tag != "" {
		return fmt.Errorf("tag is only valid on expenses")
	}

	if t.Type == TypeTransfer {
		if t.ToAccount == "" {
			return fmt.Errorf("transfer requires a destination account")
		}
		if t.BankAccount == t.ToAccount {
			return fmt.Errorf("transfer source and destination must differ")
		}
	} else if t.ToAccount != "" {
		return fmt.Errorf("destination account is only valid on transfers")
	}

	if t.Type == TypeParked && t.GoalID == "" {
		return fmt.Errorf("parked transaction requires a goal")
	}
	if t.Type != TypeParked && t.GoalID != "" {
		return fmt.Errorf("goal reference is only valid on parked transactions")
	}

	return nil
}
