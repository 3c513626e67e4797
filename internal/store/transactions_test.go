package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/model"
	"github.com/fintrackhq/fintrack/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(storage.NewMemoryKV(), Real)
}

func testTransaction(id string) model.Transaction {
	return model.Transaction{
		ID:          id,
		Type:        model.TypeExpense,
		Amount:      decimal.NewFromInt(10),
		Category:    "Other",
		Tag:         model.TagWant,
		BankAccount: "Main Bank",
		Date:        time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Note:        "note " + id,
	}
}

func TestStore_Transactions_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// An empty profile has an empty log, not an error.
	txs, err := s.Transactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)

	require.NoError(t, s.AddTransaction(ctx, testTransaction("a")))
	require.NoError(t, s.AddTransaction(ctx, testTransaction("b")))
	require.NoError(t, s.AddTransaction(ctx, testTransaction("c")))

	txs, err = s.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, "c", txs[0].ID)
	assert.Equal(t, "b", txs[1].ID)
	assert.Equal(t, "a", txs[2].ID)
}

func TestStore_AddTransaction_DefaultNote(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tx := testTransaction("a")
	tx.Note = ""
	require.NoError(t, s.AddTransaction(ctx, tx))

	txs, err := s.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, model.DefaultNote, txs[0].Note)
}

func TestStore_AddTransaction_RequiresID(t *testing.T) {
	s := newTestStore(t)
	err := s.AddTransaction(context.Background(), testTransaction(""))
	assert.Error(t, err)
}

func TestStore_UpdateTransaction(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddTransaction(ctx, testTransaction("a")))
	require.NoError(t, s.AddTransaction(ctx, testTransaction("b")))

	updated := testTransaction("a")
	updated.Amount = decimal.NewFromInt(99)
	require.NoError(t, s.UpdateTransaction(ctx, updated))

	txs, err := s.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "b", txs[0].ID)
	assert.True(t, txs[1].Amount.Equal(decimal.NewFromInt(99)))
}

func TestStore_UpdateTransaction_AbsentIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddTransaction(ctx, testTransaction("a")))

	before, err := s.Transactions(ctx)
	require.NoError(t, err)

	require.NoError(t, s.UpdateTransaction(ctx, testTransaction("missing")))

	after, err := s.Transactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_ClearTransactions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddTransaction(ctx, testTransaction("a")))
	require.NoError(t, s.ClearTransactions(ctx))

	txs, err := s.Transactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)

	// Clearing an already-empty log is fine.
	require.NoError(t, s.ClearTransactions(ctx))
}

func TestStore_Goals(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	goals, err := s.Goals(ctx)
	require.NoError(t, err)
	assert.Empty(t, goals)

	g1 := model.Goal{ID: "g1", Name: "Vacation", TargetAmount: decimal.NewFromInt(2000)}
	g2 := model.Goal{ID: "g2", Name: "Laptop", TargetAmount: decimal.NewFromInt(1200)}
	require.NoError(t, s.AddGoal(ctx, g1))
	require.NoError(t, s.AddGoal(ctx, g2))

	goals, err = s.Goals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "g1", goals[0].ID)
	assert.Equal(t, "g2", goals[1].ID)

	require.NoError(t, s.RemoveGoal(ctx, "g1"))
	goals, err = s.Goals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "g2", goals[0].ID)

	// Removing an absent goal is a silent no-op.
	require.NoError(t, s.RemoveGoal(ctx, "missing"))
}

func TestStore_AddGoal_RequiresID(t *testing.T) {
	s := newTestStore(t)
	err := s.AddGoal(context.Background(), model.Goal{Name: "Vacation"})
	assert.Error(t, err)
}
