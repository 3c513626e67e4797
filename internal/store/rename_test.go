package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/model"
)

func TestStore_RenameAccount_RewritesEverything(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	settings := model.DefaultSettings()
	settings.PrimaryAccount = "Main Bank"
	require.NoError(t, s.SaveSettings(ctx, settings))

	expense := testTransaction("e1")
	expense.BankAccount = "Main Bank"
	require.NoError(t, s.AddTransaction(ctx, expense))

	transfer := testTransaction("t1")
	transfer.Type = model.TypeTransfer
	transfer.Tag = ""
	transfer.BankAccount = "Cash"
	transfer.ToAccount = "Main Bank"
	require.NoError(t, s.AddTransaction(ctx, transfer))

	untouched := testTransaction("u1")
	untouched.BankAccount = "Cash"
	require.NoError(t, s.AddTransaction(ctx, untouched))

	require.NoError(t, s.RenameAccount(ctx, "Main Bank", "Checking"))

	txs, err := s.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 3)

	byID := make(map[string]model.Transaction)
	for _, tx := range txs {
		byID[tx.ID] = tx
	}
	assert.Equal(t, "Checking", byID["e1"].BankAccount)
	assert.Equal(t, "Cash", byID["t1"].BankAccount)
	assert.Equal(t, "Checking", byID["t1"].ToAccount)

	// A transaction referencing neither side of the rename is untouched.
	assert.Equal(t, untouched, byID["u1"])

	renamed, err := s.Settings(ctx)
	require.NoError(t, err)
	assert.NotContains(t, renamed.BankAccounts, "Main Bank")
	assert.Contains(t, renamed.BankAccounts, "Checking")
	assert.NotContains(t, renamed.ParkAccounts, "Main Bank")
	assert.Contains(t, renamed.ParkAccounts, "Checking")
	assert.Equal(t, "Checking", renamed.PrimaryAccount)
}

func TestStore_RenameAccount_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		oldName string
		newName string
		wantErr error
	}{
		{name: "unknown old name", oldName: "Nope", newName: "Checking", wantErr: common.ErrAccountUnknown},
		{name: "new name already exists", oldName: "Cash", newName: "Main Bank", wantErr: common.ErrAccountExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			err := s.RenameAccount(ctx, tt.oldName, tt.newName)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("empty new name", func(t *testing.T) {
		s := newTestStore(t)
		assert.Error(t, s.RenameAccount(ctx, "Cash", ""))
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.RenameAccount(ctx, "Cash", "Cash"))

		settings, err := s.Settings(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultSettings(), settings)
	})
}

func TestStore_RenameAccount_ProtectedAccountsCanBeRenamed(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.RenameAccount(ctx, "Cash", "Wallet"))

	settings, err := s.Settings(ctx)
	require.NoError(t, err)
	assert.Contains(t, settings.BankAccounts, "Wallet")
	assert.NotContains(t, settings.BankAccounts, "Cash")
}

func TestStore_AddBankAccount(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddBankAccount(ctx, "Savings"))

	settings, err := s.Settings(ctx)
	require.NoError(t, err)
	assert.Contains(t, settings.BankAccounts, "Savings")
	// New bank accounts double as park accounts.
	assert.Contains(t, settings.ParkAccounts, "Savings")

	err = s.AddBankAccount(ctx, "Savings")
	assert.ErrorIs(t, err, common.ErrAccountExists)

	assert.Error(t, s.AddBankAccount(ctx, ""))
}

func TestStore_RemoveAccount(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddBankAccount(ctx, "Savings"))
	require.NoError(t, s.RemoveAccount(ctx, "Savings"))

	settings, err := s.Settings(ctx)
	require.NoError(t, err)
	assert.NotContains(t, settings.BankAccounts, "Savings")
	assert.NotContains(t, settings.ParkAccounts, "Savings")

	err = s.RemoveAccount(ctx, "Cash")
	assert.ErrorIs(t, err, common.ErrAccountProtected)

	err = s.RemoveAccount(ctx, "Nope")
	assert.ErrorIs(t, err, common.ErrAccountUnknown)
}

func TestStore_RemoveAccount_ResetsPrimary(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddBankAccount(ctx, "Savings"))

	settings, err := s.Settings(ctx)
	require.NoError(t, err)
	settings.PrimaryAccount = "Savings"
	require.NoError(t, s.SaveSettings(ctx, settings))

	require.NoError(t, s.RemoveAccount(ctx, "Savings"))

	settings, err = s.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.BankAccounts[0], settings.PrimaryAccount)
}
