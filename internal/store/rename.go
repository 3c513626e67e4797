package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/model"
)

// RenameAccount rewrites every reference to oldName across the profile.
// Transactions are committed before settings: if the second write is lost,
// transactions point at a name missing from settings, which is detectable,
// instead of settings pointing at a name no transaction uses.
func (s *Store) RenameAccount(ctx context.Context, oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("new account name is required")
	}
	if newName == oldName {
		return nil
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(settings.BankAccounts, oldName) && !slices.Contains(settings.ParkAccounts, oldName) {
		return fmt.Errorf("%w: %s", common.ErrAccountUnknown, oldName)
	}
	if slices.Contains(settings.BankAccounts, newName) || slices.Contains(settings.ParkAccounts, newName) {
		return fmt.Errorf("%w: %s", common.ErrAccountExists, newName)
	}

	txs, err := s.Transactions(ctx)
	if err != nil {
		return err
	}
	for i := range txs {
		if txs[i].BankAccount == oldName {
			txs[i].BankAccount = newName
		}
		if txs[i].ToAccount == oldName {
			txs[i].ToAccount = newName
		}
	}
	if err := s.setJSON(ctx, keyTransactions, txs); err != nil {
		return fmt.Errorf("failed to rewrite transactions: %w", err)
	}

	renameAll(settings.BankAccounts, oldName, newName)
	renameAll(settings.ParkAccounts, oldName, newName)
	if settings.PrimaryAccount == oldName {
		settings.PrimaryAccount = newName
	}
	if err := s.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to rewrite settings: %w", err)
	}
	return nil
}

func renameAll(names []string, oldName, newName string) {
	for i, name := range names {
		if name == oldName {
			names[i] = newName
		}
	}
}

// AddBankAccount declares a new bank account. New bank accounts also become
// park accounts, matching how the product behaves.
func (s *Store) AddBankAccount(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("account name is required")
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(settings.BankAccounts, name) {
		return fmt.Errorf("%w: %s", common.ErrAccountExists, name)
	}

	settings.BankAccounts = append(settings.BankAccounts, name)
	if !slices.Contains(settings.ParkAccounts, name) {
		settings.ParkAccounts = append(settings.ParkAccounts, name)
	}
	return s.SaveSettings(ctx, settings)
}

// RemoveAccount deletes an account from settings. Protected accounts can be
// renamed but never removed. Historical transactions keep the name and keep
// summing; only the declared lists change.
func (s *Store) RemoveAccount(ctx context.Context, name string) error {
	if model.IsProtectedAccount(name) {
		return fmt.Errorf("%w: %s", common.ErrAccountProtected, name)
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(settings.BankAccounts, name) && !slices.Contains(settings.ParkAccounts, name) {
		return fmt.Errorf("%w: %s", common.ErrAccountUnknown, name)
	}

	settings.BankAccounts = slices.DeleteFunc(settings.BankAccounts, func(n string) bool { return n == name })
	settings.ParkAccounts = slices.DeleteFunc(settings.ParkAccounts, func(n string) bool { return n == name })
	if settings.PrimaryAccount == name && len(settings.BankAccounts) > 0 {
		settings.PrimaryAccount = settings.BankAccounts[0]
	}
	return s.SaveSettings(ctx, settings)
}
