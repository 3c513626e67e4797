package store

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack/internal/model"
)

// Transactions returns the profile's transaction log, most recently added
// first. That is insertion-recency order, not date order.
func (s *Store) Transactions(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	if _, err := s.getJSON(ctx, keyTransactions, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// AddTransaction prepends a transaction to the log.
func (s *Store) AddTransaction(ctx context.Context, tx model.Transaction) error {
	if tx.ID == "" {
		return fmt.Errorf("transaction id is required")
	}
	if tx.Note == "" {
		tx.Note = model.DefaultNote
	}

	txs, err := s.Transactions(ctx)
	if err != nil {
		return err
	}

	updated := make([]model.Transaction, 0, len(txs)+1)
	updated = append(updated, tx)
	updated = append(updated, txs...)
	return s.setJSON(ctx, keyTransactions, updated)
}

// UpdateTransaction replaces the record with a matching id. Updating an
// absent id is a silent no-op rather than an error.
func (s *Store) UpdateTransaction(ctx context.Context, tx model.Transaction) error {
	if tx.ID == "" {
		return fmt.Errorf("transaction id is required")
	}
	if tx.Note == "" {
		tx.Note = model.DefaultNote
	}

	txs, err := s.Transactions(ctx)
	if err != nil {
		return err
	}

	for i := range txs {
		if txs[i].ID == tx.ID {
			txs[i] = tx
		}
	}
	return s.setJSON(ctx, keyTransactions, txs)
}

// ClearTransactions removes the whole transaction log. There is deliberately
// no single-record delete: the product only ever allows editing a
// transaction or wiping everything.
func (s *Store) ClearTransactions(ctx context.Context) error {
	return s.kv.Remove(ctx, s.ns.key(keyTransactions))
}
