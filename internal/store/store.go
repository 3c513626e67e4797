package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fintrackhq/fintrack/internal/storage"
)

// Store reads and writes the typed records of a single profile. The namespace
// is fixed at construction so that a store can never touch the other
// profile's records.
type Store struct {
	kv storage.KV
	ns Namespace
}

// New binds a store to a namespace.
func New(kv storage.KV, ns Namespace) *Store {
	return &Store{kv: kv, ns: ns}
}

// Namespace returns the profile this store is bound to.
func (s *Store) Namespace() Namespace {
	return s.ns
}

// getJSON decodes the record at name into out, reporting presence.
func (s *Store) getJSON(ctx context.Context, name string, out any) (bool, error) {
	value, ok, err := s.kv.Get(ctx, s.ns.key(name))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(value, out); err != nil {
		return false, fmt.Errorf("failed to decode %s record: %w", name, err)
	}
	return true, nil
}

// setJSON encodes value and stores it at name.
func (s *Store) setJSON(ctx context.Context, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", name, err)
	}
	return s.kv.Set(ctx, s.ns.key(name), data)
}

// Wipe removes every record owned by this profile. The PIN and mode flag are
// device-level and survive a wipe.
func (s *Store) Wipe(ctx context.Context) error {
	for _, name := range []string{keyTransactions, keyUser, keySettings, keyGoals, keyExchangeCards} {
		if err := s.kv.Remove(ctx, s.ns.key(name)); err != nil {
			return fmt.Errorf("failed to wipe %s: %w", name, err)
		}
	}
	return nil
}
