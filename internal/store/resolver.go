package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fintrackhq/fintrack/internal/storage"
)

// Resolver decides which namespace reads and writes target. The mode flag is
// the only state it owns; an absent flag means the real profile.
type Resolver struct {
	kv storage.KV
}

// NewResolver creates a resolver over the given backend.
func NewResolver(kv storage.KV) *Resolver {
	return &Resolver{kv: kv}
}

// Current returns the active namespace.
func (r *Resolver) Current(ctx context.Context) (Namespace, error) {
	value, ok, err := r.kv.Get(ctx, keyAppMode)
	if err != nil {
		return Real, fmt.Errorf("failed to read app mode: %w", err)
	}
	if ok && string(value) == string(Foreign) {
		return Foreign, nil
	}
	return Real, nil
}

// SetForeign switches the active namespace. Enabling foreign view for the
// first time seeds a complete demo dataset; disabling it never deletes the
// foreign data, so it is all still there if re-enabled.
func (r *Resolver) SetForeign(ctx context.Context, enabled bool) error {
	if !enabled {
		if err := r.kv.Set(ctx, keyAppMode, []byte(Real)); err != nil {
			return fmt.Errorf("failed to write app mode: %w", err)
		}
		return nil
	}

	seeded, err := r.foreignSeeded(ctx)
	if err != nil {
		return err
	}
	if !seeded {
		if err := seedForeign(ctx, New(r.kv, Foreign)); err != nil {
			return fmt.Errorf("failed to seed foreign profile: %w", err)
		}
		slog.Info("Seeded foreign profile with demo dataset")
	}

	if err := r.kv.Set(ctx, keyAppMode, []byte(Foreign)); err != nil {
		return fmt.Errorf("failed to write app mode: %w", err)
	}
	return nil
}

// Store returns a store bound to the active namespace.
func (r *Resolver) Store(ctx context.Context) (*Store, error) {
	ns, err := r.Current(ctx)
	if err != nil {
		return nil, err
	}
	return New(r.kv, ns), nil
}

// foreignSeeded reports whether any foreign data already exists. Presence of
// the foreign user record is the seed marker: it is written last during
// seeding, so a complete dataset is guaranteed once it exists.
func (r *Resolver) foreignSeeded(ctx context.Context) (bool, error) {
	_, ok, err := r.kv.Get(ctx, Foreign.key(keyUser))
	if err != nil {
		return false, fmt.Errorf("failed to check foreign profile: %w", err)
	}
	return ok, nil
}
