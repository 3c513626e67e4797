package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/fintrackhq/fintrack/internal/config"
	"github.com/fintrackhq/fintrack/internal/rates"
	"github.com/fintrackhq/fintrack/internal/storage"
	"github.com/fintrackhq/fintrack/internal/store"
)

// initKV opens the key/value backend with proper path expansion.
func initKV() (storage.KV, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/fintrack/fintrack.db"
	}
	dbPath = config.ExpandPath(dbPath)

	kv, err := storage.NewSQLiteKV(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return kv, nil
}

// openStore resolves the active profile and returns a store bound to it.
// Every command goes through here, so no command can accidentally read the
// other profile's records.
func openStore(ctx context.Context) (storage.KV, *store.Store, error) {
	kv, err := initKV()
	if err != nil {
		return nil, nil, err
	}

	resolver := store.NewResolver(kv)
	s, err := resolver.Store(ctx)
	if err != nil {
		_ = kv.Close()
		return nil, nil, err
	}
	return kv, s, nil
}

// newRateService wires the exchange card service for the given store.
func newRateService(s *store.Store) *rates.Service {
	endpoint := viper.GetString("rates.endpoint")
	timeout := viper.GetDuration("rates.timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return rates.NewService(s, rates.NewHTTPFetcher(endpoint, timeout))
}
