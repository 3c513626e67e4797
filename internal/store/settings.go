package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fintrackhq/fintrack/internal/model"
)

// Settings returns the profile's configuration, falling back to defaults when
// none has been saved yet. Records written by older versions of the schema
// are upgraded in memory through the migration chain; the upgraded form is
// only persisted by the next explicit save.
func (s *Store) Settings(ctx context.Context) (model.Settings, error) {
	raw, ok, err := s.kv.Get(ctx, s.ns.key(keySettings))
	if err != nil {
		return model.Settings{}, err
	}
	if !ok {
		return model.DefaultSettings(), nil
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return model.Settings{}, fmt.Errorf("failed to decode settings record: %w", err)
	}

	for _, m := range settingsMigrations {
		if m.applies(fields) {
			m.up(fields)
			slog.Debug("Upgraded settings record", "migration", m.description)
		}
	}

	upgraded, err := json.Marshal(fields)
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to re-encode settings record: %w", err)
	}

	var settings model.Settings
	if err := json.Unmarshal(upgraded, &settings); err != nil {
		return model.Settings{}, fmt.Errorf("failed to decode settings record: %w", err)
	}
	return settings, nil
}

// SaveSettings replaces the configuration record.
func (s *Store) SaveSettings(ctx context.Context, settings model.Settings) error {
	return s.setJSON(ctx, keySettings, settings)
}

// settingsMigration upgrades a persisted settings record missing a field that
// a later schema introduced. Each step checks applicability itself so the
// chain can run unconditionally on every read.
type settingsMigration struct {
	applies     func(fields map[string]json.RawMessage) bool
	up          func(fields map[string]json.RawMessage)
	description string
}

var settingsMigrations = []settingsMigration{
	{
		description: "split the flat category list into expense and income categories",
		applies: func(fields map[string]json.RawMessage) bool {
			_, ok := fields["expenseCategories"]
			return !ok
		},
		up: func(fields map[string]json.RawMessage) {
			defaults := model.DefaultSettings()
			// The earliest schema carried a single "categories" list, which
			// maps onto the expense side.
			if cats, ok := fields["categories"]; ok {
				fields["expenseCategories"] = cats
			} else {
				fields["expenseCategories"] = mustJSON(defaults.ExpenseCategories)
			}
			fields["incomeCategories"] = mustJSON(defaults.IncomeCategories)
			delete(fields, "categories")
		},
	},
	{
		description: "introduce the primary account and dashboard scope",
		applies: func(fields map[string]json.RawMessage) bool {
			_, ok := fields["primaryAccount"]
			return !ok
		},
		up: func(fields map[string]json.RawMessage) {
			// Default the primary account to the first declared bank account
			// so it is always a member of the list.
			var accounts []string
			if raw, ok := fields["bankAccounts"]; ok {
				_ = json.Unmarshal(raw, &accounts)
			}
			primary := model.DefaultSettings().PrimaryAccount
			if len(accounts) > 0 {
				primary = accounts[0]
			}
			fields["primaryAccount"] = mustJSON(primary)
			fields["dashboardScope"] = mustJSON(model.ScopeAll)
		},
	},
	{
		description: "introduce the AI insights toggle",
		applies: func(fields map[string]json.RawMessage) bool {
			_, ok := fields["enableAI"]
			return !ok
		},
		up: func(fields map[string]json.RawMessage) {
			fields["enableAI"] = mustJSON(true)
		},
	},
}

func mustJSON(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("failed to encode migration default: %v", err))
	}
	return data
}
