package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fintrackhq/fintrack/internal/model"
)

// ExportDocument is the write-only archival format. Import is deliberately
// not implemented.
type ExportDocument struct {
	App          string              `json:"app"`
	Mode         Namespace           `json:"mode"`
	ExportedAt   time.Time           `json:"exportedAt"`
	User         *model.User         `json:"user"`
	Settings     model.Settings      `json:"settings"`
	Goals        []model.Goal        `json:"goals"`
	Transactions []model.Transaction `json:"transactions"`
}

// Export assembles the profile's full dataset as indented JSON.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	user, err := s.User(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := s.Goals(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	doc := ExportDocument{
		App:          "FinTrack",
		Mode:         s.ns,
		ExportedAt:   time.Now().UTC(),
		User:         user,
		Settings:     settings,
		Goals:        goals,
		Transactions: txs,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export document: %w", err)
	}
	return data, nil
}
