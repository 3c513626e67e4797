package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/model"
)

func TestStore_Export(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SaveUser(ctx, model.User{ID: "u1", Name: "Alex"}))
	require.NoError(t, s.AddGoal(ctx, model.Goal{ID: "g1", Name: "Vacation", TargetAmount: decimal.NewFromInt(2000)}))
	require.NoError(t, s.AddTransaction(ctx, testTransaction("t1")))

	data, err := s.Export(ctx)
	require.NoError(t, err)

	var doc ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "FinTrack", doc.App)
	assert.Equal(t, Real, doc.Mode)
	assert.False(t, doc.ExportedAt.IsZero())
	require.NotNil(t, doc.User)
	assert.Equal(t, "Alex", doc.User.Name)
	require.Len(t, doc.Goals, 1)
	require.Len(t, doc.Transactions, 1)
	assert.Equal(t, "t1", doc.Transactions[0].ID)
}

func TestStore_Export_EmptyProfile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	data, err := s.Export(ctx)
	require.NoError(t, err)

	var doc ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	// An empty profile still exports a complete document with defaults.
	assert.Nil(t, doc.User)
	assert.Empty(t, doc.Transactions)
	assert.Equal(t, model.DefaultSettings().CurrencyCode, doc.Settings.CurrencyCode)
}
