package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/model"
	"github.com/fintrackhq/fintrack/internal/storage"
)

func TestResolver_DefaultsToReal(t *testing.T) {
	ctx := context.Background()
	r := NewResolver(storage.NewMemoryKV())

	ns, err := r.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, Real, ns)

	s, err := r.Store(ctx)
	require.NoError(t, err)
	assert.Equal(t, Real, s.Namespace())
}

func TestResolver_SetForeign_SeedsOnFirstEnable(t *testing.T) {
	ctx := context.Background()
	r := NewResolver(storage.NewMemoryKV())

	require.NoError(t, r.SetForeign(ctx, true))

	ns, err := r.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, Foreign, ns)

	foreign, err := r.Store(ctx)
	require.NoError(t, err)

	user, err := foreign.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Jamie Doe", user.Name)

	settings, err := foreign.Settings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.PrivacyModeEnabled)

	goals, err := foreign.Goals(ctx)
	require.NoError(t, err)
	assert.Len(t, goals, 2)

	txs, err := foreign.Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, txs, 6)
}

func TestResolver_SetForeign_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := NewResolver(storage.NewMemoryKV())

	require.NoError(t, r.SetForeign(ctx, true))

	foreign := New(r.kv, Foreign)
	first, err := foreign.Transactions(ctx)
	require.NoError(t, err)

	// Add to the decoy, bounce through real and back. Nothing reseeds.
	extra := testTransaction("decoy-extra")
	require.NoError(t, foreign.AddTransaction(ctx, extra))

	require.NoError(t, r.SetForeign(ctx, false))
	require.NoError(t, r.SetForeign(ctx, true))

	again, err := foreign.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, again, len(first)+1)
	assert.Equal(t, "decoy-extra", again[0].ID)
}

func TestResolver_ProfilesAreIsolated(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	real := New(kv, Real)
	require.NoError(t, real.AddTransaction(ctx, testTransaction("real-only")))
	require.NoError(t, real.AddGoal(ctx, model.Goal{ID: "rg", Name: "House", TargetAmount: decimal.NewFromInt(5000)}))

	r := NewResolver(kv)
	require.NoError(t, r.SetForeign(ctx, true))
	foreign := New(kv, Foreign)

	// Nothing real leaks into the decoy.
	txs, err := foreign.Transactions(ctx)
	require.NoError(t, err)
	for _, tx := range txs {
		assert.NotEqual(t, "real-only", tx.ID)
	}

	goals, err := foreign.Goals(ctx)
	require.NoError(t, err)
	for _, g := range goals {
		assert.NotEqual(t, "rg", g.ID)
	}

	// Writes to the decoy never touch real data.
	require.NoError(t, foreign.ClearTransactions(ctx))
	realTxs, err := real.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, realTxs, 1)
	assert.Equal(t, "real-only", realTxs[0].ID)
}

func TestResolver_DisableNeverDeletesForeignData(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	r := NewResolver(kv)

	require.NoError(t, r.SetForeign(ctx, true))
	require.NoError(t, r.SetForeign(ctx, false))

	ns, err := r.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, Real, ns)

	txs, err := New(kv, Foreign).Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, txs, 6)
}

func TestStore_Wipe_LeavesOtherProfileAndDeviceState(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	real := New(kv, Real)
	require.NoError(t, real.AddTransaction(ctx, testTransaction("a")))
	require.NoError(t, real.SetPIN(ctx, "1234"))

	r := NewResolver(kv)
	require.NoError(t, r.SetForeign(ctx, true))

	require.NoError(t, real.Wipe(ctx))

	txs, err := real.Transactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)

	// The decoy dataset and the device lock both survive a profile wipe.
	foreignTxs, err := New(kv, Foreign).Transactions(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, foreignTxs)

	hasPIN, err := real.HasPIN(ctx)
	require.NoError(t, err)
	assert.True(t, hasPIN)
}
