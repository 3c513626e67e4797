package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/model"
	"github.com/fintrackhq/fintrack/internal/storage"
)

func TestStore_User(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	user, err := s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	saved := model.User{ID: "u1", Name: "Alex", Email: "alex@example.com"}
	require.NoError(t, s.SaveUser(ctx, saved))

	user, err = s.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, saved, *user)

	require.NoError(t, s.DeleteUser(ctx))
	user, err = s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestStore_PIN(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	hasPIN, err := s.HasPIN(ctx)
	require.NoError(t, err)
	assert.False(t, hasPIN)

	// No PIN set means nothing verifies.
	ok, err := s.VerifyPIN(ctx, "1234")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Error(t, s.SetPIN(ctx, "123"))
	assert.Error(t, s.SetPIN(ctx, "12345"))

	require.NoError(t, s.SetPIN(ctx, "1234"))

	ok, err = s.VerifyPIN(ctx, "1234")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.VerifyPIN(ctx, "4321")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.ClearPIN(ctx))
	hasPIN, err = s.HasPIN(ctx)
	require.NoError(t, err)
	assert.False(t, hasPIN)
}

func TestStore_PIN_SharedAcrossProfiles(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	require.NoError(t, New(kv, Real).SetPIN(ctx, "1234"))

	// One device lock, both profiles.
	ok, err := New(kv, Foreign).VerifyPIN(ctx, "1234")
	require.NoError(t, err)
	assert.True(t, ok)
}
