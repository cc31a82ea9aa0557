package tokenstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRevoke(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "token-1", time.Hour))

	revoked, err = store.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	require.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "token-2")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "short-lived", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	revoked, err := store.IsRevoked(ctx, "short-lived")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestMemoryStoreIgnoresEmptyAndExpired(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "", time.Hour))
	require.NoError(t, store.Revoke(ctx, "already-expired", -time.Minute))

	revoked, err := store.IsRevoked(ctx, "already-expired")
	require.NoError(t, err)
	require.False(t, revoked)
}
