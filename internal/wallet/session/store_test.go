package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/monpay/wallet-bridge/internal/wallet/session"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	db, err := session.OpenDatabase(ctx, filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	defer db.Close()

	store := session.NewStore(db)

	// Empty store yields no address, not an error.
	address, err := store.LoadAddress(ctx)
	require.NoError(t, err)
	assert.Empty(t, address)

	require.NoError(t, store.SaveAddress(ctx, testAddress))

	address, err = store.LoadAddress(ctx)
	require.NoError(t, err)
	assert.Equal(t, testAddress, address)

	// Saving again replaces the previous value.
	const other = "0x8617E340B3D01FA5F11F306F4090FD50E238070D"
	require.NoError(t, store.SaveAddress(ctx, other))

	address, err = store.LoadAddress(ctx)
	require.NoError(t, err)
	assert.Equal(t, other, address)

	require.NoError(t, store.ClearAddress(ctx))

	address, err = store.LoadAddress(ctx)
	require.NoError(t, err)
	assert.Empty(t, address)
}
