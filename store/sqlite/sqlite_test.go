package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jachemlyn/chinabank-online/ledger"
	"github.com/jachemlyn/chinabank-online/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_GetSet(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", "v1"))
	v, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	// Upsert overwrites.
	require.NoError(t, store.Set("k", "v2"))
	v, _, _ = store.Get("k")
	assert.Equal(t, "v2", v)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.db")

	store, err := sqlite.New(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("mock_total_points", "900"))
	require.NoError(t, store.Close())

	reopened, err := sqlite.New(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get("mock_total_points")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "900", v)
}

func TestStore_BacksTheLedgerEngine(t *testing.T) {
	// The sqlite store has to be a drop-in substrate for the engine.
	store := newTestStore(t)
	eng := ledger.New(store)

	points, err := eng.RecordBillPayment("Meralco", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, int64(2), points)

	txs, err := eng.Transactions()
	require.NoError(t, err)
	assert.Len(t, txs, len(ledger.SeedTransactions())+1)
}
