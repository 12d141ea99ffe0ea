package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cotiza/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "cotiza.db"), store.Path())
	assert.FileExists(t, store.Path())
}

func TestNewStore_RecordsMigrations(t *testing.T) {
	store := setupTestStore(t)

	version, err := store.SchemaVersion()

	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.KeyValueStore().Set(context.Background(), "servicios", []byte("[]")))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.KeyValueStore().Get(context.Background(), "servicios")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestNewStore_TwoHandlesLastWriterWins(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	defer first.Close()
	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, first.KeyValueStore().Set(ctx, "servicios", []byte(`[{"nombre":"A"}]`)))
	require.NoError(t, second.KeyValueStore().Set(ctx, "servicios", []byte(`[{"nombre":"B"}]`)))

	got, err := first.KeyValueStore().Get(ctx, "servicios")
	require.NoError(t, err)
	assert.Equal(t, `[{"nombre":"B"}]`, string(got))
}

// ==================== Key-Value Store Tests ====================

func TestKVStore_Get_NotFound(t *testing.T) {
	kv := setupTestStore(t).KeyValueStore()

	_, err := kv.Get(context.Background(), "servicios")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKVStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	kv := setupTestStore(t).KeyValueStore()

	payload := []byte(`[{"nombre":"X","precio":10,"cantidad":2}]`)
	require.NoError(t, kv.Set(ctx, "servicios", payload))

	got, err := kv.Get(ctx, "servicios")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestKVStore_Set_Overwrites(t *testing.T) {
	ctx := context.Background()
	kv := setupTestStore(t).KeyValueStore()

	require.NoError(t, kv.Set(ctx, "servicios", []byte("[1]")))
	require.NoError(t, kv.Set(ctx, "servicios", []byte("[2]")))

	got, err := kv.Get(ctx, "servicios")
	require.NoError(t, err)
	assert.Equal(t, "[2]", string(got))
}

func TestKVStore_Delete(t *testing.T) {
	ctx := context.Background()
	kv := setupTestStore(t).KeyValueStore()

	require.NoError(t, kv.Set(ctx, "servicios", []byte("[]")))
	require.NoError(t, kv.Delete(ctx, "servicios"))
	require.NoError(t, kv.Delete(ctx, "never-set"))

	_, err := kv.Get(ctx, "servicios")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKVStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	kv := setupTestStore(t).KeyValueStore()

	require.NoError(t, kv.Set(ctx, "a", []byte("1")))
	require.NoError(t, kv.Set(ctx, "b", []byte("2")))
	require.NoError(t, kv.Delete(ctx, "a"))

	got, err := kv.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", string(got))
}
