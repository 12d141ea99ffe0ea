package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cotiza/internal/core/ports/driven"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestNewConfigStoreFrom_CopiesValues(t *testing.T) {
	src := map[string]any{"storage.backend": "file"}
	store := NewConfigStoreFrom(src)

	src["storage.backend"] = "sqlite"

	assert.Equal(t, "file", store.GetString("storage.backend"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("seed.location", "./datos.json"))

	val, ok := store.Get("seed.location")
	assert.True(t, ok)
	assert.Equal(t, "./datos.json", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("str", "hello"))
	require.NoError(t, store.Set("num", 42))

	assert.Equal(t, "hello", store.GetString("str"))
	assert.Equal(t, "", store.GetString("num"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("seed.on_start", true))
	require.NoError(t, store.Set("str", "true"))

	assert.True(t, store.GetBool("seed.on_start"))
	assert.False(t, store.GetBool("str"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_Load_NoOp(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("k", "v"))

	require.NoError(t, store.Load())
	assert.Equal(t, "v", store.GetString("k"))
}

func TestConfigStore_InterfaceCompliance(t *testing.T) {
	var _ driven.ConfigStore = NewConfigStore()
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("seed.on_start", i%2 == 0)
			_ = store.GetBool("seed.on_start")
		}()
	}
	wg.Wait()

	_, ok := store.Get("seed.on_start")
	assert.True(t, ok)
}
