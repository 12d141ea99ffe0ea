package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageBackend_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		backend  StorageBackend
		expected bool
	}{
		{name: "sqlite is valid", backend: StorageBackendSQLite, expected: true},
		{name: "file is valid", backend: StorageBackendFile, expected: true},
		{name: "memory is valid", backend: StorageBackendMemory, expected: true},
		{name: "empty string is invalid", backend: StorageBackend(""), expected: false},
		{name: "unknown backend is invalid", backend: StorageBackend("redis"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.backend.IsValid())
		})
	}
}

func TestStorageBackend_Description(t *testing.T) {
	for _, b := range AllStorageBackends() {
		assert.NotEqual(t, unknownDescription, b.Description(), b.String())
	}
	assert.Equal(t, unknownDescription, StorageBackend("redis").Description())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, StorageBackendSQLite, s.Storage.Backend)
	assert.Empty(t, s.Storage.Dir)
	assert.Equal(t, "./datos.json", s.Seed.Location)
	assert.False(t, s.Seed.OnStart)
}
