package domain

const unknownDescription = "Unknown"

// StorageBackend selects where the catalogue mirror is persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendSQLite keeps the mirror in a SQLite key-value table.
	StorageBackendSQLite StorageBackend = "sqlite"

	// StorageBackendFile keeps one JSON file per key in the data directory.
	StorageBackendFile StorageBackend = "file"

	// StorageBackendMemory keeps the mirror in process memory only.
	StorageBackendMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageBackendSQLite, StorageBackendFile, StorageBackendMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageBackendSQLite:
		return "SQLite (key-value table)"
	case StorageBackendFile:
		return "File (one JSON file per key)"
	case StorageBackendMemory:
		return "Memory (not persisted across runs)"
	default:
		return unknownDescription
	}
}

// AllStorageBackends returns all available storage backends.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{
		StorageBackendSQLite,
		StorageBackendFile,
		StorageBackendMemory,
	}
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	// Backend is the key-value store implementation.
	Backend StorageBackend

	// Dir is the data directory. Empty means ~/.cotiza/data.
	Dir string
}

// SeedSettings holds remote seed configuration.
type SeedSettings struct {
	// Location is an HTTP(S) URL or a file path.
	Location string

	// OnStart loads the seed when the interactive UI starts.
	OnStart bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Storage holds persistence settings.
	Storage StorageSettings

	// Seed holds remote seed settings.
	Seed SeedSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Backend: StorageBackendSQLite,
		},
		Seed: SeedSettings{
			Location: "./datos.json",
			OnStart:  false,
		},
	}
}
