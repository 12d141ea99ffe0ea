package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/cotiza/internal/core/domain"
	"github.com/custodia-labs/cotiza/internal/core/ports/driven"
	"github.com/custodia-labs/cotiza/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyStorageBackend = "storage.backend"
	KeyStorageDir     = "storage.dir"
	KeySeedLocation   = "seed.location"
	KeySeedOnStart    = "seed.on_start"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			Dir:     s.configStore.GetString(KeyStorageDir), // Empty means the default data dir
		},
		Seed: domain.SeedSettings{
			Location: s.getString(KeySeedLocation, defaults.Seed.Location),
			OnStart:  s.getBool(KeySeedOnStart, defaults.Seed.OnStart),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(KeyStorageBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(KeyStorageDir, settings.Storage.Dir); err != nil {
		return fmt.Errorf("save storage dir: %w", err)
	}
	if err := s.configStore.Set(KeySeedLocation, settings.Seed.Location); err != nil {
		return fmt.Errorf("save seed location: %w", err)
	}
	if err := s.configStore.Set(KeySeedOnStart, settings.Seed.OnStart); err != nil {
		return fmt.Errorf("save seed on_start: %w", err)
	}
	return nil
}

// Set updates a single setting by its config key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeyStorageBackend:
		backend := domain.StorageBackend(value)
		if !backend.IsValid() {
			return fmt.Errorf("%w: %s", domain.ErrUnknownBackend, value)
		}
		settings.Storage.Backend = backend
	case KeyStorageDir:
		settings.Storage.Dir = value
	case KeySeedLocation:
		if value == "" {
			return fmt.Errorf("%w: seed location cannot be empty", domain.ErrInvalidInput)
		}
		settings.Seed.Location = value
	case KeySeedOnStart:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		settings.Seed.OnStart = b
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys returns the recognised config keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyStorageBackend, KeyStorageDir, KeySeedLocation, KeySeedOnStart}
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if raw := s.configStore.GetString(KeyStorageBackend); raw != "" && !domain.StorageBackend(raw).IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnknownBackend, raw)
	}
	if settings.Seed.Location == "" {
		return fmt.Errorf("seed location is not configured")
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	val := s.configStore.GetString(KeyStorageBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.StorageBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
