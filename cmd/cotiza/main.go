// Command cotiza keeps a local quote of hired services.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/cotiza/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cotiza/internal/adapters/driven/notify"
	"github.com/custodia-labs/cotiza/internal/adapters/driven/seed"
	filestore "github.com/custodia-labs/cotiza/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/cotiza/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cotiza/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/cotiza/internal/adapters/driving/cli"
	"github.com/custodia-labs/cotiza/internal/core/domain"
	"github.com/custodia-labs/cotiza/internal/core/ports/driven"
	"github.com/custodia-labs/cotiza/internal/core/ports/driving"
	"github.com/custodia-labs/cotiza/internal/core/services"
	"github.com/custodia-labs/cotiza/internal/logger"
)

func main() {
	cli.SetBootstrap(bootstrap)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires config, storage, notifications and the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config directory: %w", err)
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("Config: %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = settings.Storage.Dir
	}
	if dataDir == "" {
		dataDir = filepath.Join(configDir, "data")
	}

	store, closeStore, err := openStore(settings.Storage.Backend, dataDir)
	if err != nil {
		return nil, err
	}

	hub := notify.NewHub()
	catalog := services.NewCatalogService(store, hub)

	seedFor := func(location string) (driving.SeedService, error) {
		source, err := seed.NewSource(location)
		if err != nil {
			return nil, err
		}
		return services.NewSeedService(source, catalog, hub), nil
	}

	seedService, err := seedFor(settings.Seed.Location)
	if err != nil {
		logger.Warn("Seed disabled: %v", err)
		seedService = services.NewSeedService(nil, catalog, hub)
	}

	return &cli.Services{
		Catalog:       catalog,
		Seed:          seedService,
		Settings:      settingsService,
		Notifications: hub,
		SeedFrom:      seedFor,
		Close:         closeStore,
	}, nil
}

// openStore opens the key-value store for backend under dataDir.
func openStore(backend domain.StorageBackend, dataDir string) (driven.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch backend {
	case domain.StorageBackendSQLite:
		db, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		logger.Debug("Storage: sqlite %s", db.Path())
		return db.KeyValueStore(), db.Close, nil

	case domain.StorageBackendFile:
		kv, err := filestore.NewKVStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening file store: %w", err)
		}
		logger.Debug("Storage: files under %s", kv.Dir())
		return kv, noop, nil

	case domain.StorageBackendMemory:
		logger.Debug("Storage: memory")
		return memory.NewKVStore(), noop, nil
	}

	return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownBackend, backend)
}
