// Package cli provides the cobra command tree for cotiza.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cotiza/internal/core/ports/driving"
	"github.com/custodia-labs/cotiza/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Options carries the global flags to the bootstrap function.
type Options struct {
	ConfigDir string
	DataDir   string
	Verbose   bool
}

// Services holds the core services the commands drive.
type Services struct {
	Catalog       driving.CatalogService
	Seed          driving.SeedService
	Settings      driving.SettingsService
	Notifications driving.NotificationFeed

	// SeedFrom builds a loader for a location given with --from.
	SeedFrom func(location string) (driving.SeedService, error)

	// Close releases storage. May be nil.
	Close func() error
}

// BootstrapFunc wires the services for one invocation.
type BootstrapFunc func(opts Options) (*Services, error)

var (
	bootstrap BootstrapFunc
	opts      Options

	catalogService   driving.CatalogService
	seedService      driving.SeedService
	settingsService  driving.SettingsService
	notificationFeed driving.NotificationFeed
	seedFrom         func(location string) (driving.SeedService, error)
	closeServices    func() error
)

var rootCmd = &cobra.Command{
	Use:   "cotiza",
	Short: "Keep a quote of hired services",
	Long: `cotiza keeps a local catalogue of service offerings (name, unit price,
quantity), shows it as a table with subtotals and a total, and can replace
it from a JSON seed document.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(*cobra.Command, []string) error {
		return teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default ~/.cotiza)")
	rootCmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", "data directory (overrides storage.dir)")
}

// SetBootstrap registers the function that wires services before a command runs.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices injects services directly, bypassing the bootstrap.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	catalogService = s.Catalog
	seedService = s.Seed
	settingsService = s.Settings
	notificationFeed = s.Notifications
	seedFrom = s.SeedFrom
	closeServices = s.Close
}

// Execute runs the root command with output on stdout.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)
	if bootstrap == nil || skipBootstrap(cmd) {
		return nil
	}

	logger.Section("Bootstrap")
	s, err := bootstrap(opts)
	if err != nil {
		return fmt.Errorf("starting cotiza: %w", err)
	}
	SetServices(s)
	return nil
}

func teardown() error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

// skipBootstrap reports whether cmd runs without services.
func skipBootstrap(cmd *cobra.Command) bool {
	return cmd == versionCmd || cmd == presetsCmd
}

// requireCatalog returns the catalogue service or a configuration error.
func requireCatalog() (driving.CatalogService, error) {
	if catalogService == nil {
		return nil, errors.New("catalogue service not configured")
	}
	return catalogService, nil
}
