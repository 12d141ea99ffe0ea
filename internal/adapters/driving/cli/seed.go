package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cotiza/internal/core/ports/driving"
)

var seedLocation string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the catalogue with the seed document",
	Long: `Fetches a JSON array of {"nombre", "precio", "cantidad"} records and
replaces the whole catalogue with it. The location is taken from
seed.location unless --from is given; it may be an http(s) URL or a file
path. On any failure the catalogue is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedLocation, "from", "", "seed location overriding seed.location")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	loader, err := resolveSeed(seedLocation)
	if err != nil {
		return err
	}
	defer printNotifications(cmd)()

	n, err := loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("seed from %s: %w", loader.Location(), err)
	}
	cmd.Printf("Loaded %d services from %s\n", n, loader.Location())
	return nil
}

func resolveSeed(location string) (driving.SeedService, error) {
	if location == "" {
		if seedService == nil {
			return nil, errors.New("seed service not configured")
		}
		return seedService, nil
	}
	if seedFrom == nil {
		return nil, errors.New("seed locations not supported")
	}
	return seedFrom(location)
}
