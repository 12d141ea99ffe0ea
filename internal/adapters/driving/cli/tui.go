package cli

import (
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui"
	"github.com/custodia-labs/cotiza/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for cotiza.

The TUI shows the catalogue as a table with the running total and a
status bar with the latest notification.

Controls:
  ↑/k, ↓/j - Select a row
  a        - Add a service
  d        - Remove the selected service
  t        - Show the total
  s        - Load the seed document
  1, 2     - Hire "Sitio web" / "Tienda Online"
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic in TUI: %v\nStack trace:\n%s", r, debug.Stack())
		}
	}()

	catalog, err := requireCatalog()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(catalog, seedService, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if notificationFeed != nil {
		defer notificationFeed.Subscribe(tui.Notify(p.Send))()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
