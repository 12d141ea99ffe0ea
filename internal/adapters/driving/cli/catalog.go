package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cotiza/internal/core/domain"
	coreservices "github.com/custodia-labs/cotiza/internal/core/services"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List hired services",
	Long:    `Shows every service with its unit price, quantity and subtotal, followed by the total.`,
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var addCmd = &cobra.Command{
	Use:   "add <name> <price> <quantity>",
	Short: "Add a service",
	Long: `Adds a service to the end of the catalogue.

Price must be a number and quantity an integer, for example:
  cotiza add "Hosting" 120 3`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

var removeCmd = &cobra.Command{
	Use:     "remove <index>",
	Aliases: []string{"rm"},
	Short:   "Remove the service at index",
	Long: `Removes the service at the zero-based position shown by 'cotiza list'.
An index out of range changes nothing. Negative indexes must follow "--"
so they are not read as flags.`,
	Example: `  cotiza remove 0
  cotiza remove -- -1`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Show the total of hired services",
	Args:  cobra.NoArgs,
	RunE:  runTotal,
}

var hireCmd = &cobra.Command{
	Use:   "hire <preset>",
	Short: "Hire a predefined service",
	Long:  `Adds one of the predefined services. Run 'cotiza presets' to see the keys.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHire,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the predefined services",
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default catalogue",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	removeCmd.SetFlagErrorFunc(negativeIndexHint)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output the stored JSON records")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(totalCmd)
	rootCmd.AddCommand(hireCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(resetCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	catalog, err := requireCatalog()
	if err != nil {
		return err
	}

	services, err := catalog.Initialize(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load services: %w", err)
	}

	if listJSON {
		data, err := coreservices.EncodeServices(services)
		if err != nil {
			return err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", "  "); err != nil {
			return fmt.Errorf("failed to format services: %w", err)
		}
		cmd.Println(out.String())
		return nil
	}

	return printTable(cmd, services)
}

func printTable(cmd *cobra.Command, services []domain.Service) error {
	if len(services) == 0 {
		cmd.Println("No services.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "#\tName\tPrice\tQty\tSubtotal\t")
	for i, s := range services {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t\n",
			i, s.Name, domain.FormatAmount(s.UnitPrice), s.Quantity, domain.FormatAmount(domain.Subtotal(s)))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	cmd.Printf("\nTotal: $%s\n", domain.FormatAmount(domain.Total(services)))
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	catalog, err := requireCatalog()
	if err != nil {
		return err
	}
	defer printNotifications(cmd)()

	return catalog.AddInput(cmd.Context(), args[0], args[1], args[2])
}

func runRemove(cmd *cobra.Command, args []string) error {
	catalog, err := requireCatalog()
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: index %q is not an integer", domain.ErrInvalidInput, args[0])
	}

	defer printNotifications(cmd)()
	removed, err := catalog.RemoveAt(cmd.Context(), index)
	if err != nil {
		return err
	}
	if !removed {
		cmd.Printf("No service at index %d.\n", index)
	}
	return nil
}

// negativeIndexHint explains how to pass an index that looks like a flag.
func negativeIndexHint(_ *cobra.Command, err error) error {
	const prefix = "unknown shorthand flag: '"
	msg := err.Error()
	if i := strings.Index(msg, prefix); i >= 0 && i+len(prefix) < len(msg) {
		if c := msg[i+len(prefix)]; c >= '0' && c <= '9' {
			return fmt.Errorf("%w (pass negative indexes after --, e.g. 'cotiza remove -- -1')", err)
		}
	}
	return err
}

func runTotal(cmd *cobra.Command, _ []string) error {
	catalog, err := requireCatalog()
	if err != nil {
		return err
	}
	defer printNotifications(cmd)()

	catalog.Total(cmd.Context())
	return nil
}

func runHire(cmd *cobra.Command, args []string) error {
	catalog, err := requireCatalog()
	if err != nil {
		return err
	}
	defer printNotifications(cmd)()

	return catalog.Hire(cmd.Context(), args[0])
}

func runPresets(cmd *cobra.Command, _ []string) {
	for _, p := range domain.Presets() {
		cmd.Printf("%-14s %s ($%s)\n", p.Key, p.Service.Name, domain.FormatAmount(p.Service.UnitPrice))
	}
}

func runReset(cmd *cobra.Command, _ []string) error {
	catalog, err := requireCatalog()
	if err != nil {
		return err
	}
	defer printNotifications(cmd)()

	return catalog.Reset(cmd.Context())
}
