package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utsavhq/utsav/internal/catalog"
)

// VendorsOptions holds flags for the vendors command.
type VendorsOptions struct {
	*RootOptions
	Catalog   string
	Type      string
	EventType string
	Location  string
}

// NewVendorsCommand creates the vendors command.
func NewVendorsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VendorsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "Browse the vendor catalog",
		Long: `List catalog vendors, optionally filtered.

The catalog is read-only reference data; nothing here touches the event
database.

Examples:
  utsav vendors
  utsav vendors --type caterer --event-type wedding
  utsav vendors --location Ludhiana --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVendors(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "path to a vendor catalog YAML (default: built-in)")
	cmd.Flags().StringVar(&opts.Type, "type", "", "filter by vendor category")
	cmd.Flags().StringVar(&opts.EventType, "event-type", "", "filter by applicable event type")
	cmd.Flags().StringVar(&opts.Location, "location", "", "filter by location")

	return cmd
}

func runVendors(opts *VendorsOptions, cmd *cobra.Command) error {
	cat := catalog.Default()
	if opts.Catalog != "" {
		loaded, err := catalog.LoadFile(opts.Catalog)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load vendor catalog", err)
		}
		cat = loaded
	}

	vendors := cat.Filter(opts.Type, opts.EventType, opts.Location)
	if len(vendors) == 0 {
		return formatter(opts.RootOptions, cmd).SuccessText("No vendors match", vendors)
	}

	lines := make([]string, len(vendors))
	for i, v := range vendors {
		lines[i] = fmt.Sprintf("%-6s %-24s %-16s %-12s %8d  [%s]",
			v.ID, v.Name, v.Type, v.Location, v.Cost, strings.Join(v.EventTypes, ", "))
	}
	return formatter(opts.RootOptions, cmd).SuccessText(strings.Join(lines, "\n"), vendors)
}
