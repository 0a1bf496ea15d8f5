package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Database string
	Catalog  string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all events",
		Long: `List every event in the local database, in creation order.

Examples:
  utsav list --db ./utsav.db
  utsav list --db ./utsav.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "path to a vendor catalog YAML (default: built-in)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	st, cleanup, err := openStore(opts.RootOptions, opts.Database, opts.Catalog)
	if err != nil {
		return err
	}
	defer cleanup()

	events := st.List()
	if len(events) == 0 {
		return formatter(opts.RootOptions, cmd).SuccessText("No events yet", events)
	}

	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = eventLine(e, st.Catalog())
	}
	return formatter(opts.RootOptions, cmd).SuccessText(strings.Join(lines, "\n"), events)
}
