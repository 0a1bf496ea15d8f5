package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utsavhq/utsav/internal/budget"
	"github.com/utsavhq/utsav/internal/catalog"
	"github.com/utsavhq/utsav/internal/event"
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	Database string
	Catalog  string
}

// showResult is the JSON payload for the show command.
type showResult struct {
	Event   event.Event      `json:"event"`
	Vendors []catalog.Vendor `json:"vendors"`
	Budget  budget.Summary   `json:"budget"`
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show <event-id>",
		Short: "Show one event in detail",
		Long: `Show an event with its resolved vendors and budget status.

Vendor ids that no longer resolve in the catalog are skipped in the
vendor listing and contribute nothing to the spend.

Example:
  utsav show e1 --db ./utsav.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "path to a vendor catalog YAML (default: built-in)")

	return cmd
}

func runShow(opts *ShowOptions, id string, cmd *cobra.Command) error {
	st, cleanup, err := openStore(opts.RootOptions, opts.Database, opts.Catalog)
	if err != nil {
		return err
	}
	defer cleanup()

	e, ok := st.Get(id)
	if !ok {
		_ = formatter(opts.RootOptions, cmd).Error(ErrCodeNotFound,
			fmt.Sprintf("no event with id %s", id))
		return NewExitError(ExitFailure, "show failed")
	}

	cat := st.Catalog()
	var resolved []catalog.Vendor
	for _, vid := range e.Vendors {
		if v, found := cat.Resolve(vid); found {
			resolved = append(resolved, v)
		}
	}
	summary := budget.Summarize(e, cat)

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", e.Title, e.ID)
	if e.EventType != "" {
		fmt.Fprintf(&b, "  Type:     %s\n", e.EventType)
	}
	if e.Date != "" {
		fmt.Fprintf(&b, "  Date:     %s\n", e.Date)
	}
	if e.Location != "" {
		fmt.Fprintf(&b, "  Location: %s\n", e.Location)
	}
	if e.Description != "" {
		fmt.Fprintf(&b, "  About:    %s\n", e.Description)
	}
	status := "within budget"
	if summary.Over {
		status = "OVER BUDGET"
	}
	fmt.Fprintf(&b, "  Budget:   %d (spent %d, remaining %d, %s)\n",
		summary.Budget, summary.Spent, summary.Remaining, status)
	if e.DonateFoodToNGO {
		fmt.Fprintln(&b, "  Leftover food will be donated to an NGO")
	}
	if len(resolved) > 0 {
		fmt.Fprintln(&b, "  Vendors:")
		for _, v := range resolved {
			fmt.Fprintf(&b, "    %-6s %-24s %-16s %d\n", v.ID, v.Name, v.Type, v.Cost)
		}
	}

	return formatter(opts.RootOptions, cmd).SuccessText(
		strings.TrimRight(b.String(), "\n"),
		showResult{Event: e, Vendors: resolved, Budget: summary})
}
