package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utsavhq/utsav/internal/budget"
	"github.com/utsavhq/utsav/internal/catalog"
	"github.com/utsavhq/utsav/internal/event"
)

// formatter builds an OutputFormatter writing to the command's stdout.
func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}
}

// warnOverBudget prints a warning to stderr when the event's vendor
// selection exceeds its budget. The mutation itself always proceeds.
func warnOverBudget(cmd *cobra.Command, e event.Event, cat catalog.Catalog) {
	if !budget.IsOver(e, cat) {
		return
	}
	spent := budget.TotalVendorCost(e, cat)
	fmt.Fprintf(cmd.ErrOrStderr(),
		"warning: selected vendors (%d) exceed budget (%d)\n", spent, e.Budget)
}

// eventLine renders one event as a text row for list output.
func eventLine(e event.Event, cat catalog.Catalog) string {
	spent := budget.TotalVendorCost(e, cat)
	return fmt.Sprintf("%s  %-24s %-12s %-12s budget=%d spent=%d vendors=%d",
		e.ID, e.Title, e.EventType, e.Date, e.Budget, spent, len(e.Vendors))
}
