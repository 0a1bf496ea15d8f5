package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utsavhq/utsav/internal/budget"
)

// BudgetOptions holds flags for the budget command.
type BudgetOptions struct {
	*RootOptions
	Database string
	Catalog  string
	EventID  string
}

// NewBudgetCommand creates the budget command.
func NewBudgetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BudgetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Budget vs. vendor spend per event",
		Long: `Evaluate every event's vendor spend against its budget.

A budget of zero means "no constraint" and is never over budget.

Examples:
  utsav budget --db ./utsav.db
  utsav budget --db ./utsav.db --event e1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBudget(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "path to a vendor catalog YAML (default: built-in)")
	cmd.Flags().StringVar(&opts.EventID, "event", "", "limit to one event id")

	return cmd
}

func runBudget(opts *BudgetOptions, cmd *cobra.Command) error {
	st, cleanup, err := openStore(opts.RootOptions, opts.Database, opts.Catalog)
	if err != nil {
		return err
	}
	defer cleanup()

	events := st.List()
	if opts.EventID != "" {
		e, ok := st.Get(opts.EventID)
		if !ok {
			_ = formatter(opts.RootOptions, cmd).Error(ErrCodeNotFound,
				fmt.Sprintf("no event with id %s", opts.EventID))
			return NewExitError(ExitFailure, "budget failed")
		}
		events = events[:0]
		events = append(events, e)
	}

	summaries := budget.SummarizeAll(events, st.Catalog())
	if len(summaries) == 0 {
		return formatter(opts.RootOptions, cmd).SuccessText("No events yet", summaries)
	}

	lines := make([]string, len(summaries))
	for i, s := range summaries {
		status := "ok"
		if s.Over {
			status = "OVER"
		}
		lines[i] = fmt.Sprintf("%s  %-24s budget=%-10d spent=%-10d remaining=%-11d %s",
			s.EventID, s.Title, s.Budget, s.Spent, s.Remaining, status)
	}
	return formatter(opts.RootOptions, cmd).SuccessText(strings.Join(lines, "\n"), summaries)
}
