package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utsavhq/utsav/internal/event"
)

// CreateOptions holds flags for the create command.
type CreateOptions struct {
	*RootOptions
	Database string
	Catalog  string

	Title       string
	EventType   string
	Date        string
	Location    string
	Description string
	Budget      int64
	ImageURL    string
	Vendors     []string
	DonateFood  bool
}

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CreateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new event",
		Long: `Create a new event in the local database.

The id is generated automatically. Vendor ids attach in selection order;
a selection that exceeds the budget is warned about but never rejected -
the budget is informational.

Examples:
  utsav create --db ./utsav.db --title "Sharma Wedding" --date 2025-11-20 --budget 200000
  utsav create --db ./utsav.db --title "Mehendi Night" --type mehendi --vendor v17 --vendor v3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "path to a vendor catalog YAML (default: built-in)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "event title")
	cmd.Flags().StringVar(&opts.EventType, "type", "", "event type (wedding, birthday, conference, ...)")
	cmd.Flags().StringVar(&opts.Date, "date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Location, "location", "", "event location")
	cmd.Flags().StringVar(&opts.Description, "description", "", "event description")
	cmd.Flags().Int64Var(&opts.Budget, "budget", 0, "budget in whole currency units (0 = no constraint)")
	cmd.Flags().StringVar(&opts.ImageURL, "image", "", "image URL or inline-encoded payload")
	cmd.Flags().StringArrayVar(&opts.Vendors, "vendor", nil, "vendor id to attach (repeatable)")
	cmd.Flags().BoolVar(&opts.DonateFood, "donate-food", false, "donate leftover food to an NGO")

	return cmd
}

func runCreate(opts *CreateOptions, cmd *cobra.Command) error {
	if opts.Budget < 0 {
		return NewExitError(ExitCommandError, "budget cannot be negative")
	}

	st, cleanup, err := openStore(opts.RootOptions, opts.Database, opts.Catalog)
	if err != nil {
		return err
	}
	defer cleanup()

	e := event.Event{
		Title:           opts.Title,
		EventType:       opts.EventType,
		Date:            opts.Date,
		Location:        opts.Location,
		Description:     opts.Description,
		Budget:          opts.Budget,
		ImageURL:        opts.ImageURL,
		Vendors:         opts.Vendors,
		DonateFoodToNGO: opts.DonateFood,
	}

	// Over-budget is a warning at the surface, never a store rejection.
	warnOverBudget(cmd, e, st.Catalog())

	if !st.Add(e) {
		_ = formatter(opts.RootOptions, cmd).Error(ErrCodeRejected, "event was rejected by the store")
		return NewExitError(ExitFailure, "create failed")
	}

	created := st.List()
	newest := created[len(created)-1]
	return formatter(opts.RootOptions, cmd).SuccessText(
		fmt.Sprintf("Created event %s (%s)", newest.ID, newest.Title), newest)
}
