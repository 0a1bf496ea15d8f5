package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utsavhq/utsav/internal/event"
)

// UpdateOptions holds flags for the update command.
type UpdateOptions struct {
	*RootOptions
	Database string
	Catalog  string

	Title         string
	EventType     string
	Date          string
	Location      string
	Description   string
	Budget        int64
	ImageURL      string
	Vendors       []string
	AddVendors    []string
	RemoveVendors []string
	DonateFood    bool
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UpdateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "update <event-id>",
		Short: "Update an existing event",
		Long: `Update fields of an existing event.

Only the flags you pass change; everything else keeps its value. The id
itself never changes. Vendor flags compose: --vendor replaces the whole
selection, --add-vendor and --remove-vendor adjust it.

By default a missing id is a no-op that still succeeds; pass --strict to
make it fail instead.

Examples:
  utsav update e1 --db ./utsav.db --title "Sharma Wedding (rescheduled)" --date 2025-12-05
  utsav update e1 --db ./utsav.db --add-vendor v21 --add-vendor v1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "path to a vendor catalog YAML (default: built-in)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "event title")
	cmd.Flags().StringVar(&opts.EventType, "type", "", "event type")
	cmd.Flags().StringVar(&opts.Date, "date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Location, "location", "", "event location")
	cmd.Flags().StringVar(&opts.Description, "description", "", "event description")
	cmd.Flags().Int64Var(&opts.Budget, "budget", 0, "budget in whole currency units")
	cmd.Flags().StringVar(&opts.ImageURL, "image", "", "image URL or inline-encoded payload")
	cmd.Flags().StringArrayVar(&opts.Vendors, "vendor", nil, "replace the vendor selection (repeatable)")
	cmd.Flags().StringArrayVar(&opts.AddVendors, "add-vendor", nil, "attach a vendor id (repeatable)")
	cmd.Flags().StringArrayVar(&opts.RemoveVendors, "remove-vendor", nil, "detach a vendor id (repeatable)")
	cmd.Flags().BoolVar(&opts.DonateFood, "donate-food", false, "donate leftover food to an NGO")

	return cmd
}

func runUpdate(opts *UpdateOptions, id string, cmd *cobra.Command) error {
	st, cleanup, err := openStore(opts.RootOptions, opts.Database, opts.Catalog)
	if err != nil {
		return err
	}
	defer cleanup()

	patch := event.Patch{ID: id}
	flags := cmd.Flags()
	if flags.Changed("title") {
		patch.Title = &opts.Title
	}
	if flags.Changed("type") {
		patch.EventType = &opts.EventType
	}
	if flags.Changed("date") {
		patch.Date = &opts.Date
	}
	if flags.Changed("location") {
		patch.Location = &opts.Location
	}
	if flags.Changed("description") {
		patch.Description = &opts.Description
	}
	if flags.Changed("budget") {
		if opts.Budget < 0 {
			return NewExitError(ExitCommandError, "budget cannot be negative")
		}
		patch.Budget = &opts.Budget
	}
	if flags.Changed("image") {
		patch.ImageURL = &opts.ImageURL
	}
	if flags.Changed("donate-food") {
		patch.DonateFoodToNGO = &opts.DonateFood
	}

	if vendors, changed := composeVendors(st, id, opts); changed {
		patch.Vendors = &vendors
	}

	if patch.Vendors != nil {
		if existing, ok := st.Get(id); ok {
			preview := patch.ApplyTo(existing)
			warnOverBudget(cmd, preview, st.Catalog())
		}
	}

	if !st.Update(patch) {
		_ = formatter(opts.RootOptions, cmd).Error(ErrCodeNotFound,
			fmt.Sprintf("no event with id %s", id))
		return NewExitError(ExitFailure, "update failed")
	}

	updated, ok := st.Get(id)
	if !ok {
		// Permissive no-op: nothing matched, nothing to show.
		return formatter(opts.RootOptions, cmd).SuccessText(
			fmt.Sprintf("No event with id %s; nothing updated", id), nil)
	}
	return formatter(opts.RootOptions, cmd).SuccessText(
		fmt.Sprintf("Updated event %s (%s)", updated.ID, updated.Title), updated)
}

// composeVendors resolves the final vendor selection from the three vendor
// flags. Reports whether the selection changed at all.
func composeVendors(st eventReader, id string, opts *UpdateOptions) ([]string, bool) {
	if opts.Vendors == nil && opts.AddVendors == nil && opts.RemoveVendors == nil {
		return nil, false
	}

	var current []string
	if opts.Vendors != nil {
		current = append(current, opts.Vendors...)
	} else if existing, ok := st.Get(id); ok {
		current = append(current, existing.Vendors...)
	}

	for _, v := range opts.AddVendors {
		if !contains(current, v) {
			current = append(current, v)
		}
	}
	if len(opts.RemoveVendors) > 0 {
		kept := current[:0]
		for _, v := range current {
			if !contains(opts.RemoveVendors, v) {
				kept = append(kept, v)
			}
		}
		current = kept
	}
	if current == nil {
		current = []string{}
	}
	return current, true
}

// eventReader is the slice of the store the vendor composition needs.
type eventReader interface {
	Get(id string) (event.Event, bool)
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
