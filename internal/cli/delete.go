package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
	Database string
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event",
		Long: `Delete an event from the local database.

Deletion is immediate and irreversible. By default deleting a missing id
is an idempotent success; pass --strict to make it fail instead.

Example:
  utsav delete e1 --db ./utsav.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runDelete(opts *DeleteOptions, id string, cmd *cobra.Command) error {
	st, cleanup, err := openStore(opts.RootOptions, opts.Database, "")
	if err != nil {
		return err
	}
	defer cleanup()

	if !st.Delete(id) {
		_ = formatter(opts.RootOptions, cmd).Error(ErrCodeNotFound,
			fmt.Sprintf("no event with id %s", id))
		return NewExitError(ExitFailure, "delete failed")
	}

	return formatter(opts.RootOptions, cmd).SuccessText(
		fmt.Sprintf("Deleted event %s", id), map[string]string{"id": id})
}
