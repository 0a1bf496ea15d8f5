package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utsavhq/utsav/internal/invite"
)

// InviteOptions holds flags for the invite command.
type InviteOptions struct {
	*RootOptions
	Database string
	Template string
	Message  string
	ImageURL string
}

// inviteResult is the JSON payload for the invite command.
type inviteResult struct {
	EventID string        `json:"eventId"`
	Invite  invite.Invite `json:"invite"`
	Card    string        `json:"card"`
}

// NewInviteCommand creates the invite command.
func NewInviteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InviteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "invite <event-id>",
		Short: "Compose an e-invite for an event",
		Long: `Render a shareable e-invite card for an event.

Templates: classic, floral, modern. A message is required.

Example:
  utsav invite e1 --db ./utsav.db --template floral --message "Join us for the celebration!"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvite(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Template, "template", string(invite.Classic), "invite template")
	cmd.Flags().StringVar(&opts.Message, "message", "", "invite message (required)")
	cmd.Flags().StringVar(&opts.ImageURL, "image", "", "image URL or inline-encoded payload")

	return cmd
}

func runInvite(opts *InviteOptions, id string, cmd *cobra.Command) error {
	st, cleanup, err := openStore(opts.RootOptions, opts.Database, "")
	if err != nil {
		return err
	}
	defer cleanup()

	e, ok := st.Get(id)
	if !ok {
		_ = formatter(opts.RootOptions, cmd).Error(ErrCodeNotFound,
			fmt.Sprintf("no event with id %s", id))
		return NewExitError(ExitFailure, "invite failed")
	}

	inv := invite.Invite{
		Template: invite.Template(opts.Template),
		Message:  opts.Message,
		ImageURL: opts.ImageURL,
	}
	card, err := invite.Render(e, inv)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid invite", err)
	}

	return formatter(opts.RootOptions, cmd).SuccessText(card,
		inviteResult{EventID: e.ID, Invite: inv, Card: card})
}
