package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/utsavhq/utsav/internal/checklist"
)

// ChecklistOptions holds flags for the checklist command.
type ChecklistOptions struct {
	*RootOptions
	Database string
	Tasks    []string
	Done     []string
}

// checklistResult is the JSON payload for the checklist command.
type checklistResult struct {
	EventID       string           `json:"eventId"`
	Title         string           `json:"title"`
	CountdownDays *int             `json:"countdownDays,omitempty"`
	Tasks         []checklist.Task `json:"tasks"`
	ShareText     string           `json:"shareText"`
}

// NewChecklistCommand creates the checklist command.
func NewChecklistCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ChecklistOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "checklist <event-id>",
		Short: "Planning checklist for an event",
		Long: `Render the planning checklist for an event.

The checklist starts from the standard seed tasks each run; --task adds
extra tasks and --done marks task ids complete for this rendering. The
output includes a shareable text version and a countdown to the event
date when one is set.

Examples:
  utsav checklist e1 --db ./utsav.db
  utsav checklist e1 --db ./utsav.db --task "Order flowers" --done task1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecklist(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringArrayVar(&opts.Tasks, "task", nil, "extra task text (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Done, "done", nil, "task id to mark complete (repeatable)")

	return cmd
}

func runChecklist(opts *ChecklistOptions, id string, cmd *cobra.Command) error {
	st, cleanup, err := openStore(opts.RootOptions, opts.Database, "")
	if err != nil {
		return err
	}
	defer cleanup()

	e, ok := st.Get(id)
	if !ok {
		_ = formatter(opts.RootOptions, cmd).Error(ErrCodeNotFound,
			fmt.Sprintf("no event with id %s", id))
		return NewExitError(ExitFailure, "checklist failed")
	}

	cl := checklist.New()
	for _, text := range opts.Tasks {
		if _, err := cl.Add(text); err != nil {
			return WrapExitError(ExitCommandError, "invalid task", err)
		}
	}
	for _, taskID := range opts.Done {
		if !cl.Toggle(taskID) {
			return NewExitError(ExitCommandError, fmt.Sprintf("no task with id %s", taskID))
		}
	}

	result := checklistResult{
		EventID:   e.ID,
		Title:     e.Title,
		Tasks:     cl.Tasks(),
		ShareText: cl.ShareText(),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Checklist for %s\n", e.Title)
	if days, parsed := checklist.CountdownDays(e.Date, time.Now()); parsed {
		result.CountdownDays = &days
		fmt.Fprintf(&b, "%d day(s) to go\n", days)
	}
	fmt.Fprint(&b, cl.ShareText())

	return formatter(opts.RootOptions, cmd).SuccessText(b.String(), result)
}
