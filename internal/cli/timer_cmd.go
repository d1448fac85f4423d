package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/timely/internal/cli/formatter"
	"github.com/alexanderramin/timely/internal/contract"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "timer PROJECT",
		Short: "Time work on a project live; press Enter to stop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := validateComment(comment); err != nil {
				return err
			}
			project, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			return runTimer(ctx, app, project, comment, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addCommentFlag(cmd.Flags(), &comment)

	return cmd
}

// runTimer times project and records the result stamped at the moment the
// timer was stopped.
func runTimer(ctx context.Context, app *App, project, comment string, in io.Reader, out io.Writer) error {
	res, err := app.timer()(ctx, project, in, out)
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatter.FormatTimerResult(project, res.Hours, res.Interrupted))

	req := contract.NewLogTimeRequest(project, res.Hours)
	req.At = res.Stop
	req.Comment = comment
	// The run context may already be cancelled; the entry is still written.
	entry, err := app.TimeLog.LogTime(context.WithoutCancel(ctx), req)
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatter.FormatLogged(entry))
	return nil
}
