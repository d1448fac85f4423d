package cli

import (
	"fmt"

	"github.com/alexanderramin/timely/internal/cli/formatter"
	"github.com/alexanderramin/timely/internal/contract"
	"github.com/alexanderramin/timely/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var comment string
	var daysAgo int

	cmd := &cobra.Command{
		Use:   "log PROJECT HOURS",
		Short: "Record hours worked on a project",
		Long: fmt.Sprintf(`Record hours worked on a project today, or up to %d days ago with --days-ago.
Backdated entries are stamped at midnight of their date.`, domain.MaxBackdateDays),
		Example: "  timely log Acme 1.5\n  timely log Acme 2 --days-ago 1 --comment \"release prep\"",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			hours, err := parseHours(args[1])
			if err != nil {
				return fmt.Errorf("invalid hours %q: %w", args[1], err)
			}
			if err := validateComment(comment); err != nil {
				return err
			}
			project, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			req := contract.NewLogTimeRequest(project, hours)
			req.DaysAgo = daysAgo
			req.Comment = comment
			entry, err := app.TimeLog.LogTime(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLogged(entry))
			return nil
		},
	}

	cmd.Flags().IntVarP(&daysAgo, "days-ago", "d", 0, fmt.Sprintf("Log against a past day (0-%d)", domain.MaxBackdateDays))
	addCommentFlag(cmd.Flags(), &comment)

	return cmd
}
