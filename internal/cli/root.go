package cli

import (
	"context"
	"io"

	"github.com/alexanderramin/timely/internal/clock"
	"github.com/alexanderramin/timely/internal/service"
	"github.com/alexanderramin/timely/internal/stopwatch"
	"github.com/spf13/cobra"
)

// TimerFunc runs a live stopwatch for project until the user stops it.
type TimerFunc func(ctx context.Context, project string, in io.Reader, out io.Writer) (stopwatch.Result, error)

// App holds the services and terminal hooks used by CLI commands.
type App struct {
	Projects service.ProjectService
	TimeLog  service.TimeLogService
	Reports  service.ReportService
	Clock    clock.Clock

	// IsInteractive reports whether stdin is a terminal. The bare command
	// opens the menu only when it returns true.
	IsInteractive func() bool

	// Prompter and Timer default to huh forms and the bubbletea stopwatch.
	Prompter Prompter
	Timer    TimerFunc
}

func (a *App) clock() clock.Clock {
	if a.Clock != nil {
		return a.Clock
	}
	return clock.System{}
}

func (a *App) timer() TimerFunc {
	if a.Timer != nil {
		return a.Timer
	}
	return func(ctx context.Context, project string, in io.Reader, out io.Writer) (stopwatch.Result, error) {
		return stopwatch.Run(ctx, project, a.clock(), in, out)
	}
}

func (a *App) prompter(in io.Reader, out io.Writer) Prompter {
	if a.Prompter != nil {
		return a.Prompter
	}
	return newHuhPrompter(in, out)
}

// NewRootCmd creates the top-level "timely" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "timely",
		Short:         "Personal billable-time tracker",
		Long:          "Track hours per project with a live timer or manual entries, and review\ntoday's, total and historic totals. Run without arguments for the menu.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runMenu(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.AddCommand(
		newProjectCmd(app),
		newLogCmd(app),
		newTimerCmd(app),
		newReportCmd(app),
		newSnapshotCmd(app),
	)

	return root
}
