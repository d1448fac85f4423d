package cli

import (
	"fmt"

	"github.com/alexanderramin/timely/internal/cli/formatter"
	"github.com/alexanderramin/timely/internal/contract"
	"github.com/alexanderramin/timely/internal/domain"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"r"},
		Short:   "Show time reports",
	}

	cmd.AddCommand(
		newReportTodayCmd(app),
		newReportTotalCmd(app),
		newReportHistoricCmd(app),
		newReportLogCmd(app),
	)

	return cmd
}

func newReportTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Today's entries and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Reports.Today(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatToday(r))
			return nil
		},
	}
}

func newReportTotalCmd(app *App) *cobra.Command {
	var live, capture bool

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Total time worked per project",
		Long: `Total time worked per project across the whole log.

--live counts only the entries before the first summary block.
--capture also appends the totals to the log as a summary block.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if live && capture {
				return fmt.Errorf("--live and --capture cannot be combined")
			}
			req := contract.NewTotalsRequest()
			req.Capture = capture
			if live {
				req.Mode = domain.ScanUntilSummary
			}
			r, err := app.Reports.Totals(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTotals(r))
			return nil
		},
	}

	cmd.Flags().BoolVar(&live, "live", false, "Stop at the first summary block")
	cmd.Flags().BoolVar(&capture, "capture", false, "Append the totals to the log")

	return cmd
}

func newReportHistoricCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "historic",
		Short: "Per-day totals for the most recent days with entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 {
				return fmt.Errorf("--days must be positive")
			}
			req := contract.NewHistoricRequest()
			req.Days = days
			r, err := app.Reports.Historic(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistoric(r))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Number of days with entries to show (default from config)")

	return cmd
}

func newReportLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Every entry, grouped by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Reports.Log(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLog(r))
			return nil
		},
	}
}

func newSnapshotCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Append the current totals to the log as a summary block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Reports.CaptureSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTotals(r))
			return nil
		},
	}
}
