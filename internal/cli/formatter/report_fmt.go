package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/timely/internal/contract"
	"github.com/alexanderramin/timely/internal/domain"
)

const barWidth = 20

// FormatProjectList renders registered projects with their menu numbers.
func FormatProjectList(projects []domain.Project) string {
	var b strings.Builder
	b.WriteString(Header("Projects") + "\n\n")
	if len(projects) == 0 {
		b.WriteString(Dim("No projects yet. Add one with: timely project add NAME") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(projects))
	for i, p := range projects {
		rows = append(rows, []string{strconv.Itoa(i + 1), p.Name})
	}
	b.WriteString(RenderNumericTable([]string{"#", "PROJECT"}, rows, 0))
	return b.String()
}

// FormatLogged confirms a recorded entry.
func FormatLogged(e domain.TimeEntry) string {
	msg := fmt.Sprintf("Logged %s to %s on %s", HoursLabel(e.Hours), Bold(e.Project), e.Date)
	if e.Comment != "" {
		msg += Dim(" (" + e.Comment + ")")
	}
	return Success(msg) + "\n"
}

// FormatToday renders today's entries followed by per-project totals.
func FormatToday(r *contract.TodayReport) string {
	var b strings.Builder
	b.WriteString(Header("Today's Totals") + "\n")
	b.WriteString(Dim(r.Date) + "\n\n")
	if len(r.Entries) == 0 {
		b.WriteString(Dim("No time logged today.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		rows = append(rows, []string{EntryTime(e), e.Project, HoursCell(e.Hours), e.Comment})
	}
	b.WriteString(RenderNumericTable([]string{"TIME", "PROJECT", "HOURS", "COMMENT"}, rows, 2))
	b.WriteString("\n")
	b.WriteString(totalsTable(r.Totals))
	b.WriteString(totalLine(r.Total))
	return b.String()
}

// FormatTotals renders the grand totals across the log.
func FormatTotals(r *contract.TotalsReport) string {
	var b strings.Builder
	b.WriteString(Header("Total Time Worked") + "\n\n")
	if r.Mode == domain.ScanUntilSummary {
		b.WriteString(Dim("Live totals: entries up to the first summary block.") + "\n\n")
	}
	if r.Totals.Len() == 0 {
		b.WriteString(Dim("No time logged yet.") + "\n")
		return b.String()
	}
	b.WriteString(totalsTable(r.Totals))
	b.WriteString(totalLine(r.Total))
	if r.Captured {
		b.WriteString("\n" + Dim("Summary block appended to the time log.") + "\n")
	}
	return b.String()
}

// FormatHistoric renders the most recent days with entries, newest first.
func FormatHistoric(r *contract.HistoricReport) string {
	var b strings.Builder
	b.WriteString(Header("Historic Totals") + "\n")
	b.WriteString(Dim(fmt.Sprintf("Last %d days with entries", r.WindowSize)) + "\n")
	if len(r.Days) == 0 {
		b.WriteString("\n" + Dim("No time logged yet.") + "\n")
		return b.String()
	}

	var busiest float64
	for _, d := range r.Days {
		busiest = max(busiest, d.Total)
	}
	today := r.GeneratedAt.Format(domain.DateLayout)
	for _, d := range r.Days {
		frac := 0.0
		if busiest > 0 {
			frac = d.Total / busiest
		}
		fmt.Fprintf(&b, "\n%s  %s  %s  %s\n",
			Bold(d.Date), Dim(DayLabel(d.Date, today)), RenderBar(frac, barWidth), HoursLabel(d.Total))
		for p, h := range d.Totals.All() {
			fmt.Fprintf(&b, "  %s: %s\n", p, HoursLabel(h))
		}
	}
	return b.String()
}

// FormatLog renders every entry grouped under its date, in log order.
func FormatLog(r *contract.LogReport) string {
	var b strings.Builder
	b.WriteString(Header("Time Log") + "\n")
	if len(r.Days) == 0 {
		b.WriteString("\n" + Dim("No time logged yet.") + "\n")
	}
	for _, day := range r.Days {
		var total float64
		rows := make([][]string, 0, len(day.Entries))
		for _, e := range day.Entries {
			total += e.Hours
			rows = append(rows, []string{EntryTime(e), e.Project, HoursCell(e.Hours), e.Comment})
		}
		fmt.Fprintf(&b, "\n%s  %s\n", StyleBlue.Render(day.Date), Dim(HoursLabel(total)))
		b.WriteString(RenderNumericTable([]string{"TIME", "PROJECT", "HOURS", "COMMENT"}, rows, 2))
	}
	if r.Skipped > 0 {
		b.WriteString("\n" + Dim(fmt.Sprintf("%d unreadable line(s) skipped.", r.Skipped)) + "\n")
	}
	return b.String()
}

// FormatTimerResult summarizes a finished stopwatch session.
func FormatTimerResult(project string, hours float64, interrupted bool) string {
	msg := fmt.Sprintf("Timer for %s stopped at %s", Bold(project), HoursLabel(hours))
	if interrupted {
		return Warning(msg+" (interrupted)") + "\n"
	}
	return Success(msg) + "\n"
}

func totalsTable(t domain.ProjectTotals) string {
	rows := make([][]string, 0, t.Len())
	for p, h := range t.All() {
		rows = append(rows, []string{p, HoursCell(h)})
	}
	return RenderNumericTable([]string{"PROJECT", "HOURS"}, rows, 1)
}

func totalLine(total float64) string {
	return "\n" + Bold("Total") + "  " + HoursStyle(total).Render(HoursLabel(total)) + "\n"
}
