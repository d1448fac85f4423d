package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/timely/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HoursCell renders hours rounded to two decimals.
func HoursCell(h float64) string {
	return domain.FormatHours(domain.RoundHours(h))
}

// HoursLabel renders "<hours> hours".
func HoursLabel(h float64) string {
	return HoursCell(h) + " hours"
}

// DayLabel names a YYYY-MM-DD date relative to today: "Today", "Yesterday"
// or "Mon, Jan 2". Unparseable dates are returned unchanged.
func DayLabel(date, today string) string {
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	t, err := time.Parse(domain.DateLayout, today)
	if err != nil {
		return d.Format("Mon, Jan 2 2006")
	}
	switch int(t.Sub(d).Hours() / 24) {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	}
	if d.Year() == t.Year() {
		return d.Format("Mon, Jan 2")
	}
	return d.Format("Mon, Jan 2 2006")
}

// EntryTime returns the HH:MM:SS part of an entry timestamp.
func EntryTime(e domain.TimeEntry) string {
	_, clock, ok := strings.Cut(e.Timestamp, " ")
	if !ok {
		return ""
	}
	return clock
}
