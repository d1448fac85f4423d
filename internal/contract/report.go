package contract

import (
	"time"

	"github.com/alexanderramin/timely/internal/domain"
)

// TodayReport lists the entries dated today in log order.
type TodayReport struct {
	GeneratedAt time.Time
	Date        string
	Entries     []domain.TimeEntry
	Totals      domain.ProjectTotals
	Total       float64
}

type TotalsRequest struct {
	Mode    domain.ScanMode
	Capture bool
}

func NewTotalsRequest() TotalsRequest {
	return TotalsRequest{Mode: domain.ScanAll}
}

// TotalsReport is the grand total across the log. Captured is set when the
// totals were also appended to the log as a summary block.
type TotalsReport struct {
	GeneratedAt time.Time
	Mode        domain.ScanMode
	Totals      domain.ProjectTotals
	Total       float64
	Captured    bool
}

type HistoricRequest struct {
	Days int
}

// NewHistoricRequest returns a request for the configured default window.
func NewHistoricRequest() HistoricRequest {
	return HistoricRequest{}
}

type HistoricReport struct {
	GeneratedAt time.Time
	WindowSize  int
	Days        []domain.DailyTotals
}

// LogReport is the whole log grouped by date in file order. Skipped counts
// malformed lines that were ignored.
type LogReport struct {
	GeneratedAt time.Time
	Days        []domain.DayLog
	Skipped     int
}
