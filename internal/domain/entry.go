package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"

	// SummarySentinel marks a totals header; SummaryHeader is the exact line
	// written before each summary block.
	SummarySentinel = "Total Time Worked"
	SummaryHeader   = SummarySentinel + ":"

	// MaxBackdateDays bounds manual entries: today, yesterday, two or three
	// days ago.
	MaxBackdateDays = 3
)

// TimeEntry is one recorded unit of work. Timestamp is the moment the line
// was written (or midnight of Date for backdated entries); Date is the
// calendar day the hours count towards.
type TimeEntry struct {
	Date      string
	Timestamp string
	Project   string
	Hours     float64
	Comment   string
}

// Line serializes the entry without a trailing newline.
func (e TimeEntry) Line() string {
	line := fmt.Sprintf("%s - %s: %s hours", e.Timestamp, e.Project, FormatHours(e.Hours))
	if e.Comment != "" {
		line += " - " + e.Comment
	}
	return line
}

// LogLine is the classified form of one raw log line. Entry is populated for
// LineEntry (all fields) and LineSummaryRow (Project and Hours only).
type LogLine struct {
	Kind  LineKind
	Raw   string
	Entry TimeEntry
}

// SummaryRowLine renders one row of a summary block.
func SummaryRowLine(project string, hours float64) string {
	return fmt.Sprintf("%s: %s hours", project, FormatHours(hours))
}

// ValidateComment rejects comments that would break the one-line format.
func ValidateComment(comment string) error {
	if strings.ContainsAny(comment, "\r\n") {
		return fmt.Errorf("%w: comment contains a line break", ErrInvalidComment)
	}
	return nil
}

// BackdatedDate returns the date daysAgo days before now, within the manual
// entry window.
func BackdatedDate(now time.Time, daysAgo int) (string, error) {
	if daysAgo < 0 || daysAgo > MaxBackdateDays {
		return "", fmt.Errorf("%w: %d days ago (allowed 0-%d)", ErrBackdateOutOfRange, daysAgo, MaxBackdateDays)
	}
	return now.AddDate(0, 0, -daysAgo).Format(DateLayout), nil
}
