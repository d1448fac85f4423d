package timelog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timely/internal/clock"
	"github.com/alexanderramin/timely/internal/domain"
)

// Store is the slice of a line store the writer needs.
type Store interface {
	ReadAll(ctx context.Context) ([]string, error)
	Append(ctx context.Context, lines ...string) error
}

// Writer appends entries and summary blocks to the log. It never rewrites
// existing lines.
type Writer struct {
	store Store
	clock clock.Clock
}

// NewWriter creates a Writer stamping entries with c.
func NewWriter(store Store, c clock.Clock) *Writer {
	return &Writer{store: store, clock: c}
}

// AppendEntry records hours against project. An empty date (or today's date)
// stamps the entry with the current moment; any other date is a backdated
// entry and gets the synthetic timestamp "<date> 00:00:00".
func (w *Writer) AppendEntry(ctx context.Context, project string, hours float64, date, comment string) (domain.TimeEntry, error) {
	now := w.clock.Now()
	at := now
	if date != "" && date != now.Format(domain.DateLayout) {
		d, err := time.ParseInLocation(domain.DateLayout, date, now.Location())
		if err != nil {
			return domain.TimeEntry{}, fmt.Errorf("invalid entry date %q: %w", date, err)
		}
		at = d
	}
	return w.AppendEntryAt(ctx, project, hours, at, comment)
}

// AppendEntryAt records hours stamped at the given moment, which also fixes
// the entry date. Timer entries use the stop moment so a session written
// after midnight keeps its real timestamp.
func (w *Writer) AppendEntryAt(ctx context.Context, project string, hours float64, at time.Time, comment string) (domain.TimeEntry, error) {
	project, err := domain.NormalizeProjectName(project)
	if err != nil {
		return domain.TimeEntry{}, err
	}
	if err := domain.ValidateHours(hours); err != nil {
		return domain.TimeEntry{}, err
	}
	comment = strings.TrimSpace(comment)
	if err := domain.ValidateComment(comment); err != nil {
		return domain.TimeEntry{}, err
	}

	entry := domain.TimeEntry{
		Date:      at.Format(domain.DateLayout),
		Timestamp: at.Format(domain.TimestampLayout),
		Project:   project,
		Hours:     domain.RoundHours(hours),
		Comment:   comment,
	}
	if err := w.store.Append(ctx, entry.Line()); err != nil {
		return domain.TimeEntry{}, fmt.Errorf("appending entry: %w", err)
	}
	return entry, nil
}

// AppendSummary writes a summary block: the header and one row per project.
func (w *Writer) AppendSummary(ctx context.Context, totals domain.ProjectTotals) error {
	if err := w.store.Append(ctx, totals.SummaryLines()...); err != nil {
		return fmt.Errorf("appending summary: %w", err)
	}
	return nil
}

// CaptureSnapshot reads the whole log, totals every entry and appends the
// result as a summary block. It is the only read path that writes. Calling
// it twice writes two identical blocks; nothing is written when the log
// holds no entries.
func (w *Writer) CaptureSnapshot(ctx context.Context) (domain.ProjectTotals, error) {
	lines, err := w.store.ReadAll(ctx)
	if err != nil {
		return domain.ProjectTotals{}, fmt.Errorf("reading log: %w", err)
	}
	totals := Aggregate(ParseEntries(lines, domain.ScanAll), "")
	if totals.Len() == 0 {
		return totals, nil
	}
	if err := w.AppendSummary(ctx, totals); err != nil {
		return domain.ProjectTotals{}, err
	}
	return totals, nil
}
