package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/timely/internal/clock"
	"github.com/alexanderramin/timely/internal/contract"
	"github.com/alexanderramin/timely/internal/domain"
	"github.com/alexanderramin/timely/internal/timelog"
)

type reportService struct {
	log          timelog.Store
	writer       *timelog.Writer
	clock        clock.Clock
	historicDays int
	observer     UseCaseObserver
}

// NewReportService builds reports from log. historicDays is the default
// window for Historic; non-positive values fall back to
// timelog.DefaultHistoricDays.
func NewReportService(
	log timelog.Store,
	c clock.Clock,
	historicDays int,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		log:          log,
		writer:       timelog.NewWriter(log, c),
		clock:        c,
		historicDays: domain.IntWithDefault(historicDays, timelog.DefaultHistoricDays),
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) readLog(ctx context.Context) ([]string, error) {
	lines, err := s.log.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	return lines, nil
}

func (s *reportService) Today(ctx context.Context) (*contract.TodayReport, error) {
	lines, err := s.readLog(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	today := now.Format(domain.DateLayout)

	entries := slices.Collect(timelog.FilterDate(timelog.ParseEntries(lines, domain.ScanAll), today))
	totals := timelog.Aggregate(slices.Values(entries), today)
	return &contract.TodayReport{
		GeneratedAt: now,
		Date:        today,
		Entries:     entries,
		Totals:      totals,
		Total:       totals.Sum(),
	}, nil
}

func (s *reportService) Totals(ctx context.Context, req contract.TotalsRequest) (*contract.TotalsReport, error) {
	if req.Capture {
		return s.CaptureSnapshot(ctx)
	}
	if req.Mode == "" {
		req.Mode = domain.ScanAll
	}
	lines, err := s.readLog(ctx)
	if err != nil {
		return nil, err
	}
	totals := timelog.Aggregate(timelog.ParseEntries(lines, req.Mode), "")
	return &contract.TotalsReport{
		GeneratedAt: s.clock.Now(),
		Mode:        req.Mode,
		Totals:      totals,
		Total:       totals.Sum(),
	}, nil
}

func (s *reportService) Historic(ctx context.Context, req contract.HistoricRequest) (*contract.HistoricReport, error) {
	window := domain.IntWithDefault(req.Days, s.historicDays)
	lines, err := s.readLog(ctx)
	if err != nil {
		return nil, err
	}
	return &contract.HistoricReport{
		GeneratedAt: s.clock.Now(),
		WindowSize:  window,
		Days:        timelog.HistoricTotals(timelog.ParseEntries(lines, domain.ScanAll), window),
	}, nil
}

func (s *reportService) Log(ctx context.Context) (*contract.LogReport, error) {
	lines, err := s.readLog(ctx)
	if err != nil {
		return nil, err
	}
	parsed := slices.Collect(timelog.Parse(lines))
	skipped := 0
	for _, l := range parsed {
		if l.Kind == domain.LineMalformed {
			skipped++
		}
	}
	return &contract.LogReport{
		GeneratedAt: s.clock.Now(),
		Days:        timelog.GroupByDate(timelog.Entries(slices.Values(parsed), domain.ScanAll)),
		Skipped:     skipped,
	}, nil
}

func (s *reportService) CaptureSnapshot(ctx context.Context) (report *contract.TotalsReport, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "capture-snapshot", time.Now().UTC(), fields, &err)

	totals, err := s.writer.CaptureSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	fields["projects"] = totals.Len()
	return &contract.TotalsReport{
		GeneratedAt: s.clock.Now(),
		Mode:        domain.ScanAll,
		Totals:      totals,
		Total:       totals.Sum(),
		Captured:    totals.Len() > 0,
	}, nil
}
