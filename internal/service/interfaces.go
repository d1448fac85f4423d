package service

import (
	"context"

	"github.com/alexanderramin/timely/internal/contract"
	"github.com/alexanderramin/timely/internal/domain"
)

type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Add(ctx context.Context, name string) (domain.Project, error)
	// Remove deletes every project line matching name and returns the count.
	Remove(ctx context.Context, name string) (int, error)
}

type TimeLogService interface {
	LogTime(ctx context.Context, req contract.LogTimeRequest) (domain.TimeEntry, error)
}

type ReportService interface {
	Today(ctx context.Context) (*contract.TodayReport, error)
	Totals(ctx context.Context, req contract.TotalsRequest) (*contract.TotalsReport, error)
	Historic(ctx context.Context, req contract.HistoricRequest) (*contract.HistoricReport, error)
	Log(ctx context.Context) (*contract.LogReport, error)
	CaptureSnapshot(ctx context.Context) (*contract.TotalsReport, error)
}
