package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/timely/internal/contract"
	"github.com/alexanderramin/timely/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleLog = []string{
	"2024-01-01 09:00:00 - Acme: 2.5 hours",
	"2024-01-01 13:00:00 - Acme: 1.0 hours - standup",
	"Total Time Worked:",
	"Acme: 3.5 hours",
	"garbage line",
	"2024-01-02 09:00:00 - Beta: 3.0 hours",
	"2024-01-02 11:30:00 - Acme: 0.5 hours - review",
}

func TestReportService_Today(t *testing.T) {
	env := setupEnv(t, sampleLog...)

	report, err := env.reportService().Today(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024-01-02", report.Date)
	require.Len(t, report.Entries, 2)
	assert.Equal(t, "Beta", report.Entries[0].Project)
	assert.Equal(t, "review", report.Entries[1].Comment)
	assert.Equal(t, []string{"Beta", "Acme"}, report.Totals.Projects())
	assert.Equal(t, 3.5, report.Total)
}

func TestReportService_Today_NoEntries(t *testing.T) {
	env := setupEnv(t)

	report, err := env.reportService().Today(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Entries)
	assert.Zero(t, report.Total)
}

func TestReportService_Totals(t *testing.T) {
	env := setupEnv(t, sampleLog...)

	report, err := env.reportService().Totals(context.Background(), contract.NewTotalsRequest())
	require.NoError(t, err)

	acme, _ := report.Totals.Get("Acme")
	beta, _ := report.Totals.Get("Beta")
	assert.Equal(t, 4.0, acme)
	assert.Equal(t, 3.0, beta)
	assert.False(t, report.Captured)
	assert.Len(t, env.log.Lines(), len(sampleLog)+1, "plain totals never write")
}

func TestReportService_Totals_UntilSummary(t *testing.T) {
	env := setupEnv(t, sampleLog...)
	req := contract.NewTotalsRequest()
	req.Mode = domain.ScanUntilSummary

	report, err := env.reportService().Totals(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"Acme"}, report.Totals.Projects())
	assert.Equal(t, 3.5, report.Total)
}

func TestReportService_Totals_Capture(t *testing.T) {
	env := setupEnv(t, sampleLog...)
	req := contract.NewTotalsRequest()
	req.Capture = true

	report, err := env.reportService().Totals(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, report.Captured)

	lines := env.log.Lines()
	assert.Equal(t, []string{
		"Total Time Worked:",
		"Acme: 4.0 hours",
		"Beta: 3.0 hours",
	}, lines[len(lines)-3:])
}

func TestReportService_CaptureSnapshot_EmptyLog(t *testing.T) {
	env := setupEnv(t)

	report, err := env.reportService().CaptureSnapshot(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Captured)
	assert.Equal(t, []string{domain.SummaryHeader}, env.log.Lines())

	events := env.observer.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "capture-snapshot", events[0].Name)
}

func TestReportService_Historic(t *testing.T) {
	var lines []string
	for day := 1; day <= 20; day++ {
		lines = append(lines, fmt.Sprintf("2024-01-%02d 09:00:00 - Acme: 1.0 hours", day))
	}
	lines = append(lines, "2024-01-20 10:00:00 - Beta: 2.0 hours")
	env := setupEnv(t, lines...)
	svc := env.reportService()
	ctx := context.Background()

	report, err := svc.Historic(ctx, contract.NewHistoricRequest())
	require.NoError(t, err)
	assert.Equal(t, 14, report.WindowSize)
	require.Len(t, report.Days, 14)
	assert.Equal(t, "2024-01-20", report.Days[0].Date)
	assert.Equal(t, 3.0, report.Days[0].Total)
	assert.Equal(t, "2024-01-07", report.Days[13].Date)

	report, err = svc.Historic(ctx, contract.HistoricRequest{Days: 3})
	require.NoError(t, err)
	require.Len(t, report.Days, 3)
	assert.Equal(t, "2024-01-18", report.Days[2].Date)
}

func TestReportService_Historic_ConfiguredWindow(t *testing.T) {
	env := setupEnv(t, sampleLog...)
	svc := NewReportService(env.log, env.clock, 1)

	report, err := svc.Historic(context.Background(), contract.NewHistoricRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, report.WindowSize)
	require.Len(t, report.Days, 1)
	assert.Equal(t, "2024-01-02", report.Days[0].Date)
}

func TestReportService_Log(t *testing.T) {
	env := setupEnv(t, sampleLog...)

	report, err := env.reportService().Log(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Days, 2)
	assert.Equal(t, "2024-01-01", report.Days[0].Date)
	assert.Len(t, report.Days[0].Entries, 2)
	assert.Equal(t, "2024-01-02", report.Days[1].Date)
	assert.Equal(t, 1, report.Skipped)
}

func TestReportService_StoreError(t *testing.T) {
	env := setupEnv(t)
	env.log.Err = errors.New("permission denied")
	svc := env.reportService()
	ctx := context.Background()

	_, err := svc.Today(ctx)
	assert.ErrorIs(t, err, env.log.Err)
	_, err = svc.Totals(ctx, contract.NewTotalsRequest())
	assert.ErrorIs(t, err, env.log.Err)
	_, err = svc.Historic(ctx, contract.NewHistoricRequest())
	assert.ErrorIs(t, err, env.log.Err)
	_, err = svc.Log(ctx)
	assert.ErrorIs(t, err, env.log.Err)
	_, err = svc.CaptureSnapshot(ctx)
	assert.ErrorIs(t, err, env.log.Err)
}
