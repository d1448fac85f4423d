package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/timely/internal/contract"
	"github.com/alexanderramin/timely/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLogService_LogToday(t *testing.T) {
	env := setupEnv(t)
	svc := env.timeLogService()

	req := contract.NewLogTimeRequest("Acme", 1.257)
	req.Comment = "invoices"
	entry, err := svc.LogTime(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-02", entry.Date)
	assert.Equal(t, 1.26, entry.Hours)
	assert.Equal(t, []string{
		domain.SummaryHeader,
		"2024-01-02 17:00:00 - Acme: 1.26 hours - invoices",
	}, env.log.Lines())
}

func TestTimeLogService_Backdate(t *testing.T) {
	tests := []struct {
		daysAgo int
		want    string
	}{
		{1, "2024-01-01 00:00:00 - Beta: 2.0 hours"},
		{2, "2023-12-31 00:00:00 - Beta: 2.0 hours"},
		{3, "2023-12-30 00:00:00 - Beta: 2.0 hours"},
	}
	for _, tt := range tests {
		env := setupEnv(t)
		req := contract.NewLogTimeRequest("Beta", 2)
		req.DaysAgo = tt.daysAgo

		_, err := env.timeLogService().LogTime(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, tt.want, env.log.Lines()[1])
	}
}

func TestTimeLogService_BackdateOutOfRange(t *testing.T) {
	for _, daysAgo := range []int{-1, 4, 30} {
		env := setupEnv(t)
		req := contract.NewLogTimeRequest("Acme", 1)
		req.DaysAgo = daysAgo

		_, err := env.timeLogService().LogTime(context.Background(), req)
		require.ErrorIs(t, err, domain.ErrBackdateOutOfRange)

		var lerr *contract.LogTimeError
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, contract.LogTimeErrOutOfRange, lerr.Code)
		assert.Len(t, env.log.Lines(), 1)
	}
}

func TestTimeLogService_ExplicitDate(t *testing.T) {
	env := setupEnv(t)
	req := contract.NewLogTimeRequest("Acme", 4)
	req.Date = "2023-11-20"

	entry, err := env.timeLogService().LogTime(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2023-11-20 00:00:00", entry.Timestamp)
}

func TestTimeLogService_StampedAt(t *testing.T) {
	env := setupEnv(t)
	req := contract.NewLogTimeRequest("Acme", 1.25)
	req.At = time.Date(2024, time.January, 1, 23, 59, 30, 0, time.Local)
	req.DaysAgo = 9

	entry, err := env.timeLogService().LogTime(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", entry.Date)
	assert.Equal(t, "2024-01-01 23:59:30", entry.Timestamp)
	assert.Equal(t, "2024-01-01 23:59:30 - Acme: 1.25 hours", env.log.Lines()[1])
}

func TestTimeLogService_UnknownProject(t *testing.T) {
	env := setupEnv(t)

	_, err := env.timeLogService().LogTime(context.Background(), contract.NewLogTimeRequest("Globex", 1))
	require.Error(t, err)
	assert.True(t, IsUnknownProject(err))
	assert.Len(t, env.log.Lines(), 1)
}

func TestTimeLogService_InvalidHours(t *testing.T) {
	env := setupEnv(t)

	_, err := env.timeLogService().LogTime(context.Background(), contract.NewLogTimeRequest("Acme", -2))
	assert.ErrorIs(t, err, domain.ErrInvalidHours)
}

func TestTimeLogService_ObservesUseCase(t *testing.T) {
	env := setupEnv(t)

	_, err := env.timeLogService().LogTime(context.Background(), contract.NewLogTimeRequest("Acme", 1))
	require.NoError(t, err)

	events := env.observer.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "log-time", events[0].Name)
	assert.True(t, events[0].Success)
	assert.Equal(t, "2024-01-02", events[0].Fields["date"])
	assert.Equal(t, "Acme", events[0].Fields["project"])
}
