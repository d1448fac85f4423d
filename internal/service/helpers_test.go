package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/timely/internal/clock"
	"github.com/alexanderramin/timely/internal/db"
	"github.com/alexanderramin/timely/internal/domain"
	"github.com/alexanderramin/timely/internal/repository"
	"github.com/alexanderramin/timely/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) Events() []UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]UseCaseEvent(nil), r.events...)
}

type testEnv struct {
	log      *testutil.MemLineStore
	projects *testutil.MemLineStore
	clock    *clock.Fixed
	observer *recordingObserver
}

// setupEnv returns in-memory stores with the given log lines and the
// projects Acme and Beta registered, at 2024-01-02 17:00:00.
func setupEnv(t *testing.T, logLines ...string) *testEnv {
	t.Helper()
	return &testEnv{
		log:      testutil.NewMemLineStore(append([]string{domain.SummaryHeader}, logLines...)...),
		projects: testutil.NewMemLineStore("Acme", "Beta"),
		clock:    testutil.NewTestClock(2024, time.January, 2, 17, 0, 0),
		observer: &recordingObserver{},
	}
}

func (e *testEnv) projectService() ProjectService {
	return NewProjectService(repository.NewLineProjectRepo(e.projects), e.observer)
}

func (e *testEnv) timeLogService() TimeLogService {
	return NewTimeLogService(e.log, repository.NewLineProjectRepo(e.projects), e.clock, e.observer)
}

func (e *testEnv) reportService() ReportService {
	return NewReportService(e.log, e.clock, 0, e.observer)
}

// setupSQLiteStores bootstraps a projects store and a time log in an
// in-memory database.
func setupSQLiteStores(t *testing.T) (*repository.SQLiteLineStore, *repository.SQLiteLineStore) {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)
	projects := repository.NewSQLiteLineStore(database, uow, "projects")
	timeLog := repository.NewSQLiteLineStore(database, uow, "time_log")
	require.NoError(t, repository.Bootstrap(context.Background(), projects, timeLog))
	return projects, timeLog
}
