package testutil

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/alexanderramin/timely/internal/clock"
	"github.com/alexanderramin/timely/internal/domain"
)

// MemLineStore is an in-memory LineStore. Setting Err makes every operation
// fail with it.
type MemLineStore struct {
	mu    sync.Mutex
	lines []string
	Err   error
}

// NewMemLineStore returns a store holding a copy of lines.
func NewMemLineStore(lines ...string) *MemLineStore {
	return &MemLineStore{lines: slices.Clone(lines)}
}

func (m *MemLineStore) ReadAll(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return slices.Clone(m.lines), nil
}

func (m *MemLineStore) Append(ctx context.Context, lines ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.lines = append(m.lines, lines...)
	return nil
}

func (m *MemLineStore) OverwriteAll(ctx context.Context, lines []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.lines = slices.Clone(lines)
	return nil
}

// Lines returns a snapshot of the stored lines.
func (m *MemLineStore) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.lines)
}

// NewTestClock returns a fixed clock at the given local wall-clock time.
func NewTestClock(year int, month time.Month, day, hour, min, sec int) *clock.Fixed {
	return clock.NewFixed(time.Date(year, month, day, hour, min, sec, 0, time.Local))
}

// Entry options
type EntryOption func(*domain.TimeEntry)

func WithComment(c string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Comment = c
	}
}

func WithTimestamp(ts string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Timestamp = ts
	}
}

// NewTestEntry returns an entry dated date, stamped at 09:00:00.
func NewTestEntry(date, project string, hours float64, opts ...EntryOption) domain.TimeEntry {
	e := domain.TimeEntry{
		Date:      date,
		Timestamp: date + " 09:00:00",
		Project:   project,
		Hours:     hours,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// EntryLines serializes entries as log lines.
func EntryLines(entries ...domain.TimeEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Line())
	}
	return lines
}
