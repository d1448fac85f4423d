// Package clock supplies the wall-clock source the engine stamps entries with.
package clock

import (
	"sync"
	"time"

	"github.com/alexanderramin/timely/internal/domain"
)

// Clock returns the current local wall-clock time.
type Clock interface {
	Now() time.Time
}

// System reads the operating system clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Today returns the current date as YYYY-MM-DD.
func Today(c Clock) string {
	return c.Now().Format(domain.DateLayout)
}

// Timestamp returns the current moment as YYYY-MM-DD HH:MM:SS.
func Timestamp(c Clock) string {
	return c.Now().Format(domain.TimestampLayout)
}

// Fixed is a settable clock for tests.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed returns a clock frozen at now.
func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Set moves the clock to now.
func (f *Fixed) Set(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = now
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
