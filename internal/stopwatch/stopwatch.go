// Package stopwatch runs the live timer: a bubbletea program that shows
// elapsed hours until the user stops it.
package stopwatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/timely/internal/clock"
	"github.com/alexanderramin/timely/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TickInterval is how often the display refreshes.
const TickInterval = 100 * time.Millisecond

var (
	styleTitle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
	styleElapsed = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c")).Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
)

type tickMsg time.Time

// KeyMap holds the bindings that stop the timer.
type KeyMap struct {
	Stop key.Binding
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Stop: key.NewBinding(key.WithKeys("enter", "esc", "q"), key.WithHelp("enter", "stop")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// Result is the outcome of one timing session.
type Result struct {
	Project string
	Start   time.Time
	Stop    time.Time
	// Hours is the elapsed time rounded once, at stop.
	Hours float64
	// Interrupted is set when the session ended through context
	// cancellation rather than a stop key.
	Interrupted bool
}

// Model is the stopwatch tea.Model.
type Model struct {
	project string
	clock   clock.Clock
	keys    KeyMap

	start   time.Time
	now     time.Time
	stop    time.Time
	stopped bool
}

// New starts a stopwatch for project at the clock's current time.
func New(project string, c clock.Clock) Model {
	now := c.Now()
	return Model{
		project: project,
		clock:   c,
		keys:    DefaultKeyMap(),
		start:   now,
		now:     now,
	}
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.stopped {
		return m, nil
	}
	switch msg := msg.(type) {
	case tickMsg:
		m.now = m.clock.Now()
		return m, tick()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Stop) || key.Matches(msg, m.keys.Quit) {
			return m.halt(), tea.Quit
		}
	}
	return m, nil
}

func (m Model) halt() Model {
	m.stop = m.clock.Now()
	m.now = m.stop
	m.stopped = true
	return m
}

// DisplayHours is the elapsed time shown on the last refresh, rounded to two
// decimals.
func (m Model) DisplayHours() float64 {
	return domain.ElapsedHours(m.now.Sub(m.start).Seconds())
}

// Stopped reports whether a stop key was pressed.
func (m Model) Stopped() bool {
	return m.stopped
}

// Result returns the session outcome. A running model is stopped at the
// clock's current time.
func (m Model) Result() Result {
	if !m.stopped {
		m = m.halt()
	}
	return Result{
		Project: m.project,
		Start:   m.start,
		Stop:    m.stop,
		Hours:   domain.ElapsedHours(m.stop.Sub(m.start).Seconds()),
	}
}

func (m Model) View() string {
	elapsed := m.now.Sub(m.start).Truncate(time.Second)
	var b strings.Builder
	b.WriteString(styleTitle.Render("Timing "+m.project) + "\n")
	fmt.Fprintf(&b, "%s  %s\n",
		styleElapsed.Render(domain.FormatHours(m.DisplayHours())+" hours"),
		styleDim.Render(formatClock(elapsed)))
	if m.stopped {
		b.WriteString(styleDim.Render("Stopped.") + "\n")
		return b.String()
	}
	b.WriteString(styleDim.Render("Press Enter to stop.") + "\n")
	return b.String()
}

func formatClock(d time.Duration) string {
	h := int(d.Hours())
	mins := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, mins, s)
}

// Run times project until a stop key is pressed or ctx is cancelled. A
// cancelled session still reports its elapsed time, marked Interrupted.
func Run(ctx context.Context, project string, c clock.Clock, in io.Reader, out io.Writer) (Result, error) {
	m := New(project, c)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		m = fm
	}
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			res := m.Result()
			res.Interrupted = true
			return res, nil
		}
		return Result{}, fmt.Errorf("running timer: %w", err)
	}
	return m.Result(), nil
}
