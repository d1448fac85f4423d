package cli

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/timely/internal/clock"
	"github.com/alexanderramin/timely/internal/domain"
	"github.com/alexanderramin/timely/internal/repository"
	"github.com/alexanderramin/timely/internal/service"
	"github.com/alexanderramin/timely/internal/stopwatch"
	"github.com/alexanderramin/timely/internal/testutil"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

type testApp struct {
	*App
	log      *testutil.MemLineStore
	projects *testutil.MemLineStore
	clk      *clock.Fixed
	timed    []string
}

// newTestApp wires in-memory stores with Acme and Beta registered, at
// 2024-01-02 17:00:00. The stub timer reports 1.5 hours.
func newTestApp(t *testing.T, logLines ...string) *testApp {
	t.Helper()
	ta := &testApp{
		log:      testutil.NewMemLineStore(append([]string{domain.SummaryHeader}, logLines...)...),
		projects: testutil.NewMemLineStore("Acme", "Beta"),
		clk:      testutil.NewTestClock(2024, time.January, 2, 17, 0, 0),
	}
	projects := repository.NewLineProjectRepo(ta.projects)
	ta.App = &App{
		Projects:      service.NewProjectService(projects),
		TimeLog:       service.NewTimeLogService(ta.log, projects, ta.clk),
		Reports:       service.NewReportService(ta.log, ta.clk, 14),
		Clock:         ta.clk,
		IsInteractive: func() bool { return false },
		Timer: func(ctx context.Context, project string, in io.Reader, out io.Writer) (stopwatch.Result, error) {
			ta.timed = append(ta.timed, project)
			start := ta.clk.Now()
			stop := start.Add(90 * time.Minute)
			return stopwatch.Result{Project: project, Start: start, Stop: stop, Hours: 1.5}, nil
		},
	}
	return ta
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stripANSI(out.String()), err
}

// scriptedPrompter answers prompts from a queue. Running out of answers
// behaves like the user pressing ctrl+c.
type scriptedPrompter struct {
	t       *testing.T
	answers []any
	titles  []string
}

func (p *scriptedPrompter) next(title string) (any, bool) {
	p.titles = append(p.titles, title)
	if len(p.answers) == 0 {
		return nil, false
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, true
}

func (p *scriptedPrompter) Select(title string, options []string) (int, error) {
	a, ok := p.next(title)
	if !ok {
		return 0, huh.ErrUserAborted
	}
	label, isLabel := a.(string)
	require.True(p.t, isLabel, "prompt %q expects an option label, got %v", title, a)
	for i, o := range options {
		if o == label {
			return i, nil
		}
	}
	p.t.Fatalf("prompt %q has no option %q (options: %v)", title, label, options)
	return 0, nil
}

func (p *scriptedPrompter) Input(title, placeholder string, validate func(string) error) (string, error) {
	a, ok := p.next(title)
	if !ok {
		return "", huh.ErrUserAborted
	}
	s, isString := a.(string)
	require.True(p.t, isString, "prompt %q expects a string, got %v", title, a)
	if validate != nil {
		require.NoError(p.t, validate(s), "prompt %q rejected %q", title, s)
	}
	return s, nil
}

func (p *scriptedPrompter) Confirm(title string) (bool, error) {
	a, ok := p.next(title)
	if !ok {
		return false, huh.ErrUserAborted
	}
	b, isBool := a.(bool)
	require.True(p.t, isBool, "prompt %q expects a bool, got %v", title, a)
	return b, nil
}

func script(t *testing.T, answers ...any) *scriptedPrompter {
	return &scriptedPrompter{t: t, answers: answers}
}
