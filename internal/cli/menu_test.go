package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/timely/internal/contract"
	"github.com/alexanderramin/timely/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rejectingTimeLog struct{}

func (rejectingTimeLog) LogTime(context.Context, contract.LogTimeRequest) (domain.TimeEntry, error) {
	return domain.TimeEntry{}, &contract.LogTimeError{
		Code:    contract.LogTimeErrUnknownProject,
		Message: "project removed",
		Err:     domain.ErrUnknownProject,
	}
}

func runScriptedMenu(t *testing.T, ta *testApp, answers ...any) (string, *scriptedPrompter, error) {
	t.Helper()
	p := script(t, answers...)
	ta.Prompter = p
	var out bytes.Buffer
	err := runMenu(context.Background(), ta.App, &bytes.Buffer{}, &out)
	return stripANSI(out.String()), p, err
}

func TestMenu_ExitAndAbort(t *testing.T) {
	ta := newTestApp(t)

	_, _, err := runScriptedMenu(t, ta, "Exit")
	require.NoError(t, err)

	// No answers left: the first prompt aborts, which ends the menu cleanly.
	_, p, err := runScriptedMenu(t, ta)
	require.NoError(t, err)
	assert.Equal(t, []string{"timely"}, p.titles)
}

func TestMenu_InteractiveRootOpensMenu(t *testing.T) {
	ta := newTestApp(t)
	ta.IsInteractive = func() bool { return true }
	p := script(t, "Exit")
	ta.Prompter = p

	_, err := executeCmd(t, ta.App)
	require.NoError(t, err)
	assert.Equal(t, []string{"timely"}, p.titles)
}

func TestMenu_NewProject(t *testing.T) {
	ta := newTestApp(t)

	out, _, err := runScriptedMenu(t, ta, "New Project", "  Gamma  ", "Exit")
	require.NoError(t, err)
	assert.Contains(t, out, "Added project Gamma")
	assert.Equal(t, []string{"Acme", "Beta", "Gamma"}, ta.projects.Lines())
}

func TestMenu_ManualEntry(t *testing.T) {
	ta := newTestApp(t)

	out, _, err := runScriptedMenu(t, ta,
		"Projects", "Beta", false, "0.75", "review", "Exit")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged 0.75 hours to Beta on 2024-01-02")
	assert.Empty(t, ta.timed)

	lines := ta.log.Lines()
	assert.Equal(t, "2024-01-02 17:00:00 - Beta: 0.75 hours - review", lines[len(lines)-1])
}

func TestMenu_TimerEntry(t *testing.T) {
	ta := newTestApp(t)

	out, _, err := runScriptedMenu(t, ta, "Projects", "Acme", true, "", "Exit")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme"}, ta.timed)
	assert.Contains(t, out, "Timer for Acme stopped at 1.5 hours")

	lines := ta.log.Lines()
	assert.Equal(t, "2024-01-02 18:30:00 - Acme: 1.5 hours", lines[len(lines)-1])
}

func TestMenu_HistoricEntry(t *testing.T) {
	ta := newTestApp(t)

	_, _, err := runScriptedMenu(t, ta,
		"Projects", historicEntryOption, "Three days ago", "Acme", "2", "", "Exit")
	require.NoError(t, err)

	lines := ta.log.Lines()
	assert.Equal(t, "2023-12-30 00:00:00 - Acme: 2.0 hours", lines[len(lines)-1])
}

func TestMenu_BackReturnsToMainMenu(t *testing.T) {
	ta := newTestApp(t)

	_, p, err := runScriptedMenu(t, ta,
		"Projects", backOption,
		"Projects", historicEntryOption, backOption,
		"Time Logs", backOption,
		"Exit")
	require.NoError(t, err)
	assert.Equal(t, []string{"timely", "Projects", "timely", "Projects", "Which day?", "timely", "Time Logs", "timely"}, p.titles)
	assert.Equal(t, []string{domain.SummaryHeader}, ta.log.Lines())
}

func TestMenu_DeleteProject(t *testing.T) {
	ta := newTestApp(t)

	_, _, err := runScriptedMenu(t, ta, "Delete Project", "Acme", false, "Exit")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Beta"}, ta.projects.Lines())

	out, _, err := runScriptedMenu(t, ta, "Delete Project", "Acme", true, "Exit")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed project Acme")
	assert.Equal(t, []string{"Beta"}, ta.projects.Lines())
}

func TestMenu_DeleteWithNoProjects(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.projects.OverwriteAll(context.Background(), nil))

	out, _, err := runScriptedMenu(t, ta, "Delete Project", "Exit")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects to delete.")
}

func TestMenu_TimeLogs(t *testing.T) {
	ta := newTestApp(t,
		"2024-01-01 10:00:00 - Acme: 3.0 hours",
		"2024-01-02 09:00:00 - Beta: 1.0 hours - planning",
	)

	out, _, err := runScriptedMenu(t, ta,
		"Time Logs", "Today's Totals",
		"Time Logs", "Historic Totals",
		"Time Logs", "Time Log",
		"Time Logs", "Total Time Worked", false,
		"Exit")
	require.NoError(t, err)
	assert.Contains(t, out, "Today's Totals")
	assert.Contains(t, out, "planning")
	assert.Contains(t, out, "Historic Totals")
	assert.Contains(t, out, "Time Log")
	assert.Contains(t, out, "4.0 hours")
	assert.Len(t, ta.log.Lines(), 3)
}

func TestMenu_TotalTimeWorkedCapture(t *testing.T) {
	ta := newTestApp(t, "2024-01-02 09:00:00 - Acme: 1.0 hours")

	out, _, err := runScriptedMenu(t, ta, "Time Logs", "Total Time Worked", true, "Exit")
	require.NoError(t, err)
	assert.Contains(t, out, "Summary block appended to the time log.")

	lines := ta.log.Lines()
	assert.Equal(t, []string{domain.SummaryHeader, domain.SummaryRowLine("Acme", 1)}, lines[len(lines)-2:])
}

func TestMenu_UserErrorKeepsRunning(t *testing.T) {
	ta := newTestApp(t)
	ta.App.TimeLog = rejectingTimeLog{}

	out, p, err := runScriptedMenu(t, ta, "Projects", "Acme", false, "1", "", "Exit")
	require.NoError(t, err)
	assert.Contains(t, out, "UNKNOWN_PROJECT")
	assert.Equal(t, "timely", p.titles[len(p.titles)-1])
}

func TestMenu_StoreErrorIsReturned(t *testing.T) {
	ta := newTestApp(t)
	boom := errors.New("disk on fire")
	ta.log.Err = boom

	_, _, err := runScriptedMenu(t, ta, "Time Logs", "Today's Totals", "Exit")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
