package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/timely/internal/cli/formatter"
	"github.com/alexanderramin/timely/internal/contract"
	"github.com/alexanderramin/timely/internal/domain"
	"github.com/charmbracelet/huh"
)

var mainMenu = []string{"New Project", "Projects", "Delete Project", "Time Logs", "Exit"}

var timeLogsMenu = []string{"Today's Totals", "Total Time Worked", "Historic Totals", "Time Log", "Back"}

const (
	historicEntryOption = "Historic Time Entry"
	backOption          = "Back"
)

type menu struct {
	app    *App
	prompt Prompter
	in     io.Reader
	out    io.Writer
}

// runMenu drives the interactive menu until the user exits or aborts.
func runMenu(ctx context.Context, app *App, in io.Reader, out io.Writer) error {
	m := &menu{app: app, prompt: app.prompter(in, out), in: in, out: out}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		choice, err := m.prompt.Select("timely", mainMenu)
		if err != nil {
			return quietAbort(err)
		}

		switch mainMenu[choice] {
		case "New Project":
			err = m.newProject(ctx)
		case "Projects":
			err = m.projects(ctx)
		case "Delete Project":
			err = m.deleteProject(ctx)
		case "Time Logs":
			err = m.timeLogs(ctx)
		case "Exit":
			return nil
		}

		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			if !isUserError(err) {
				return err
			}
			fmt.Fprint(out, formatter.Warning(err.Error())+"\n")
		}
	}
}

func quietAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

// isUserError reports whether err came from bad input rather than a failing
// store, so the menu can report it and carry on.
func isUserError(err error) bool {
	var lte *contract.LogTimeError
	return errors.As(err, &lte) ||
		errors.Is(err, domain.ErrInvalidProjectName) ||
		errors.Is(err, domain.ErrInvalidHours) ||
		errors.Is(err, domain.ErrInvalidComment) ||
		errors.Is(err, domain.ErrBackdateOutOfRange)
}

func (m *menu) newProject(ctx context.Context) error {
	name, err := m.prompt.Input("Project name", "e.g. Acme", validateProjectName)
	if err != nil {
		return err
	}
	p, err := m.app.Projects.Add(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, formatter.Success(fmt.Sprintf("Added project %s", formatter.Bold(p.Name)))+"\n")
	return nil
}

func (m *menu) projectNames(ctx context.Context) ([]string, error) {
	projects, err := m.app.Projects.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names, nil
}

func (m *menu) projects(ctx context.Context) error {
	names, err := m.projectNames(ctx)
	if err != nil {
		return err
	}
	options := append(append([]string{}, names...), historicEntryOption, backOption)

	choice, err := m.prompt.Select("Projects", options)
	if err != nil {
		return err
	}
	switch choice {
	case len(names):
		return m.historicEntry(ctx, names)
	case len(names) + 1:
		return nil
	}
	return m.logProject(ctx, names[choice])
}

func (m *menu) logProject(ctx context.Context, project string) error {
	useTimer, err := m.prompt.Confirm(fmt.Sprintf("Start a timer for %s?", project))
	if err != nil {
		return err
	}
	if useTimer {
		comment, err := m.prompt.Input("Comment (optional)", "", validateComment)
		if err != nil {
			return err
		}
		return runTimer(ctx, m.app, project, comment, m.in, m.out)
	}
	return m.manualEntry(ctx, project, 0)
}

func (m *menu) historicEntry(ctx context.Context, names []string) error {
	dayOptions := append(append([]string{}, backdateOptions...), backOption)
	day, err := m.prompt.Select("Which day?", dayOptions)
	if err != nil {
		return err
	}
	if dayOptions[day] == backOption {
		return nil
	}

	projectOptions := append(append([]string{}, names...), backOption)
	choice, err := m.prompt.Select("Project", projectOptions)
	if err != nil {
		return err
	}
	if choice == len(names) {
		return nil
	}
	return m.manualEntry(ctx, names[choice], day)
}

func (m *menu) manualEntry(ctx context.Context, project string, daysAgo int) error {
	raw, err := m.prompt.Input(fmt.Sprintf("Hours worked on %s", project), "e.g. 1.5", validateHours)
	if err != nil {
		return err
	}
	hours, err := parseHours(raw)
	if err != nil {
		return err
	}
	comment, err := m.prompt.Input("Comment (optional)", "", validateComment)
	if err != nil {
		return err
	}

	req := contract.NewLogTimeRequest(project, hours)
	req.DaysAgo = daysAgo
	req.Comment = comment
	entry, err := m.app.TimeLog.LogTime(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, formatter.FormatLogged(entry))
	return nil
}

func (m *menu) deleteProject(ctx context.Context) error {
	names, err := m.projectNames(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(m.out, formatter.Dim("No projects to delete."))
		return nil
	}
	options := append(append([]string{}, names...), backOption)
	choice, err := m.prompt.Select("Delete which project?", options)
	if err != nil {
		return err
	}
	if choice == len(names) {
		return nil
	}

	ok, err := m.prompt.Confirm(fmt.Sprintf("Delete %s? Logged time is kept.", names[choice]))
	if err != nil || !ok {
		return err
	}
	if _, err := m.app.Projects.Remove(ctx, names[choice]); err != nil {
		return err
	}
	fmt.Fprint(m.out, formatter.Success(fmt.Sprintf("Removed project %s", formatter.Bold(names[choice])))+"\n")
	return nil
}

func (m *menu) timeLogs(ctx context.Context) error {
	choice, err := m.prompt.Select("Time Logs", timeLogsMenu)
	if err != nil {
		return err
	}

	switch timeLogsMenu[choice] {
	case "Today's Totals":
		r, err := m.app.Reports.Today(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(m.out, formatter.FormatToday(r))
	case "Total Time Worked":
		r, err := m.app.Reports.Totals(ctx, contract.NewTotalsRequest())
		if err != nil {
			return err
		}
		fmt.Fprint(m.out, formatter.FormatTotals(r))
		if r.Totals.Len() == 0 {
			return nil
		}
		capture, err := m.prompt.Confirm("Append these totals to the time log?")
		if err != nil || !capture {
			return err
		}
		if _, err := m.app.Reports.CaptureSnapshot(ctx); err != nil {
			return err
		}
		fmt.Fprint(m.out, formatter.Success("Summary block appended to the time log.")+"\n")
	case "Historic Totals":
		r, err := m.app.Reports.Historic(ctx, contract.NewHistoricRequest())
		if err != nil {
			return err
		}
		fmt.Fprint(m.out, formatter.FormatHistoric(r))
	case "Time Log":
		r, err := m.app.Reports.Log(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(m.out, formatter.FormatLog(r))
	}
	return nil
}
