package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/timely/internal/cli/formatter"
	"github.com/alexanderramin/timely/internal/domain"
	"github.com/spf13/cobra"
)

// resolveProject returns the registered project whose name matches input,
// ignoring case when there is no exact match.
func resolveProject(ctx context.Context, app *App, input string) (string, error) {
	name, err := domain.NormalizeProjectName(input)
	if err != nil {
		return "", err
	}
	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	var folded []string
	for _, p := range projects {
		if p.Name == name {
			return p.Name, nil
		}
		if strings.EqualFold(p.Name, name) {
			folded = append(folded, p.Name)
		}
	}
	switch len(folded) {
	case 0:
		return "", fmt.Errorf("project not found: %q (see: timely project list)", name)
	case 1:
		return folded[0], nil
	default:
		return "", fmt.Errorf("project name %q is ambiguous (%d matches)", name, len(folded))
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Register a new project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Add(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Added project %s", formatter.Bold(p.Name)))+"\n")
			return nil
		},
	}
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"rm"},
		Short:   "Remove a project (logged time is kept)",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			n, err := app.Projects.Remove(cmd.Context(), name)
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("project not found: %q", strings.TrimSpace(name))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Removed project %s", formatter.Bold(strings.TrimSpace(name))))+"\n")
			return nil
		},
	}
}
