package cli

import (
	"io"

	"github.com/charmbracelet/huh"
)

// Prompter asks the user one question at a time. The menu is written
// against it so it can be scripted in tests.
type Prompter interface {
	// Select returns the index of the chosen option.
	Select(title string, options []string) (int, error)
	Input(title, placeholder string, validate func(string) error) (string, error)
	Confirm(title string) (bool, error)
}

type huhPrompter struct {
	in  io.Reader
	out io.Writer
}

func newHuhPrompter(in io.Reader, out io.Writer) *huhPrompter {
	return &huhPrompter{in: in, out: out}
}

func (p *huhPrompter) form(field huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(timelyHuhTheme()).
		WithShowHelp(false).
		WithInput(p.in).
		WithOutput(p.out)
}

func (p *huhPrompter) Select(title string, options []string) (int, error) {
	opts := make([]huh.Option[int], 0, len(options))
	for i, o := range options {
		opts = append(opts, huh.NewOption(o, i))
	}
	var choice int
	err := p.form(huh.NewSelect[int]().Title(title).Options(opts...).Value(&choice)).Run()
	return choice, err
}

func (p *huhPrompter) Input(title, placeholder string, validate func(string) error) (string, error) {
	var value string
	in := huh.NewInput().Title(title).Placeholder(placeholder).Value(&value)
	if validate != nil {
		in = in.Validate(validate)
	}
	err := p.form(in).Run()
	return value, err
}

func (p *huhPrompter) Confirm(title string) (bool, error) {
	var ok bool
	err := p.form(huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)).Run()
	return ok, err
}
