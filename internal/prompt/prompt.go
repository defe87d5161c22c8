// Package prompt implements the interactive read-validate loops.
//
// Every prompt prints its instructions, reads one line, trims it and
// validates; invalid input re-prompts. The line source is an interface
// so tests can drive prompts with a scripted sequence of lines.
package prompt

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/parker/clife/internal/apperr"
	"github.com/parker/clife/internal/models"
)

// LineReader supplies one line of user input per call.
type LineReader interface {
	// ReadLine displays prompt and blocks until a full line is
	// available. The returned line has no trailing newline.
	ReadLine(prompt string) (string, error)
}

// Prompter runs the interactive loops against a line source and an
// output writer.
type Prompter struct {
	in  LineReader
	out io.Writer
}

// New creates a Prompter reading from in and writing instructions to out.
func New(in LineReader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Action asks which action to take until the answer is exactly "c", "d"
// or "p" (case-sensitive, surrounding whitespace trimmed).
func (p *Prompter) Action() (models.Action, error) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "What action would you like to take?")
		fmt.Fprintln(p.out, "Options are ...")
		fmt.Fprintln(p.out, "\t- (c)reate note")
		fmt.Fprintln(p.out, "\t- (d)elete")
		fmt.Fprintln(p.out, "\t- create (p)roject")

		line, err := p.in.ReadLine("> ")
		if err != nil {
			return 0, fmt.Errorf("prompt: read action: %w", err)
		}
		switch strings.TrimSpace(line) {
		case "c":
			return models.ActionCreateNote, nil
		case "d":
			return models.ActionDelete, nil
		case "p":
			return models.ActionCreateProject, nil
		}
	}
}

// Note echoes the available notes and asks until the answer exactly
// matches one of their relative paths. verb only flavours the question.
func (p *Prompter) Note(notes []models.Note, verb string) (string, error) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintf(p.out, "What file would you like to %s?\n", verb)
		fmt.Fprintln(p.out, "Options are ...")
		for _, n := range notes {
			fmt.Fprintf(p.out, "- %s\n", n.TruncPath)
		}

		line, err := p.in.ReadLine("> ")
		if err != nil {
			return "", fmt.Errorf("prompt: read note: %w", err)
		}
		choice := strings.TrimSpace(line)
		for _, n := range notes {
			if n.TruncPath == choice {
				return choice, nil
			}
		}
	}
}

// ConfirmDelete asks for a y/n confirmation. "n" yields
// apperr.ErrCancelled, which the top level maps to a clean exit.
func (p *Prompter) ConfirmDelete(path string) error {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintf(p.out, "Are you sure you want to delete %s?\n", path)
		fmt.Fprintln(p.out, "Options are ...")
		fmt.Fprintln(p.out, "\t- (y)es")
		fmt.Fprintln(p.out, "\t- (n)o")

		line, err := p.in.ReadLine("> ")
		if err != nil {
			return fmt.Errorf("prompt: read confirmation: %w", err)
		}
		switch strings.TrimSpace(line) {
		case "y":
			return nil
		case "n":
			fmt.Fprintln(p.out, "Cancelling ...")
			return apperr.ErrCancelled
		}
	}
}

// ProjectName asks for a directory name until it validates, printing
// the allowed character set after each rejection.
func (p *Prompter) ProjectName() (string, error) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "What would you like to name this project?")

		line, err := p.in.ReadLine("> ")
		if err != nil {
			return "", fmt.Errorf("prompt: read project name: %w", err)
		}
		if err := ValidateProjectName(line); err != nil {
			fmt.Fprintf(p.out, "Potential project name %q contains invalid characters\n", line)
			fmt.Fprintln(p.out, "May only use alphanumerics, '_', and '.'")
			continue
		}
		return strings.TrimSpace(line), nil
	}
}

// projectNameRE accepts Unicode letters and digits plus '_' and '.'.
var projectNameRE = regexp.MustCompile(`^[\pL\pN_.]+$`)

// ValidateProjectName checks that name is usable as a directory name.
// The rule runs against the trimmed string: surrounding whitespace is
// tolerated, embedded whitespace is not.
func ValidateProjectName(name string) error {
	return validation.Validate(strings.TrimSpace(name),
		validation.Required.Error("project name must not be empty"),
		validation.Match(projectNameRE).Error("may only use alphanumerics, '_', and '.'"),
	)
}
