package internal

import (
	"io"

	"github.com/parker/clife/internal/prompt"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	input  prompt.LineReader
	output io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithInput sets the line source for the interactive prompts. Defaults
// to the controlling terminal.
func WithInput(in prompt.LineReader) Option {
	return func(a *application) {
		a.input = in
	}
}

// WithOutput sets the writer for user-facing output. Defaults to
// standard output.
func WithOutput(out io.Writer) Option {
	return func(a *application) {
		a.output = out
	}
}
