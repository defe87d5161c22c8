package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/peterh/liner"

	"github.com/parker/clife/internal/apperr"
)

// TermReader is a LineReader backed by the controlling terminal, with
// line editing. Ctrl-C and EOF both surface as user cancellation.
type TermReader struct {
	state *liner.State
}

// NewTermReader takes over the terminal until Close is called.
func NewTermReader() *TermReader {
	s := liner.NewLiner()
	s.SetCtrlCAborts(true)
	return &TermReader{state: s}
}

// ReadLine implements LineReader.
func (t *TermReader) ReadLine(prompt string) (string, error) {
	line, err := t.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", apperr.ErrCancelled
		}
		return "", fmt.Errorf("prompt: read line: %w", err)
	}
	return line, nil
}

// Close restores the terminal state.
func (t *TermReader) Close() error {
	return t.state.Close()
}
