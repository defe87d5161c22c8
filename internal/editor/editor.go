// Package editor resolves and launches the user's text editor.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrNoEditor means no usable editor command could be found.
var ErrNoEditor = errors.New("no editor found (set editor in config, $EDITOR, or install vi/nano)")

// Resolve picks an editor command. Priority: preferred (from config)
// -> $EDITOR -> vi -> nano. Each candidate must be on PATH.
func Resolve(preferred string) (string, error) {
	candidates := []string{preferred, os.Getenv("EDITOR"), "vi", "nano"}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if _, err := exec.LookPath(c); err == nil {
			return c, nil
		}
	}
	return "", ErrNoEditor
}

// Run launches name against path, attached to the current terminal,
// and blocks until it exits. The editor's exit code is returned; it is
// reported but never treated as a failure of the run itself.
func Run(ctx context.Context, name, path string) (int, error) {
	cmd := exec.CommandContext(ctx, name, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("editor: run %s: %w", name, err)
	}
	return 0, nil
}
