// Package testutil provides shared test helpers for setting up vaults and scripted input.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/parker/clife/internal/storage"
)

// TestVault creates a temporary vault directory with a storage.Provider.
func TestVault(t *testing.T) (string, storage.Provider) {
	t.Helper()
	vaultDir := t.TempDir()
	store, err := storage.NewFS(vaultDir)
	if err != nil {
		t.Fatal(err)
	}
	return vaultDir, store
}

// WriteFile creates a file (and any parent directories) under dir.
func WriteFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	full := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// ScriptReader is a prompt.LineReader fed from a fixed sequence of
// lines, for driving interactive loops deterministically in tests.
type ScriptReader struct {
	lines []string
}

// Script returns a ScriptReader that will yield the given lines in order.
func Script(lines ...string) *ScriptReader {
	return &ScriptReader{lines: lines}
}

// ReadLine pops the next scripted line, or io.EOF when the script is
// exhausted.
func (s *ScriptReader) ReadLine(string) (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}
