package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/parker/clife/internal/apperr"
	"github.com/parker/clife/internal/models"
)

// Exists reports whether the vault root directory is present. An error
// means the check itself could not be performed, which the caller
// treats as unrecoverable.
func Exists(root string) (bool, error) {
	_, err := os.Stat(root)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("storage: probe root %s: %w", root, err)
}

// Ensure creates the vault root and any missing intermediate
// directories. Idempotent; the error is propagated, never discarded.
func Ensure(root string) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("storage: create root %s: %w", root, err)
	}
	return nil
}

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to vault directory
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute vault root.
func (f *FS) Root() string {
	return f.root
}

// safePath resolves a relative path against the vault root and rejects
// any result that escapes it (directory traversal).
func (f *FS) safePath(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", rel)
	}
	joined := filepath.Join(f.root, cleaned)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	// Ensure the resolved path is still under root.
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("storage: path escapes vault root: %s", rel)
	}
	return abs, nil
}

// List walks the whole vault depth-first and returns a Note for every
// file found, whatever its extension. Any directory read error aborts
// the walk; there are no partial results.
func (f *FS) List() ([]models.Note, error) {
	var out []models.Note
	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(f.root, p)
		if err != nil {
			return err
		}
		out = append(out, models.Note{FullPath: p, TruncPath: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	return out, nil
}

// Create makes a new empty file at path. O_EXCL guarantees the file did
// not exist immediately before the call.
func (f *FS) Create(path string) (models.Note, error) {
	abs, err := f.safePath(path)
	if err != nil {
		return models.Note{}, err
	}
	file, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return models.Note{}, fmt.Errorf("storage: create %s: %w", path, apperr.ErrAlreadyExists)
		}
		return models.Note{}, fmt.Errorf("storage: create %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return models.Note{}, fmt.Errorf("storage: close %s: %w", path, err)
	}
	rel, err := filepath.Rel(f.root, abs)
	if err != nil {
		return models.Note{}, fmt.Errorf("storage: relativize %s: %w", abs, err)
	}
	return models.Note{FullPath: abs, TruncPath: rel}, nil
}

// Delete removes a file from the vault.
func (f *FS) Delete(path string) error {
	abs, err := f.safePath(path)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("storage: delete %s: %w", path, apperr.ErrNotFound)
		}
		return fmt.Errorf("storage: delete %s: %w", path, err)
	}
	return nil
}

// Mkdir creates a single sub-directory under the vault root.
func (f *FS) Mkdir(path string) error {
	abs, err := f.safePath(path)
	if err != nil {
		return err
	}
	if err := os.Mkdir(abs, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("storage: mkdir %s: %w", path, apperr.ErrAlreadyExists)
		}
		return fmt.Errorf("storage: mkdir %s: %w", path, err)
	}
	return nil
}
