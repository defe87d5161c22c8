// Package storage defines the vault file-system abstraction.
package storage

import "github.com/parker/clife/internal/models"

// Provider is the interface for vault file operations. All paths are
// relative to the vault root.
type Provider interface {
	// Root returns the absolute path of the vault root.
	Root() string
	// List returns a Note for every file anywhere under the root.
	List() ([]models.Note, error)
	// Create makes a new empty file at path. It fails with
	// apperr.ErrAlreadyExists if an entry is already there.
	Create(path string) (models.Note, error)
	// Delete removes the file at path.
	Delete(path string) error
	// Mkdir creates a single sub-directory at path. It fails with
	// apperr.ErrAlreadyExists if an entry is already there.
	Mkdir(path string) error
}
