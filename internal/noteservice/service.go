// Package noteservice executes the actions a run can take on the vault.
package noteservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/parker/clife/internal/apperr"
	"github.com/parker/clife/internal/models"
	"github.com/parker/clife/internal/storage"
)

// Service coordinates vault operations for a single run.
type Service struct {
	store storage.Provider
}

// NewService creates a new note service.
func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

// Index enumerates every note currently under the vault root. Fresh on
// every call; nothing is cached between runs.
func (s *Service) Index(_ context.Context) ([]models.Note, error) {
	return s.store.List()
}

// CreateNote creates an empty Markdown note in the vault root. The
// name is new_note_<n>.md with n starting at startSuffix and stepping
// past any name already taken; creation is exclusive, so the returned
// note provably did not exist immediately before the call.
func (s *Service) CreateNote(_ context.Context, startSuffix int) (models.Note, error) {
	for n := startSuffix; ; n++ {
		name := fmt.Sprintf("new_note_%d.md", n)
		note, err := s.store.Create(name)
		if errors.Is(err, apperr.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return models.Note{}, err
		}
		return note, nil
	}
}

// DeleteNote removes the note at the given vault-relative path.
func (s *Service) DeleteNote(_ context.Context, truncPath string) error {
	return s.store.Delete(truncPath)
}

// CreateProject creates a sub-directory named name under the vault
// root. It fails with apperr.ErrAlreadyExists when an entry of that
// name is already present.
func (s *Service) CreateProject(_ context.Context, name string) error {
	return s.store.Mkdir(name)
}
