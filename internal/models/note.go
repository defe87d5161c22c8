// Package models defines the domain types for clife.
package models

import "path/filepath"

// Note represents a single file discovered under the vault root.
//
// TruncPath is the path relative to the root and serves as the
// user-facing identifier; FullPath is the absolute, resolvable
// location. FullPath is always the root joined with TruncPath.
type Note struct {
	FullPath  string
	TruncPath string
}

// NewNote builds a Note for a file at full, expressed relative to root.
func NewNote(root, trunc string) Note {
	return Note{
		FullPath:  filepath.Join(root, trunc),
		TruncPath: trunc,
	}
}

// Action is the closed set of things a single run can do.
type Action int

const (
	// ActionCreateNote creates a new empty Markdown note in the root.
	ActionCreateNote Action = iota
	// ActionDelete removes an existing note after confirmation.
	ActionDelete
	// ActionCreateProject creates a named sub-directory under the root.
	ActionCreateProject
)

// String returns the user-facing verb for the action.
func (a Action) String() string {
	switch a {
	case ActionCreateNote:
		return "create note"
	case ActionDelete:
		return "delete"
	case ActionCreateProject:
		return "create project"
	default:
		return "unknown"
	}
}
