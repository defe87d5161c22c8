// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/parker/clife/internal/editor"
	"github.com/parker/clife/internal/models"
	"github.com/parker/clife/internal/noteservice"
	"github.com/parker/clife/internal/prompt"
	"github.com/parker/clife/internal/storage"
)

// Run executes one interactive session: probe the vault root, index
// the notes, prompt for an action, execute it, return. A run performs
// exactly one action; cancellation surfaces as apperr.ErrCancelled.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	out := app.output
	if out == nil {
		out = os.Stdout
	}
	in := app.input
	if in == nil {
		term := prompt.NewTermReader()
		defer term.Close()
		in = term
	}

	// Diagnostics go to stderr so the prompt dialogue on stdout stays
	// clean.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		slog.String("vault_path", cfg.Vault.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	fmt.Fprintln(out, "Welcome to clife!")

	exists, err := storage.Exists(cfg.Vault.Path)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintf(out, "No clife folder detected at %s\n", cfg.Vault.Path)
		if err := storage.Ensure(cfg.Vault.Path); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s directory created!\n", cfg.Vault.Path)
	}

	store, err := storage.NewFS(cfg.Vault.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	svc := noteservice.NewService(store)

	notes, err := svc.Index(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Found %d notes\n", len(notes))

	prompter := prompt.New(in, out)

	action, err := prompter.Action()
	if err != nil {
		return err
	}

	switch action {
	case models.ActionCreateNote:
		return runCreateNote(ctx, cfg, svc, out, logger, len(notes)+1)
	case models.ActionDelete:
		return runDelete(ctx, svc, prompter, out, notes)
	case models.ActionCreateProject:
		return runCreateProject(ctx, svc, prompter, out)
	default:
		return fmt.Errorf("unknown action %d", action)
	}
}

func runCreateNote(ctx context.Context, cfg *Config, svc *noteservice.Service, out io.Writer, logger *slog.Logger, startSuffix int) error {
	note, err := svc.CreateNote(ctx, startSuffix)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "New note created: %s\n", note.TruncPath)

	name, err := editor.Resolve(cfg.Editor.Command)
	if err != nil {
		logger.Warn("no editor available, leaving note untouched",
			slog.String("note", note.TruncPath),
			slog.String("error", err.Error()))
		return nil
	}
	code, err := editor.Run(ctx, name, note.FullPath)
	if err != nil {
		return err
	}
	logger.Debug("editor exited",
		slog.String("editor", name),
		slog.Int("status", code))
	return nil
}

func runDelete(ctx context.Context, svc *noteservice.Service, prompter *prompt.Prompter, out io.Writer, notes []models.Note) error {
	truncPath, err := prompter.Note(notes, models.ActionDelete.String())
	if err != nil {
		return err
	}
	if err := prompter.ConfirmDelete(truncPath); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleting note %s ...\n", truncPath)
	if err := svc.DeleteNote(ctx, truncPath); err != nil {
		return err
	}
	fmt.Fprintln(out, "File successfully deleted")
	return nil
}

func runCreateProject(ctx context.Context, svc *noteservice.Service, prompter *prompt.Prompter, out io.Writer) error {
	name, err := prompter.ProjectName()
	if err != nil {
		return err
	}
	if err := svc.CreateProject(ctx, name); err != nil {
		return err
	}
	fmt.Fprintf(out, "Project %s created\n", name)
	return nil
}
