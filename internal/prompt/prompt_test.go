package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/parker/clife/internal/apperr"
	"github.com/parker/clife/internal/models"
	"github.com/parker/clife/internal/testutil"
)

func TestValidateProjectName(t *testing.T) {
	valid := []string{"test", "test_1", "my.project", ".HELLO.P_Arker_", "   hello   "}
	for _, name := range valid {
		if err := ValidateProjectName(name); err != nil {
			t.Errorf("ValidateProjectName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"hello parker", "&parker", "_hello_(", "", "   ", "\t\n"}
	for _, name := range invalid {
		if err := ValidateProjectName(name); err == nil {
			t.Errorf("ValidateProjectName(%q) = nil, want error", name)
		}
	}
}

func TestActionMapsSelections(t *testing.T) {
	cases := []struct {
		line string
		want models.Action
	}{
		{"c", models.ActionCreateNote},
		{"d", models.ActionDelete},
		{"p", models.ActionCreateProject},
		{"  c  ", models.ActionCreateNote},
	}
	for _, tc := range cases {
		p := New(testutil.Script(tc.line), &bytes.Buffer{})
		got, err := p.Action()
		if err != nil {
			t.Fatalf("Action(%q): %v", tc.line, err)
		}
		if got != tc.want {
			t.Errorf("Action(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestActionRejectsUntilValid(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(testutil.Script("x", "C", "delete", "d"), out)
	got, err := p.Action()
	if err != nil {
		t.Fatalf("Action: %v", err)
	}
	if got != models.ActionDelete {
		t.Errorf("Action = %v, want ActionDelete", got)
	}
	if n := strings.Count(out.String(), "What action would you like to take?"); n != 4 {
		t.Errorf("prompted %d times, want 4", n)
	}
}

func TestNoteRequiresExactMatch(t *testing.T) {
	notes := []models.Note{
		{FullPath: "/v/a/x.md", TruncPath: "a/x.md"},
		{FullPath: "/v/b/y.md", TruncPath: "b/y.md"},
	}
	out := &bytes.Buffer{}
	p := New(testutil.Script("x.md", "  b/y.md  "), out)
	got, err := p.Note(notes, "delete")
	if err != nil {
		t.Fatalf("Note: %v", err)
	}
	if got != "b/y.md" {
		t.Errorf("Note = %q, want b/y.md", got)
	}
	if !strings.Contains(out.String(), "- a/x.md") {
		t.Error("available notes were not echoed")
	}
	if !strings.Contains(out.String(), "What file would you like to delete?") {
		t.Error("verb missing from question")
	}
}

func TestConfirmDelete(t *testing.T) {
	p := New(testutil.Script("y"), &bytes.Buffer{})
	if err := p.ConfirmDelete("a.md"); err != nil {
		t.Errorf("confirm with y: %v", err)
	}

	out := &bytes.Buffer{}
	p = New(testutil.Script("n"), out)
	err := p.ConfirmDelete("a.md")
	if !errors.Is(err, apperr.ErrCancelled) {
		t.Errorf("confirm with n = %v, want ErrCancelled", err)
	}
	if !strings.Contains(out.String(), "Cancelling ...") {
		t.Error("cancellation message missing")
	}
}

func TestConfirmDeleteRejectsUntilValid(t *testing.T) {
	p := New(testutil.Script("Y", "yes", "maybe", "y"), &bytes.Buffer{})
	if err := p.ConfirmDelete("a.md"); err != nil {
		t.Errorf("ConfirmDelete: %v", err)
	}
}

func TestProjectNameLoopsWithDiagnostic(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(testutil.Script("hello parker", "&parker", "  my.project  "), out)
	got, err := p.ProjectName()
	if err != nil {
		t.Fatalf("ProjectName: %v", err)
	}
	if got != "my.project" {
		t.Errorf("ProjectName = %q, want my.project (trimmed)", got)
	}
	if n := strings.Count(out.String(), "May only use alphanumerics, '_', and '.'"); n != 2 {
		t.Errorf("diagnostic printed %d times, want 2", n)
	}
}

func TestPromptsSurfaceReadErrors(t *testing.T) {
	p := New(testutil.Script(), &bytes.Buffer{})
	if _, err := p.Action(); err == nil {
		t.Error("Action: expected error on exhausted input")
	}
	if _, err := p.ProjectName(); err == nil {
		t.Error("ProjectName: expected error on exhausted input")
	}
}
