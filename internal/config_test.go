package internal

import (
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Vault.Path == "" {
		t.Error("default vault path is empty")
	}
}

func TestVaultPathRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Vault.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty vault path should fail validation")
	}
}

func TestEditorCommandOptional(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Editor.Command = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty editor command should pass: %v", err)
	}
}
