package internal

import (
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Vault  VaultConfig       `yaml:"vault"`
	Editor EditorConfig      `yaml:"editor"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Vault.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return nil
}

// VaultConfig holds the path to the vault root directory, the single
// location under which all notes and projects live.
type VaultConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the vault configuration.
func (c *VaultConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// EditorConfig selects the text editor opened on freshly created
// notes. An empty command falls back to $EDITOR, then vi, then nano;
// the run still succeeds when nothing resolves.
type EditorConfig struct {
	Command string `yaml:"command"`
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Vault: VaultConfig{
			Path: filepath.Join(home, ".clife"),
		},
	}
}
