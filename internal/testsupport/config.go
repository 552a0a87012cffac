// Package testsupport provides shared helpers for package tests: temp-dir
// configs and pre-opened stores with automatic cleanup.
package testsupport

import (
	"path/filepath"
	"testing"

	"melelink/internal/config"
)

// NewConfig returns a validated config rooted in a per-test temp directory.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}
