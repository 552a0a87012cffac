package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Matching contains the matching engine's thresholds, weights, and version
// stamp. All score values are on the 0-100 confidence scale; weights scale a
// 0-100 dimension similarity into its share of the total.
type Matching struct {
	HighThreshold            float64 `toml:"high_threshold"`
	MediumThreshold          float64 `toml:"medium_threshold"`
	LowThreshold             float64 `toml:"low_threshold"`
	MinRelevance             float64 `toml:"min_relevance"`
	TitleWeight              float64 `toml:"title_weight"`
	ComposerWeight           float64 `toml:"composer_weight"`
	PubYearBonus             float64 `toml:"pub_year_bonus"`
	ExactTitleThreshold      float64 `toml:"exact_title_threshold"`
	ComposerConfirmThreshold float64 `toml:"composer_confirm_threshold"`
	AlgorithmVersion         string  `toml:"algorithm_version"`
	AutoLink                 bool    `toml:"auto_link"`
}

// Config is the root configuration document.
type Config struct {
	Paths    Paths    `toml:"paths"`
	Logging  Logging  `toml:"logging"`
	Matching Matching `toml:"matching"`
}

// DefaultConfigPath returns the standard configuration file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "melelink", "config.toml"), nil
}

// Load reads configuration from path, falling back to the default location
// when path is empty. A missing file yields the repository defaults. The
// resolved path is returned alongside the config for diagnostics.
func Load(path string) (*Config, string, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, "", err
		}
		resolved = defaultPath
	}
	expanded, err := ExpandPath(resolved)
	if err != nil {
		return nil, "", err
	}

	cfg := Default()
	data, err := os.ReadFile(expanded)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, "", fmt.Errorf("read config %s: %w", expanded, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, "", fmt.Errorf("parse config %s: %w", expanded, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, expanded, nil
}

// WriteSample writes the annotated sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return trimmed, nil
}

// EnsureDirectories creates the data and log directories if needed.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DatabasePath returns the SQLite database location inside the data directory.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.DataDir, "melelink.db")
}

// LockPath returns the lock file guarding batch matching runs.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.DataDir, "melelink.lock")
}

// normalize expands user paths in place.
func (c *Config) normalize() error {
	dataDir, err := ExpandPath(c.Paths.DataDir)
	if err != nil {
		return err
	}
	logDir, err := ExpandPath(c.Paths.LogDir)
	if err != nil {
		return err
	}
	c.Paths.DataDir = dataDir
	c.Paths.LogDir = logDir
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Matching.AlgorithmVersion = strings.TrimSpace(c.Matching.AlgorithmVersion)
	return nil
}
