package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateMatching() error {
	m := c.Matching
	for name, value := range map[string]float64{
		"matching.high_threshold":             m.HighThreshold,
		"matching.medium_threshold":           m.MediumThreshold,
		"matching.low_threshold":              m.LowThreshold,
		"matching.min_relevance":              m.MinRelevance,
		"matching.exact_title_threshold":      m.ExactTitleThreshold,
		"matching.composer_confirm_threshold": m.ComposerConfirmThreshold,
	} {
		if value < 0 || value > 100 {
			return fmt.Errorf("%s must be between 0 and 100", name)
		}
	}
	if m.LowThreshold > m.MediumThreshold || m.MediumThreshold > m.HighThreshold {
		return errors.New("matching thresholds must satisfy low <= medium <= high")
	}
	for name, value := range map[string]float64{
		"matching.title_weight":    m.TitleWeight,
		"matching.composer_weight": m.ComposerWeight,
	} {
		if value < 0 || value > 1 {
			return fmt.Errorf("%s must be between 0 and 1", name)
		}
	}
	if m.PubYearBonus < 0 || m.PubYearBonus > 100 {
		return errors.New("matching.pub_year_bonus must be between 0 and 100")
	}
	if m.AlgorithmVersion == "" {
		return errors.New("matching.algorithm_version must be set")
	}
	return nil
}
