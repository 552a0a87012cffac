package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"melelink/internal/config"
	"melelink/internal/linkage"
	"melelink/internal/logging"
	"melelink/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) openStore() (*store.Store, *config.Config, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	st, err := store.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return st, cfg, nil
}

func (c *commandContext) logger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	return logger, nil
}

// withEngine opens the store, builds an engine from config, and runs fn,
// closing the store afterwards.
func (c *commandContext) withEngine(fn func(*linkage.Engine, *store.Store, *config.Config) error) error {
	st, cfg, err := c.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	logger, err := c.logger(cfg)
	if err != nil {
		return err
	}

	engine := linkage.New(st, linkage.NewPolicy(cfg), logger,
		linkage.PubYearBonus(cfg.Matching.PubYearBonus))
	return fn(engine, st, cfg)
}
