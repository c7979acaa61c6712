package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"muster/internal/config"
	"muster/internal/logging"
	"muster/internal/runstore"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
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
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// applyExportsDir points the config at a caller-supplied exports directory.
// Commands that scan exports accept it as an optional positional argument.
func applyExportsDir(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return nil
	}
	dir, err := config.ExpandPath(args[0])
	if err != nil {
		return fmt.Errorf("resolve exports directory: %w", err)
	}
	cfg.Paths.ExportsDir = dir
	return nil
}

// withStore opens the run store for the duration of fn, releasing the
// advisory lock on return.
func (c *commandContext) withStore(fn func(*runstore.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := runstore.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
