package main

import (
	"fmt"
	"strings"
	"sync"

	"logship/internal/config"
	"logship/internal/kv"
	"logship/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
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
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withStore opens the durable store for read-side commands and closes
// the backing database when fn returns.
func (c *commandContext) withStore(fn func(*logging.DurableStore) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	backing, err := kv.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("open log store: %w", err)
	}
	defer backing.Close()

	store := logging.NewDurableStore(config.NewCell(*cfg), backing, nil)
	return fn(store)
}

// withLogger builds the full logger for commands that emit entries.
func (c *commandContext) withLogger(fn func(*logging.Logger) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	var opts []logging.Option
	if cfg.Storage.Enabled {
		backing, err := kv.Open(cfg.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("open log store: %w", err)
		}
		defer backing.Close()
		opts = append(opts, logging.WithKVStore(backing))
	}

	logger := logging.New(config.NewCell(*cfg), opts...)
	defer logger.Close()
	return fn(logger)
}
