package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
	"none":  {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLevels(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateRemote(); err != nil {
		return err
	}
	if strings.TrimSpace(c.AppName) == "" {
		return errors.New("app_name must be set")
	}
	return nil
}

func (c *Config) validateLevels() error {
	if _, ok := validLevels[c.MinLevel]; !ok {
		return fmt.Errorf("min_level: unsupported value %q (expected debug|info|warn|error|none)", c.MinLevel)
	}
	if _, ok := validLevels[c.Remote.MinLevel]; !ok {
		return fmt.Errorf("remote.min_level: unsupported value %q (expected debug|info|warn|error|none)", c.Remote.MinLevel)
	}
	return nil
}

func (c *Config) validateStorage() error {
	if c.Storage.MaxStoredLogs < 0 {
		return errors.New("storage.max_stored_logs must be non-negative")
	}
	if c.Storage.Enabled && strings.TrimSpace(c.Storage.DBPath) == "" {
		return errors.New("storage.db_path must be set when storage is enabled")
	}
	return nil
}

func (c *Config) validateRemote() error {
	if c.Remote.RequestTimeout < 0 {
		return errors.New("remote.request_timeout must be non-negative")
	}
	if c.Remote.Enabled && strings.TrimSpace(c.Remote.Endpoint) != "" {
		if !strings.HasPrefix(c.Remote.Endpoint, "http://") && !strings.HasPrefix(c.Remote.Endpoint, "https://") {
			return fmt.Errorf("remote.endpoint: %q is not an http(s) URL", c.Remote.Endpoint)
		}
	}
	return nil
}
