package config

import "strings"

// normalize trims and canonicalizes fields before validation. Path
// expansion happens here so callers always see absolute paths.
func (c *Config) normalize() error {
	c.AppName = strings.TrimSpace(c.AppName)
	c.MinLevel = strings.ToLower(strings.TrimSpace(c.MinLevel))
	c.Remote.MinLevel = strings.ToLower(strings.TrimSpace(c.Remote.MinLevel))
	c.Remote.Endpoint = strings.TrimSpace(c.Remote.Endpoint)

	if c.MinLevel == "" {
		c.MinLevel = "info"
	}
	if c.Remote.MinLevel == "" {
		c.Remote.MinLevel = defaultRemoteMinLevel
	}
	if c.Remote.RequestTimeout == 0 {
		c.Remote.RequestTimeout = defaultRemoteTimeout
	}

	if path := strings.TrimSpace(c.Storage.DBPath); path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return err
		}
		c.Storage.DBPath = expanded
	}
	return nil
}
