package config

// Overrides carries a partial configuration update. Nil fields are
// left untouched; non-nil fields replace the current value (shallow
// merge). Applied through Cell.Update so every logger sharing the cell
// observes the change immediately.
type Overrides struct {
	AppName             *string
	MinLevel            *string
	EnableConsole       *bool
	EnableLocalStorage  *bool
	MaxStoredLogs       *int
	EnableRemoteLogging *bool
	RemoteEndpoint      *string
	RemoteMinLevel      *string
	IncludeDeviceInfo   *bool
	IncludeTimestamp    *bool
}

func (c *Config) apply(o Overrides) {
	if o.AppName != nil {
		c.AppName = *o.AppName
	}
	if o.MinLevel != nil {
		c.MinLevel = *o.MinLevel
	}
	if o.EnableConsole != nil {
		c.Console.Enabled = *o.EnableConsole
	}
	if o.EnableLocalStorage != nil {
		c.Storage.Enabled = *o.EnableLocalStorage
	}
	if o.MaxStoredLogs != nil {
		c.Storage.MaxStoredLogs = *o.MaxStoredLogs
	}
	if o.EnableRemoteLogging != nil {
		c.Remote.Enabled = *o.EnableRemoteLogging
	}
	if o.RemoteEndpoint != nil {
		c.Remote.Endpoint = *o.RemoteEndpoint
	}
	if o.RemoteMinLevel != nil {
		c.Remote.MinLevel = *o.RemoteMinLevel
	}
	if o.IncludeDeviceInfo != nil {
		c.IncludeDeviceInfo = *o.IncludeDeviceInfo
	}
	if o.IncludeTimestamp != nil {
		c.IncludeTimestamp = *o.IncludeTimestamp
	}
}

// Helpers for building Overrides literals.

func String(v string) *string { return &v }

func Bool(v bool) *bool { return &v }

func Int(v int) *int { return &v }
