package config

import "strings"

const (
	defaultAppName        = "logship"
	defaultDBPath         = "~/.local/share/logship/logs.db"
	defaultMaxStoredLogs  = 200
	defaultRemoteTimeout  = 10
	defaultRemoteMinLevel = "warn"
)

// Default returns the development-profile configuration: verbose
// console output, a small local history, remote delivery off.
func Default() Config {
	return Config{
		AppName:           defaultAppName,
		MinLevel:          "debug",
		IncludeDeviceInfo: false,
		IncludeTimestamp:  true,
		Console: Console{
			Enabled: true,
		},
		Storage: Storage{
			Enabled:       true,
			MaxStoredLogs: defaultMaxStoredLogs,
			DBPath:        defaultDBPath,
		},
		Remote: Remote{
			Enabled:        false,
			MinLevel:       defaultRemoteMinLevel,
			RequestTimeout: defaultRemoteTimeout,
		},
	}
}

// Production returns the production-profile configuration: console
// quiet, device metadata attached, remote delivery enabled once an
// endpoint is configured.
func Production() Config {
	cfg := Default()
	cfg.MinLevel = "info"
	cfg.IncludeDeviceInfo = true
	cfg.Console.Enabled = false
	cfg.Storage.MaxStoredLogs = 500
	cfg.Remote.Enabled = true
	cfg.Remote.MinLevel = "warn"
	return cfg
}

// DefaultForProfile maps a profile name to its baseline configuration.
// Unknown or empty names fall back to the development profile.
func DefaultForProfile(profile string) Config {
	switch strings.ToLower(strings.TrimSpace(profile)) {
	case "production", "prod":
		return Production()
	default:
		return Default()
	}
}
