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

// EnvProfile selects the baseline profile when no explicit profile is
// requested: "development" or "production".
const EnvProfile = "LOGSHIP_PROFILE"

// Console contains configuration for the synchronous console sink.
type Console struct {
	Enabled bool `toml:"enabled"`
}

// Storage contains configuration for the bounded durable local log.
type Storage struct {
	Enabled       bool   `toml:"enabled"`
	MaxStoredLogs int    `toml:"max_stored_logs"`
	DBPath        string `toml:"db_path"`
}

// Remote contains configuration for the batched remote uploader.
type Remote struct {
	Enabled        bool   `toml:"enabled"`
	Endpoint       string `toml:"endpoint"`
	MinLevel       string `toml:"min_level"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Config encapsulates all logging configuration. One Config value is
// loaded at process start; afterwards it lives inside a Cell shared by
// the root logger and every context-bound logger derived from it.
//
// Sections:
//   - top level: app identity, orchestrator threshold, entry enrichment
//   - console: developer-facing synchronous sink
//   - storage: bounded durable local history
//   - remote: batched delivery to the aggregation endpoint
type Config struct {
	AppName           string  `toml:"app_name"`
	MinLevel          string  `toml:"min_level"`
	IncludeDeviceInfo bool    `toml:"include_device_info"`
	IncludeTimestamp  bool    `toml:"include_timestamp"`
	Console           Console `toml:"console"`
	Storage           Storage `toml:"storage"`
	Remote            Remote  `toml:"remote"`
}

// DefaultConfigPath returns the absolute path to the default
// configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/logship/config.toml")
}

// Load locates, parses, and validates a configuration file, starting
// from the profile selected by LOGSHIP_PROFILE. The returned config has
// all path fields expanded and normalized. The second return value is
// the resolved path and the third reports whether a file was found.
func Load(path string) (*Config, string, bool, error) {
	cfg := DefaultForProfile(os.Getenv(EnvProfile))

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("logship.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading ~ against the current user's home
// directory and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			trimmed = home
		} else {
			trimmed = filepath.Join(home, trimmed[2:])
		}
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}
