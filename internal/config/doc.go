// Package config loads, validates, and shares logship configuration.
//
// A Config is assembled once at process start: profile defaults
// (selected by LOGSHIP_PROFILE) overlaid with an optional TOML file.
// After construction it lives inside a Cell, the single mutable
// configuration holder shared by the root logger and every derived
// logger; runtime changes go through Cell.Update as partial Overrides
// and become visible to all holders immediately.
package config
