package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	EnvDB          = "GKTIMER_DB"
	EnvLegacyFile  = "GKTIMER_LEGACY_FILE"
	EnvTimezone    = "GKTIMER_TZ"
	EnvClock24h    = "GKTIMER_CLOCK_24H"
	EnvLogUseCases = "GKTIMER_LOG_USE_CASES"
)

// Config holds process-wide settings for the CLI.
type Config struct {
	DBPath     string
	LegacyFile string
	// Location decides where calendar days begin for today, report and export.
	Location    *time.Location
	Clock24h    bool
	LogUseCases bool
}

// DataDir is ~/.gktimer, or .gktimer in the working directory when the
// home directory cannot be resolved.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".gktimer"
	}
	return filepath.Join(home, ".gktimer")
}

// DefaultConfig returns the settings used when no environment overrides
// are present.
func DefaultConfig() Config {
	dir := DataDir()
	return Config{
		DBPath:     filepath.Join(dir, "gktimer.db"),
		LegacyFile: filepath.Join(dir, "work_sessions.json"),
		Location:   time.Local,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for unset or unparsable booleans. An unknown time zone is an
// error since it would silently shift every day boundary.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with an injectable environment lookup.
func LoadFrom(getenv func(string) string) (Config, error) {
	return applyEnv(DefaultConfig(), getenv)
}

// applyEnv overrides cfg with every set variable.
func applyEnv(cfg Config, getenv func(string) string) (Config, error) {
	if v := getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := getenv(EnvLegacyFile); v != "" {
		cfg.LegacyFile = v
	}
	if v := getenv(EnvTimezone); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: unknown time zone %q: %w", EnvTimezone, v, err)
		}
		cfg.Location = loc
	}
	if v := getenv(EnvClock24h); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Clock24h = b
		}
	}
	if v := getenv(EnvLogUseCases); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}

	return cfg, nil
}
