package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/micromouse/sim"
)

// Environment variable names read by LoadSettings.
const (
	EnvMaxTicks  = "MICROMOUSE_MAX_TICKS"
	EnvLogLevel  = "MICROMOUSE_LOG_LEVEL"
	EnvLogFormat = "MICROMOUSE_LOG_FORMAT"
	EnvBoardsDir = "MICROMOUSE_BOARDS_DIR"
	EnvSeed      = "MICROMOUSE_SEED"
)

// ErrBadSetting indicates an environment value that cannot be used.
var ErrBadSetting = errors.New("config: invalid setting")

// Settings are process-wide defaults.
type Settings struct {
	MaxTicks  int    // Replay budget when a run does not set max_ticks
	LogLevel  string // debug, info, warn or error
	LogFormat string // text or json
	BoardsDir string // Base for relative board paths
	Seed      int64  // Default seed
}

// DefaultSettings returns the values used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		MaxTicks:  sim.DefaultMaxTicks,
		LogLevel:  "info",
		LogFormat: "text",
		BoardsDir: ".",
	}
}

// LoadSettings reads the given .env files (".env" when none are named) into the
// process environment without overriding variables that are already set, then
// builds Settings from MICROMOUSE_* variables. Missing files are not an error.
func LoadSettings(files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("config: load env files: %w", err)
	}
	return settingsFrom(os.LookupEnv)
}

func settingsFrom(lookup func(string) (string, bool)) (Settings, error) {
	s := DefaultSettings()
	var err error

	if v, ok := lookup(EnvMaxTicks); ok {
		if s.MaxTicks, err = strconv.Atoi(v); err != nil || s.MaxTicks <= 0 {
			return Settings{}, fmt.Errorf("%w: %s=%q must be a positive integer", ErrBadSetting, EnvMaxTicks, v)
		}
	}
	if v, ok := lookup(EnvSeed); ok {
		if s.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Settings{}, fmt.Errorf("%w: %s=%q must be an integer", ErrBadSetting, EnvSeed, v)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		s.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok {
		s.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup(EnvBoardsDir); ok && v != "" {
		s.BoardsDir = v
	}
	return s, s.Validate()
}

// Validate checks the enumerated fields.
func (s Settings) Validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q must be 'debug', 'info', 'warn', or 'error'", ErrBadSetting, s.LogLevel)
	}
	if s.LogFormat != "text" && s.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q must be 'text' or 'json'", ErrBadSetting, s.LogFormat)
	}
	if s.MaxTicks <= 0 {
		return fmt.Errorf("%w: max ticks %d must be positive", ErrBadSetting, s.MaxTicks)
	}
	return nil
}
