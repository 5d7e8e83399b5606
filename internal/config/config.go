package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Environment variables read by FromEnv.
const (
	EnvAssetsDir = "MEX_ASSETS_DIR"
	EnvLogLevel  = "MEX_LOG_LEVEL"
	EnvLogFormat = "MEX_LOG_FORMAT"
	EnvDebug     = "MEX_DEBUG"
)

// Settings holds the command configuration.
type Settings struct {
	// AssetsDir contains mappings/__schema__ and mappings/__template__.
	AssetsDir string
	LogLevel  string
	LogFormat string
	Debug     bool
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		AssetsDir: "assets",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// EffectiveLogLevel returns "debug" when Debug is set and LogLevel otherwise.
func (s Settings) EffectiveLogLevel() string {
	if s.Debug {
		return "debug"
	}

	return s.LogLevel
}

// Load reads the .env file at dotenvPath (a missing file is ignored) and
// returns the defaults overlaid with the environment.
func Load(dotenvPath string) (Settings, error) {
	err := LoadDotEnv(dotenvPath)
	if err != nil {
		return Settings{}, err
	}

	return FromEnv(os.LookupEnv)
}

// LoadDotEnv copies the variables of a .env file into the process
// environment without overriding variables that are already set.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

// FromEnv overlays the variables found through lookup on the defaults.
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	s := Defaults()

	if v, ok := lookup(EnvAssetsDir); ok && v != "" {
		s.AssetsDir = v
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		s.LogLevel = v
	}

	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		s.LogFormat = v
	}

	if v, ok := lookup(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s value %q: %w", EnvDebug, v, err)
		}

		s.Debug = debug
	}

	return s, nil
}

// BindFlags registers the shared flags on flags. The current values of s are
// the flag defaults and parsing writes back into s.
func (s *Settings) BindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&s.AssetsDir, "assets-dir", s.AssetsDir, "directory holding mappings/__schema__ and mappings/__template__")
	flags.StringVar(&s.LogLevel, "log-level", s.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&s.LogFormat, "log-format", s.LogFormat, "log format (text, json)")
	flags.BoolVar(&s.Debug, "debug", s.Debug, "log at debug level and dump generated templates")
}
