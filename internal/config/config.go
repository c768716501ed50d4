package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/TheLazyLemur/beautify/internal/beautifier"
)

type Config struct {
	StylesDir   string
	LogLevel    slog.Level
	DefaultTool string
	Tools       map[string]beautifier.Settings
}

// Settings returns the configured settings for tool, or zero settings.
func (c *Config) Settings(tool string) beautifier.Settings {
	return c.Tools[tool]
}

// Load reads config from env map. For production use LoadFromEnv.
// Environment values override the file named by BEAUTIFY_CONFIG.
func Load(env map[string]string) (*Config, error) {
	cfg := &Config{
		LogLevel: slog.LevelInfo,
		Tools:    map[string]beautifier.Settings{},
	}

	if path := env["BEAUTIFY_CONFIG"]; path != "" {
		f, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if err := f.apply(cfg); err != nil {
			return nil, errors.Wrapf(err, "config file %s", path)
		}
	}

	if dir := env["BEAUTIFY_STYLES_DIR"]; dir != "" {
		cfg.StylesDir = dir
	}
	if cfg.StylesDir == "" {
		home := env["HOME"]
		if home == "" {
			return nil, errors.New("BEAUTIFY_STYLES_DIR or HOME required")
		}
		cfg.StylesDir = filepath.Join(home, ".beautify", "styles")
	}

	if lvl := env["BEAUTIFY_LOG_LEVEL"]; lvl != "" {
		level, err := parseLevel(lvl)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// LoadFromEnv loads config from os environment variables.
func LoadFromEnv() (*Config, error) {
	env := map[string]string{
		"BEAUTIFY_CONFIG":     os.Getenv("BEAUTIFY_CONFIG"),
		"BEAUTIFY_STYLES_DIR": os.Getenv("BEAUTIFY_STYLES_DIR"),
		"BEAUTIFY_LOG_LEVEL":  os.Getenv("BEAUTIFY_LOG_LEVEL"),
		"HOME":                os.Getenv("HOME"),
	}
	return Load(env)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errors.Errorf("invalid log level %q: must be debug, info, warn or error", s)
	}
	return level, nil
}
