package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheLazyLemur/beautify/internal/beautifier"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "beautify.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(map[string]string{"HOME": "/home/user"})
	require.NoError(t, err)

	assert.Equal(t, "/home/user/.beautify/styles", cfg.StylesDir)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.DefaultTool)
	assert.Empty(t, cfg.Tools)
	assert.Equal(t, beautifier.Settings{}, cfg.Settings("astyle"))
}

func TestLoad_RequiresStylesDirOrHome(t *testing.T) {
	_, err := Load(map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BEAUTIFY_STYLES_DIR or HOME required")
}

func TestLoad_EnvOverrides(t *testing.T) {
	cfg, err := Load(map[string]string{
		"HOME":                "/home/user",
		"BEAUTIFY_STYLES_DIR": "/srv/styles",
		"BEAUTIFY_LOG_LEVEL":  "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "/srv/styles", cfg.StylesDir)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	_, err := Load(map[string]string{"HOME": "/h", "BEAUTIFY_LOG_LEVEL": "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
styles_dir: /etc/beautify/styles
log_level: warn
default_tool: astyle
tools:
  astyle:
    executable: /usr/local/bin/astyle
    style: allman
    pipe: true
    options: ["-s4", "--pad-oper"]
  uncrustify:
    config: /etc/uncrustify.cfg
`)

	cfg, err := Load(map[string]string{"BEAUTIFY_CONFIG": path})
	require.NoError(t, err)

	assert.Equal(t, "/etc/beautify/styles", cfg.StylesDir)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "astyle", cfg.DefaultTool)
	assert.Equal(t, beautifier.Settings{
		Executable: "/usr/local/bin/astyle",
		Style:      "allman",
		Pipe:       true,
		Options:    []string{"-s4", "--pad-oper"},
	}, cfg.Settings("astyle"))
	assert.Equal(t, "/etc/uncrustify.cfg", cfg.Settings("uncrustify").Config)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := writeConfig(t, "styles_dir: /from/file\nlog_level: error\n")

	cfg, err := Load(map[string]string{
		"BEAUTIFY_CONFIG":     path,
		"BEAUTIFY_STYLES_DIR": "/from/env",
		"BEAUTIFY_LOG_LEVEL":  "info",
	})
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.StylesDir)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_FileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(map[string]string{"BEAUTIFY_CONFIG": "/nonexistent/beautify.yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening config file")
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeConfig(t, "tools:\n  astyle:\n    executabel: astyle\n")
		_, err := Load(map[string]string{"BEAUTIFY_CONFIG": path, "HOME": "/h"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config file")
	})

	t.Run("bad level in file", func(t *testing.T) {
		path := writeConfig(t, "log_level: chatty\n")
		_, err := Load(map[string]string{"BEAUTIFY_CONFIG": path, "HOME": "/h"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeConfig(t, "")
		cfg, err := Load(map[string]string{"BEAUTIFY_CONFIG": path, "HOME": "/h"})
		require.NoError(t, err)
		assert.Equal(t, "/h/.beautify/styles", cfg.StylesDir)
	})
}
