package main

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/TheLazyLemur/beautify/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	slog.Debug("config loaded", "stylesDir", cfg.StylesDir, "defaultTool", cfg.DefaultTool, "tools", len(cfg.Tools))

	return newRootCmd(cfg).Execute()
}
