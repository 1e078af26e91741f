package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/m93a/mag-tc/pkg/types"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

type Config struct {
	MaxDepth int    `yaml:"max_depth"`
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		MaxDepth: types.DefaultConfig.MaxDepth,
		LogLevel: "info",
	}
}

func loadConfig(path string) (Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	return config, nil
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}

func (c Config) Checker() types.Config {
	return types.Config{MaxDepth: c.MaxDepth}
}

func newLogger(f *os.File, level slog.Level) *slog.Logger {
	return newLoggerFor(f, isTerminal(f), level)
}

func newLoggerFor(w io.Writer, terminal bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if terminal {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
