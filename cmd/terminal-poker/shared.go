package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/ashxudev/terminal-poker/internal/config"
	"github.com/ashxudev/terminal-poker/poker"
)

const logFileName = "terminal-poker.log"

// Style definitions shared by the text-output commands
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// loadConfig resolves the config file from the --config flag or the default
// location. A missing file yields the built-in defaults.
func loadConfig(cli *CLI) (*config.Config, error) {
	path := cli.Config
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func logLevel(cfg *config.Config, debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	return cfg.LogLevel()
}

// stderrLogger is for the non-interactive commands.
func stderrLogger(cfg *config.Config, debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	logger.SetLevel(logLevel(cfg, debug))
	return logger
}

// fileLogger is for the TUI, which owns the terminal: log lines go to the
// configured file, or terminal-poker.log next to the stats file. The caller
// must invoke the returned closer.
func fileLogger(cfg *config.Config, debug bool) (*log.Logger, func(), error) {
	path := cfg.Log.File
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			// Nowhere to log; the session still runs.
			return log.New(io.Discard), func() {}, nil
		}
		path = filepath.Join(dir, "terminal-poker", logFileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	logger.SetLevel(logLevel(cfg, debug))
	return logger, func() { f.Close() }, nil
}

func formatCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
