// Package config loads the optional HCL config file. Settings resolve in
// three layers: command line flags override the file, the file overrides the
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const configFileName = "config.hcl"

// Built-in defaults, used for every setting the file leaves out.
const (
	DefaultStartingStackBB = 100
	DefaultAggression      = 0.5
	DefaultBotName         = "Villain"
	DefaultLogLevel        = "info"
)

// Config is the decoded config file. All blocks are optional.
type Config struct {
	Game *GameConfig `hcl:"game,block"`
	Bot  *BotConfig  `hcl:"bot,block"`
	Log  *LogConfig  `hcl:"log,block"`
}

// GameConfig sets up the table.
type GameConfig struct {
	StartingStackBB int `hcl:"starting_stack_bb,optional"`
}

// BotConfig sets up the opponent. Aggression is a pointer so an explicit
// zero survives default filling.
type BotConfig struct {
	Name       string   `hcl:"name,optional"`
	Aggression *float64 `hcl:"aggression,optional"`
}

// LogConfig sets up logging. An empty file means the per-command default
// destination.
type LogConfig struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// ConfigError reports a setting the program cannot run with. It is fatal at
// startup.
type ConfigError struct {
	Setting string
	Problem string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Setting, e.Problem)
}

// DefaultPath returns the config file location under the user's config
// directory, e.g. ~/.config/terminal-poker/config.hcl on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "terminal-poker", configFileName), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the config file at path. A missing file is not an error; it
// yields the defaults. Parse and decode failures are errors, a config the
// user wrote should never be silently ignored.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", path, diags.Error())
	}

	var config Config
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %s", path, diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills every absent block and setting.
func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameConfig{}
	}
	if c.Game.StartingStackBB == 0 {
		c.Game.StartingStackBB = DefaultStartingStackBB
	}

	if c.Bot == nil {
		c.Bot = &BotConfig{}
	}
	if c.Bot.Name == "" {
		c.Bot.Name = DefaultBotName
	}
	if c.Bot.Aggression == nil {
		aggression := DefaultAggression
		c.Bot.Aggression = &aggression
	}

	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if c.Game.StartingStackBB <= 0 {
		return &ConfigError{
			Setting: "game.starting_stack_bb",
			Problem: fmt.Sprintf("must be positive, got %d", c.Game.StartingStackBB),
		}
	}
	if a := *c.Bot.Aggression; a < 0 || a > 1 {
		return &ConfigError{
			Setting: "bot.aggression",
			Problem: fmt.Sprintf("must be between 0 and 1, got %g", a),
		}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return &ConfigError{
			Setting: "log.level",
			Problem: fmt.Sprintf("unknown level %q", c.Log.Level),
		}
	}
	return nil
}

// BotAggression returns the resolved aggression setting.
func (c *Config) BotAggression() float64 {
	return *c.Bot.Aggression
}

// LogLevel returns the parsed log level. Call Validate first; an invalid
// level falls back to info here.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
