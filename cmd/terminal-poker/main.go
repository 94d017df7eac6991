package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Config  string           `kong:"help='Config file (default ~/.config/terminal-poker/config.hcl)',type='path',placeholder='PATH'"`
	Debug   bool             `kong:"help='Enable debug logging'"`
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Play     PlayCmd     `cmd:"" default:"1" help:"Play heads-up against the bot"`
	Simulate SimulateCmd `cmd:"" help:"Run a bot-vs-bot simulation"`
	Stats    StatsCmd    `cmd:"" help:"Show lifetime statistics"`
	Odds     OddsCmd     `cmd:"" help:"Estimate equity for a hand"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("terminal-poker"),
		kong.Description("Heads-up no-limit hold'em trainer for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.DefaultEnvars("TERMINAL_POKER"),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
