package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play one hand interactively in the terminal"`
	Deal     DealCmd          `cmd:"" help:"Deal one automated hand and print the action"`
	Simulate SimulateCmd      `cmd:"" help:"Deal many automated hands and report statistics"`
	Variants VariantsCmd      `cmd:"" help:"List the built-in variants and check config files"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("felt"),
		kong.Description("Deal, play and analyse poker hands across variants"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
