package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Verbose bool             `help:"Enable debug logging"`
	Config  string           `help:"HCL configuration file" default:"holdem-equity.hcl" type:"path"`

	Go    GoCmd    `cmd:"" help:"Simulate a spot and print per-player equity"`
	Bench BenchCmd `cmd:"" help:"Run the reference benchmark suite"`
	Repl  ReplCmd  `cmd:"" help:"Interactive prompt"`
	Serve ServeCmd `cmd:"" help:"Serve equity calculations over WebSocket"`
}

// Context carries the pieces every command needs.
type Context struct {
	Logger     *log.Logger
	ConfigPath string
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-equity"),
		kong.Description("Monte Carlo equity calculator for Texas Hold'em"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	err := ctx.Run(&Context{Logger: logger, ConfigPath: cli.Config})
	ctx.FatalIfErrorf(err)
}
