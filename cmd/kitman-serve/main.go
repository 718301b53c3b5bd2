// Command kitman-serve runs the catalog-generation HTTP service, or opens
// an ad hoc SQL shell against its backing database.
package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/krabicezpapundeklu/kitman/internal/trace"
	"github.com/krabicezpapundeklu/kitman/internal/version"
)

type App struct {
	Globals
	Serve Serve `cmd:"serve" help:"start the kitman-serve HTTP server"`
	Shell Shell `cmd:"shell" help:"open an ad hoc SQL shell against the configured database"`
}

func main() {
	var app App
	ctx := kong.Parse(&app,
		kong.Name("kitman-serve"),
		kong.Description("Kitman - commit-graph catalog generation service"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version.GetVersionString(),
		},
	)

	if app.Verbose {
		trace.EnableDebugMode()
	}

	now := time.Now()
	err := ctx.Run(&app.Globals)
	if app.Verbose {
		trace.DbgPrint("time spent: %v", time.Since(now))
	}
	if err != nil {
		os.Exit(1)
	}
}
