// Command apiserver runs the HTTP/WebSocket adapter: it loads the
// runtime config and the calibration seed manifest, then serves the
// /game/* endpoints until terminated.
package main

import (
	"github.com/alecthomas/kong"
)

var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Serve   ServeCmd         `cmd:"" help:"Serve the game HTTP/WebSocket API"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("apiserver"),
		kong.Description("Runtime HTTP/WebSocket API for pokercore"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
