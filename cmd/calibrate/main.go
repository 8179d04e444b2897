// Command calibrate runs the offline calibration pipeline: it buckets
// a seed batch into difficulty tiers, refines the boundary between
// tiers with ordered-deck rollouts, gates every seed with a
// order-unknown trace, and writes the resulting artifacts under
// artifacts/pipeline/<run_id>/.
package main

import (
	"github.com/alecthomas/kong"
)

var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Run     RunCmd           `cmd:"" help:"Run the calibration pipeline over a seed batch"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("calibrate"),
		kong.Description("Offline seed calibration pipeline for pokercore"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
