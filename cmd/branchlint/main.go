package main

import (
	"os"

	"github.com/randalmurphal/branchlint/cli"
)

// Version information (set by build script)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	cli.SetVersionInfo(Version, Commit, BuildTime)
	os.Exit(cli.Execute())
}
