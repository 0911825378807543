package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// Version and Commit are set at build time with -ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

var VersionCommand = &cli.Command{
	Name:  "version",
	Usage: "Print the version",
	Action: func(cCtx *cli.Context) error {
		fmt.Fprintf(out(cCtx), "solo %s (%s)\n", Version, Commit)
		return nil
	},
}
