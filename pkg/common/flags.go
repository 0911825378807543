package common

import "github.com/urfave/cli/v2"

// GlobalFlags defines flags that apply to the entire application (global flags).
var GlobalFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Enable verbose logging",
	},
	&cli.BoolFlag{
		Name:  "plain",
		Usage: "Print plain log lines instead of structured output",
	},
	&cli.BoolFlag{
		Name:    "telemetry",
		Usage:   "Log command metrics at debug level",
		EnvVars: []string{"SOLO_TELEMETRY"},
	},
}

// NetworkFlag selects the network (truffle-style name such as development, docker, kovan, mainnet)
var NetworkFlag = &cli.StringFlag{
	Name:    "network",
	Aliases: []string{"n"},
	Usage:   "Network name to operate on",
	EnvVars: []string{"SOLO_NETWORK"},
	Value:   "development",
}

// ConfigFlag points at the networks config file (.yaml or .toml)
var ConfigFlag = &cli.StringFlag{
	Name:    "config",
	Usage:   "Path to the networks config file",
	EnvVars: []string{"SOLO_CONFIG"},
	Value:   DefaultNetworksConfigPath,
}
