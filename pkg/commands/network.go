package commands

import (
	"github.com/solo-margin/solo-tools/pkg/common"

	"github.com/urfave/cli/v2"
)

// NetworkCommand inspects the configured networks
var NetworkCommand = &cli.Command{
	Name:  "network",
	Usage: "Inspect configured networks",
	Subcommands: []*cli.Command{
		{
			Name:   "info",
			Usage:  "Show how a network is classified and configured",
			Flags:  []cli.Flag{common.NetworkFlag, common.ConfigFlag},
			Action: NetworkInfoAction,
		},
		{
			Name:   "list",
			Usage:  "List the networks in the config file",
			Flags:  []cli.Flag{common.ConfigFlag},
			Action: NetworkListAction,
		},
		{
			Name:  "check-rpc",
			Usage: "Dial the network's RPC and compare its chain id with the config",
			Flags: []cli.Flag{
				common.NetworkFlag,
				common.ConfigFlag,
				&cli.DurationFlag{
					Name:  "timeout",
					Usage: "Dial and query timeout",
					Value: common.Duration(10 * common.OneSecond),
				},
			},
			Action: CheckRPCAction,
		},
		{
			Name:      "set-contract",
			Usage:     "Record a contract address for a network in the config file",
			ArgsUsage: "<name> <address>",
			Flags:     []cli.Flag{common.NetworkFlag, common.ConfigFlag},
			Action:    SetContractAction,
		},
	},
}
