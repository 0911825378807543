package commands

import (
	"github.com/solo-margin/solo-tools/pkg/common/devnet"

	"github.com/urfave/cli/v2"
)

var rpcURLFlag = &cli.StringFlag{
	Name:    "rpc-url",
	Usage:   "RPC endpoint of the local dev chain",
	EnvVars: []string{"SOLO_RPC_URL"},
	Value:   devnet.GetRPCURL(devnet.DEFAULT_PORT),
}

// DevnetCommand controls a running local dev chain (ganache/anvil compatible)
var DevnetCommand = &cli.Command{
	Name:  "devnet",
	Usage: "Control a running local dev chain",
	Subcommands: []*cli.Command{
		{
			Name:   "snapshot",
			Usage:  "Take an evm snapshot and print its id",
			Flags:  []cli.Flag{rpcURLFlag},
			Action: SnapshotAction,
		},
		{
			Name:      "revert",
			Usage:     "Revert the chain to a snapshot",
			ArgsUsage: "<snapshot-id>",
			Flags:     []cli.Flag{rpcURLFlag},
			Action:    RevertAction,
		},
		{
			Name:  "mine",
			Usage: "Mine empty blocks",
			Flags: []cli.Flag{
				rpcURLFlag,
				&cli.Uint64Flag{
					Name:  "blocks",
					Usage: "Number of blocks to mine",
					Value: 1,
				},
			},
			Action: MineAction,
		},
		{
			Name:      "increase-time",
			Usage:     "Move the chain clock forward (seconds or a duration such as 36h)",
			ArgsUsage: "<seconds|duration>",
			Flags:     []cli.Flag{rpcURLFlag},
			Action:    IncreaseTimeAction,
		},
		{
			Name:   "timestamp",
			Usage:  "Print the latest block timestamp",
			Flags:  []cli.Flag{rpcURLFlag},
			Action: TimestampAction,
		},
		{
			Name:  "status",
			Usage: "Report whether a dev chain is listening on the port",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "port",
					Usage: "Port of the local dev chain",
					Value: devnet.DEFAULT_PORT,
				},
			},
			Action: StatusAction,
		},
	},
}
