package commands

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/solo-margin/solo-tools/pkg/artifacts"
	"github.com/solo-margin/solo-tools/pkg/common"

	"github.com/urfave/cli/v2"
)

// ArtifactsCommand re-exports compiled contract artifacts
var ArtifactsCommand = &cli.Command{
	Name:  "artifacts",
	Usage: "Work with compiled contract artifacts",
	Subcommands: []*cli.Command{
		{
			Name:  "export",
			Usage: "Bundle contract ABIs and deployed addresses into one JSON file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "dir",
					Usage: "Directory of compiled contract artifacts",
					Value: common.BuildContractsDir,
				},
				&cli.StringFlag{
					Name:  "out",
					Usage: "Output file",
					Value: filepath.Join("build", "artifacts.json"),
				},
				&cli.StringSliceFlag{
					Name:    "contract",
					Aliases: []string{"c"},
					Usage:   "Contract to export (repeatable, default all)",
				},
			},
			Action: ExportArtifactsAction,
		},
		{
			Name:  "sync",
			Usage: "Copy the deployed addresses of a network from the artifacts into the config file",
			Flags: []cli.Flag{
				common.NetworkFlag,
				common.ConfigFlag,
				&cli.StringFlag{
					Name:  "dir",
					Usage: "Directory of compiled contract artifacts",
					Value: common.BuildContractsDir,
				},
			},
			Action: SyncArtifactsAction,
		},
	},
}

func ExportArtifactsAction(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)

	bundle, err := artifacts.Export(cCtx.String("dir"), cCtx.String("out"), cCtx.StringSlice("contract"))
	if err != nil {
		return err
	}
	logger.Info("Exported %d contracts to %s", len(bundle), cCtx.String("out"))
	return nil
}

// SyncArtifactsAction writes the addresses the artifacts record for the
// network's chain id into the contracts section of the config
func SyncArtifactsAction(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)

	name, n, err := loadNetwork(cCtx)
	if err != nil {
		return err
	}
	chainID := n.ChainID
	if chainID == 0 {
		if chainID, err = common.ChainIDForNetwork(name); err != nil {
			return err
		}
	}

	all, err := artifacts.LoadDir(cCtx.String("dir"))
	if err != nil {
		return err
	}
	addresses := map[string]string{}
	for contract, a := range all {
		if addr, ok := a.AddressOn(strconv.FormatInt(chainID, 10)); ok {
			addresses[contract] = addr.Hex()
		}
	}
	if len(addresses) == 0 {
		return fmt.Errorf("no artifact in %s has an address for chain %d", cCtx.String("dir"), chainID)
	}

	if err := common.SetContractAddresses(cCtx.String("config"), name, addresses); err != nil {
		return err
	}
	logger.Info("Synced %d contract addresses for %s", len(addresses), name)
	return nil
}
