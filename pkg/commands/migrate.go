package commands

import (
	"context"
	"fmt"

	"github.com/solo-margin/solo-tools/pkg/common"
	"github.com/solo-margin/solo-tools/pkg/hooks"
	"github.com/solo-margin/solo-tools/pkg/migration"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"
)

// MigrateCommand provisions a dev network
var MigrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Fund test accounts and seed tokens, prices and interest rates on a dev network",
	Flags: []cli.Flag{
		common.NetworkFlag,
		common.ConfigFlag,
		&cli.StringSliceFlag{
			Name:  "step",
			Usage: "Run only the named step (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "reset",
			Usage: "Forget completed steps so everything runs again",
		},
		&cli.StringFlag{
			Name:  "state-dir",
			Usage: "Directory holding per-network migration state",
			Value: common.MigrationsStateDir,
		},
	},
	Action: MigrateAction,
}

// dialBackend connects to the node a migration runs against
var dialBackend = func(ctx context.Context, url string) (migration.Backend, func(), error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

func MigrateAction(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)

	name, n, err := loadNetwork(cCtx)
	if err != nil {
		return err
	}
	runner := &migration.Runner{StatePath: migration.StatePath(cCtx.String("state-dir"), name)}

	if cCtx.Bool("reset") {
		if err := runner.Reset(); err != nil {
			return err
		}
		logger.Info("Cleared migration state for %s", name)
	}

	steps, err := migration.SelectSteps(cCtx.StringSlice("step"))
	if err != nil {
		return err
	}

	// refuse before dialing when nothing could run
	dev, err := common.IsDevNetwork(name)
	if err != nil {
		return err
	}
	if !dev {
		for _, s := range steps {
			if s.DevOnly {
				return fmt.Errorf("%w: %s on %s", migration.ErrNotDevNetwork, s.Name, name)
			}
		}
	}

	if n.RPCURL == "" {
		return fmt.Errorf("no rpc url configured for %s (set rpc_url or SOLO_RPC_URL)", name)
	}
	if n.DeployerPrivateKey == "" {
		return fmt.Errorf("no deployer key configured for %s (set deployer_private_key or SOLO_DEPLOYER_KEY)", name)
	}

	backend, closeBackend, err := dialBackend(cCtx.Context, n.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", n.RPCURL, err)
	}
	defer closeBackend()

	transactor, err := migration.NewTransactor(cCtx.Context, backend, n.DeployerPrivateKey, logger)
	if err != nil {
		return err
	}
	if n.ChainID != 0 && transactor.ChainID().Int64() != n.ChainID {
		return fmt.Errorf("chain id mismatch for %s: config has %d, node reports %s", name, n.ChainID, transactor.ChainID().String())
	}

	env := &migration.Env{
		Network:    name,
		Config:     n,
		Backend:    backend,
		Transactor: transactor,
		Logger:     logger,
	}
	report, err := runner.Run(cCtx.Context, env, steps)
	if report != nil {
		_ = hooks.Track(cCtx.Context, hooks.FormatCustomMetric(cCtx.Context, "steps_run"), map[string]interface{}{
			"network": name,
			"run_id":  report.RunID,
			"ran":     len(report.Ran),
			"skipped": len(report.Skipped),
		})
	}
	if err != nil {
		return err
	}

	logger.Info("Migration %s on %s: %d ran, %d skipped", report.RunID, name, len(report.Ran), len(report.Skipped))
	return nil
}
