package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/solo-margin/solo-tools/pkg/common"
	"github.com/solo-margin/solo-tools/pkg/common/devnet"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/urfave/cli/v2"
)

// dialRPC connects to the dev chain's raw JSON-RPC endpoint
var dialRPC = func(ctx context.Context, url string) (devnet.RPCCaller, func(), error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

func withRPC(cCtx *cli.Context, fn func(client devnet.RPCCaller) error) error {
	url := cCtx.String("rpc-url")
	client, closeClient, err := dialRPC(cCtx.Context, url)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}
	defer closeClient()
	return fn(client)
}

func SnapshotAction(cCtx *cli.Context) error {
	return withRPC(cCtx, func(client devnet.RPCCaller) error {
		id, err := devnet.Snapshot(cCtx.Context, client)
		if err != nil {
			return err
		}
		fmt.Fprintln(out(cCtx), id)
		return nil
	})
}

func RevertAction(cCtx *cli.Context) error {
	if err := requireArgs(cCtx, 1); err != nil {
		return err
	}
	logger := common.LoggerFromContext(cCtx.Context)
	id := cCtx.Args().First()
	return withRPC(cCtx, func(client devnet.RPCCaller) error {
		if err := devnet.Revert(cCtx.Context, client, id); err != nil {
			return err
		}
		logger.Info("Reverted to snapshot %s", id)
		return nil
	})
}

func MineAction(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)
	blocks := cCtx.Uint64("blocks")
	return withRPC(cCtx, func(client devnet.RPCCaller) error {
		if err := devnet.MineBlocks(cCtx.Context, client, blocks); err != nil {
			return err
		}
		logger.Info("Mined %d blocks", blocks)
		return nil
	})
}

// parseSeconds accepts a whole number of seconds or a Go duration string
func parseSeconds(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected seconds or a duration", s)
	}
	return int64(d / time.Second), nil
}

func IncreaseTimeAction(cCtx *cli.Context) error {
	if err := requireArgs(cCtx, 1); err != nil {
		return err
	}
	seconds, err := parseSeconds(cCtx.Args().First())
	if err != nil {
		return err
	}
	return withRPC(cCtx, func(client devnet.RPCCaller) error {
		if err := devnet.IncreaseTime(cCtx.Context, client, seconds); err != nil {
			return err
		}
		ts, err := devnet.GetTimestamp(cCtx.Context, client)
		if err != nil {
			return err
		}
		fmt.Fprintln(out(cCtx), ts)
		return nil
	})
}

func TimestampAction(cCtx *cli.Context) error {
	return withRPC(cCtx, func(client devnet.RPCCaller) error {
		ts, err := devnet.GetTimestamp(cCtx.Context, client)
		if err != nil {
			return err
		}
		fmt.Fprintln(out(cCtx), ts)
		return nil
	})
}

func StatusAction(cCtx *cli.Context) error {
	port := cCtx.Int("port")
	if devnet.IsPortAvailable(port) {
		fmt.Fprintf(out(cCtx), "no dev chain listening on port %d\n", port)
		return nil
	}
	fmt.Fprintf(out(cCtx), "dev chain listening at %s\n", devnet.GetRPCURL(port))
	return nil
}
