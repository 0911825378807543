package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/solo-margin/solo-tools/pkg/common"
	"github.com/solo-margin/solo-tools/pkg/rebalancer"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type networkClass struct {
	Dev     bool
	Mainnet bool
	Kovan   bool
	Docker  bool
}

func classify(name string) (networkClass, error) {
	var c networkClass
	var err error
	if c.Dev, err = common.IsDevNetwork(name); err != nil {
		return c, err
	}
	c.Mainnet, _ = common.IsMainNet(name)
	c.Kovan, _ = common.IsKovan(name)
	c.Docker, _ = common.IsDocker(name)
	return c, nil
}

func NetworkInfoAction(cCtx *cli.Context) error {
	name, n, err := loadNetwork(cCtx)
	if err != nil {
		return err
	}
	class, err := classify(name)
	if err != nil {
		return err
	}

	w := out(cCtx)
	fmt.Fprintf(w, "Network: %s\n", name)
	fmt.Fprintf(w, "  Dev network: %t\n", class.Dev)
	fmt.Fprintf(w, "  Mainnet: %t\n", class.Mainnet)
	fmt.Fprintf(w, "  Kovan: %t\n", class.Kovan)
	fmt.Fprintf(w, "  Docker: %t\n", class.Docker)

	chainID := n.ChainID
	if chainID == 0 {
		if chainID, err = common.ChainIDForNetwork(name); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "  Chain ID: %d\n", chainID)
	fmt.Fprintf(w, "  RPC URL: %s\n", n.RPCURL)

	if router, err := rebalancer.RouterForNetwork(name, n); err == nil {
		fmt.Fprintf(w, "  Router: %s\n", router.Address.Hex())
	} else {
		fmt.Fprintf(w, "  Router: none\n")
	}

	if len(n.Contracts) > 0 {
		fmt.Fprintln(w, "  Contracts:")
		for _, contract := range sortedKeys(n.Contracts) {
			fmt.Fprintf(w, "    %s: %s\n", contract, n.Contracts[contract])
		}
	}
	return nil
}

func NetworkListAction(cCtx *cli.Context) error {
	cfg, err := loadNetworksConfig(cCtx)
	if err != nil {
		return fmt.Errorf("failed to load networks config: %w", err)
	}

	title := cases.Title(language.English)
	w := out(cCtx)
	fmt.Fprintln(w, "Available Networks:")
	for _, name := range cfg.NetworkNames() {
		n := cfg.Networks[name]
		kind := "public"
		if dev, _ := common.IsDevNetwork(name); dev {
			kind = "dev"
		}
		display := title.String(strings.ReplaceAll(name, "_", " "))
		fmt.Fprintf(w, "  - %s (%s, chain %d, %s)\n", display, name, n.ChainID, kind)
	}
	return nil
}

func CheckRPCAction(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)

	name, n, err := loadNetwork(cCtx)
	if err != nil {
		return err
	}
	if n.RPCURL == "" {
		return fmt.Errorf("no rpc url configured for %s (set rpc_url or SOLO_RPC_URL)", name)
	}

	ctx, cancel := context.WithTimeout(cCtx.Context, cCtx.Duration("timeout"))
	defer cancel()

	client, err := ethclient.DialContext(ctx, n.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", n.RPCURL, err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain id from %s: %w", n.RPCURL, err)
	}
	block, err := client.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to get block number from %s: %w", n.RPCURL, err)
	}

	logger.Debug("%s answered chain id %s at block %d", n.RPCURL, chainID.String(), block)
	if n.ChainID != 0 && chainID.Int64() != n.ChainID {
		return fmt.Errorf("chain id mismatch for %s: config has %d, node reports %s", name, n.ChainID, chainID.String())
	}
	fmt.Fprintf(out(cCtx), "%s is reachable: chain %s, block %d\n", name, chainID.String(), block)
	return nil
}

func SetContractAction(cCtx *cli.Context) error {
	if err := requireArgs(cCtx, 2); err != nil {
		return err
	}
	logger := common.LoggerFromContext(cCtx.Context)
	name, address := cCtx.Args().Get(0), cCtx.Args().Get(1)
	if !ethcommon.IsHexAddress(address) {
		return fmt.Errorf("invalid address %q", address)
	}

	network := cCtx.String("network")
	path := cCtx.String("config")
	checksummed := ethcommon.HexToAddress(address).Hex()
	if err := common.SetContractAddresses(path, network, map[string]string{name: checksummed}); err != nil {
		return err
	}
	logger.Info("Set %s on %s to %s in %s", name, network, checksummed, path)
	return nil
}
