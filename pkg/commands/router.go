package commands

import (
	"fmt"

	"github.com/solo-margin/solo-tools/pkg/common"
	"github.com/solo-margin/solo-tools/pkg/rebalancer"

	"github.com/urfave/cli/v2"
)

// RouterCommand looks up the rebalancer router of a network
var RouterCommand = &cli.Command{
	Name:  "router",
	Usage: "Rebalancer router lookup",
	Subcommands: []*cli.Command{
		{
			Name:   "show",
			Usage:  "Print the router, factory and pair init code hash of a network",
			Flags:  []cli.Flag{common.NetworkFlag, common.ConfigFlag},
			Action: RouterShowAction,
		},
		{
			Name:      "pair",
			Usage:     "Derive the pair address of two tokens",
			ArgsUsage: "<tokenA> <tokenB>",
			Flags:     []cli.Flag{common.NetworkFlag, common.ConfigFlag},
			Action:    RouterPairAction,
		},
	},
}

func RouterShowAction(cCtx *cli.Context) error {
	name, n, err := loadNetwork(cCtx)
	if err != nil {
		return err
	}
	router, err := rebalancer.RouterForNetwork(name, n)
	if err != nil {
		return err
	}

	w := out(cCtx)
	fmt.Fprintf(w, "Network: %s\n", router.Network)
	fmt.Fprintf(w, "  Router: %s\n", router.Address.Hex())
	fmt.Fprintf(w, "  Factory: %s\n", router.Factory.Hex())
	fmt.Fprintf(w, "  Init code hash: %s\n", router.InitCodeHash.Hex())
	return nil
}

func RouterPairAction(cCtx *cli.Context) error {
	if err := requireArgs(cCtx, 2); err != nil {
		return err
	}
	name, n, err := loadNetwork(cCtx)
	if err != nil {
		return err
	}
	router, err := rebalancer.RouterForNetwork(name, n)
	if err != nil {
		return err
	}

	tokenA, err := n.ResolveAddress(cCtx.Args().Get(0))
	if err != nil {
		return err
	}
	tokenB, err := n.ResolveAddress(cCtx.Args().Get(1))
	if err != nil {
		return err
	}
	if tokenA == tokenB {
		return fmt.Errorf("identical tokens %s", tokenA.Hex())
	}

	fmt.Fprintln(out(cCtx), router.PairAddress(tokenA, tokenB).Hex())
	return nil
}
