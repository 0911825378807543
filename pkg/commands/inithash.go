package commands

import (
	"fmt"
	"path/filepath"

	"github.com/solo-margin/solo-tools/pkg/common"
	"github.com/solo-margin/solo-tools/pkg/inithash"

	"github.com/urfave/cli/v2"
)

var initHashFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "artifact",
		Usage: "Compiled artifact of the pair contract",
		Value: filepath.Join(common.BuildContractsDir, "UniswapV2Pair.json"),
	},
	&cli.StringFlag{
		Name:  "library",
		Usage: "Solidity library holding the hex'...' init code hash literal",
		Value: filepath.Join("contracts", "external", "uniswap-v2", "libraries", "UniswapV2Library.sol"),
	},
}

// InitHashCommand keeps the library's pair init code hash in sync with the compiled pair bytecode
var InitHashCommand = &cli.Command{
	Name:  "init-code-hash",
	Usage: "Check or fix the pair init code hash literal",
	Subcommands: []*cli.Command{
		{
			Name:   "verify",
			Usage:  "Fail if the literal does not match the compiled bytecode",
			Flags:  initHashFlags,
			Action: VerifyInitHashAction,
		},
		{
			Name:   "patch",
			Usage:  "Rewrite the literal to match the compiled bytecode",
			Flags:  initHashFlags,
			Action: PatchInitHashAction,
		},
	},
}

func VerifyInitHashAction(cCtx *cli.Context) error {
	res, err := inithash.Verify(cCtx.String("artifact"), cCtx.String("library"))
	if err != nil {
		return err
	}
	fmt.Fprintf(out(cCtx), "init code hash OK: %s\n", res.Actual.Hex())
	return nil
}

func PatchInitHashAction(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)

	res, err := inithash.Patch(cCtx.String("artifact"), cCtx.String("library"))
	if err != nil {
		return err
	}
	if !res.Patched {
		logger.Info("%s already has init code hash %s", cCtx.String("library"), res.Actual.Hex())
		return nil
	}
	logger.Info("Patched %s: %s -> %s", cCtx.String("library"), res.Expected.Hex(), res.Actual.Hex())
	fmt.Fprintf(out(cCtx), "init code hash patched: %s\n", res.Actual.Hex())
	return nil
}
