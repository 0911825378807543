package commands

import (
	"fmt"
	"strings"

	"github.com/solo-margin/solo-tools/pkg/codec"

	"github.com/urfave/cli/v2"
)

// CodecCommand exposes the byte/hash codec on the command line
var CodecCommand = &cli.Command{
	Name:  "codec",
	Usage: "Encode arguments and compute hashes the way the contracts do",
	Subcommands: []*cli.Command{
		{
			Name:      "hash-string",
			Usage:     "keccak256 of a UTF-8 string",
			ArgsUsage: "<string>",
			Action:    HashStringAction,
		},
		{
			Name:      "hash-bytes",
			Usage:     "keccak256 of hex encoded bytes",
			ArgsUsage: "<hex>",
			Action:    HashBytesAction,
		},
		{
			Name:      "encode",
			Usage:     "Encode scalar values as concatenated 32-byte words",
			ArgsUsage: "<value>...",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "packed",
					Usage: "Skip word padding",
				},
			},
			Action: EncodeAction,
		},
		{
			Name:      "address-word",
			Usage:     "Left-pad an address to a 32-byte word",
			ArgsUsage: "<address>",
			Action:    AddressWordAction,
		},
		{
			Name:      "addresses-equal",
			Usage:     "Compare two addresses ignoring case and 0x prefix",
			ArgsUsage: "<address> <address>",
			Action:    AddressesEqualAction,
		},
		{
			Name:      "normalize",
			Usage:     "Normalize hex to lowercase 0x form",
			ArgsUsage: "<hex>",
			Action:    NormalizeHexAction,
		},
	},
}

func requireArgs(cCtx *cli.Context, n int) error {
	if cCtx.NArg() != n {
		return fmt.Errorf("expected %d argument(s), got %d", n, cCtx.NArg())
	}
	return nil
}

func HashStringAction(cCtx *cli.Context) error {
	if err := requireArgs(cCtx, 1); err != nil {
		return err
	}
	fmt.Fprintln(out(cCtx), codec.HashString(cCtx.Args().First()))
	return nil
}

func HashBytesAction(cCtx *cli.Context) error {
	if err := requireArgs(cCtx, 1); err != nil {
		return err
	}
	h, err := codec.HashBytes(cCtx.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintln(out(cCtx), h)
	return nil
}

func EncodeAction(cCtx *cli.Context) error {
	args := cCtx.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("no values supplied")
	}

	values := make([]any, len(args))
	for i, a := range args {
		values[i] = parseCLIValue(a)
	}

	encode := codec.EncodeArgs
	if cCtx.Bool("packed") {
		encode = codec.EncodeArgsNoPadding
	}
	b, err := encode(values...)
	if err != nil {
		return err
	}
	fmt.Fprintln(out(cCtx), codec.BytesToHex(b))
	return nil
}

// parseCLIValue maps true/false to bools and leaves everything else as a literal
func parseCLIValue(s string) any {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

func AddressWordAction(cCtx *cli.Context) error {
	if err := requireArgs(cCtx, 1); err != nil {
		return err
	}
	fmt.Fprintln(out(cCtx), codec.AddressToWord(cCtx.Args().First()))
	return nil
}

func AddressesEqualAction(cCtx *cli.Context) error {
	if err := requireArgs(cCtx, 2); err != nil {
		return err
	}
	fmt.Fprintln(out(cCtx), codec.AddressesAreEqual(cCtx.Args().Get(0), cCtx.Args().Get(1)))
	return nil
}

func NormalizeHexAction(cCtx *cli.Context) error {
	if err := requireArgs(cCtx, 1); err != nil {
		return err
	}
	b, err := codec.HexToBytes(cCtx.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintln(out(cCtx), codec.BytesToHex(b))
	return nil
}
