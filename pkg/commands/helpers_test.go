package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/solo-margin/solo-tools/pkg/common"
	"github.com/solo-margin/solo-tools/pkg/common/logger"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const testNetworksYaml = `version: 0.1.0
networks:
  development:
    chain_id: 1337
    rpc_url: %RPC%
    deployer_private_key: "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
    router:
      address: "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"
      factory: "0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f"
      init_code_hash: "0x96e8ac4277198ff8b6f785478aa9a39f403cb768dd02cbee326c3e7da348845f"
    contracts:
      WETH: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
      USDC: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
      TestPriceOracle: "0xCf7Ed3AccA5a467e9e704C703E8D87F634fB0Fc9"
    provisioning:
      fund_value: "1000"
      accounts:
        - "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
      oracle: TestPriceOracle
      prices:
        - token: WETH
          price: "2000000000000000000000"
  mainnet:
    chain_id: 1
    rpc_url: ""
    contracts: {}
`

// unsetEnv clears a variable for the test. An empty value would still be
// picked up by flags bound to it.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func clearSoloEnv(t *testing.T) {
	for _, key := range []string{"SOLO_NETWORK", "SOLO_CONFIG", "SOLO_RPC_URL", "SOLO_DEPLOYER_KEY", "SOLO_TELEMETRY"} {
		unsetEnv(t, key)
	}
}

// writeNetworksConfig writes the test config with rpcURL for development and returns its path
func writeNetworksConfig(t *testing.T, rpcURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "networks.yaml")
	data := bytes.ReplaceAll([]byte(testNetworksYaml), []byte("%RPC%"), []byte(`"`+rpcURL+`"`))
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// runApp runs a single command and returns what it wrote to stdout
func runApp(t *testing.T, cmd *cli.Command, args ...string) (string, error) {
	t.Helper()
	clearSoloEnv(t)

	var stdout bytes.Buffer
	app := &cli.App{
		Name:      "solo",
		Flags:     common.GlobalFlags,
		Writer:    &stdout,
		ErrWriter: io.Discard,
		Before: func(cCtx *cli.Context) error {
			cCtx.Context = common.WithLogger(cCtx.Context, logger.NewLoggerWithWriter(io.Discard, true))
			return nil
		},
		Commands: []*cli.Command{cmd},
	}
	err := app.Run(append([]string{"solo"}, args...))
	return stdout.String(), err
}
