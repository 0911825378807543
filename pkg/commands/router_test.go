package commands

import (
	"testing"

	"github.com/solo-margin/solo-tools/pkg/rebalancer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wethAddress = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
	usdcAddress = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	// USDC/WETH pair on the canonical factory
	usdcWethPair = "0xB4e16d0168e52d35CaCD2c6185b44281Ec28C9Dc"
)

func TestRouterShow(t *testing.T) {
	cfg := writeNetworksConfig(t, "")

	got, err := runApp(t, RouterCommand, "router", "show", "--config", cfg, "--network", "mainnet")
	require.NoError(t, err)
	assert.Contains(t, got, "Router: 0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D\n")
	assert.Contains(t, got, "Factory: 0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f\n")
	assert.Contains(t, got, "Init code hash: 0x96e8ac4277198ff8b6f785478aa9a39f403cb768dd02cbee326c3e7da348845f\n")
}

func TestRouterShow_NoRouter(t *testing.T) {
	_, err := runApp(t, RouterCommand, "router", "show", "--network", "docker")
	assert.ErrorIs(t, err, rebalancer.ErrNoRouter)
}

func TestRouterPair(t *testing.T) {
	cfg := writeNetworksConfig(t, "")

	got, err := runApp(t, RouterCommand, "router", "pair", "--config", cfg, "--network", "mainnet", wethAddress, usdcAddress)
	require.NoError(t, err)
	assert.Equal(t, usdcWethPair+"\n", got)

	// dev router from config, tokens by contract name, order does not matter
	got, err = runApp(t, RouterCommand, "router", "pair", "--config", cfg, "USDC", "WETH")
	require.NoError(t, err)
	assert.Equal(t, usdcWethPair+"\n", got)
}

func TestRouterPair_Errors(t *testing.T) {
	cfg := writeNetworksConfig(t, "")

	_, err := runApp(t, RouterCommand, "router", "pair", "--config", cfg, "WETH", "WETH")
	assert.ErrorContains(t, err, "identical tokens")

	_, err = runApp(t, RouterCommand, "router", "pair", "--config", cfg, "WETH", "DAI")
	assert.ErrorContains(t, err, `contract "DAI" not found`)

	_, err = runApp(t, RouterCommand, "router", "pair", "--config", cfg, "WETH")
	assert.ErrorContains(t, err, "expected 2 argument(s)")
}
