package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const commentedConfig = `# networks used by the tooling
version: 0.1.0
networks:
  development:
    chain_id: 1337 # anvil
    contracts:
      TokenA: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
  kovan:
    chain_id: 42
    contracts: {}
  docker:
    chain_id: 1313
`

func writeCommented(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "networks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(commentedConfig), 0644))
	return path
}

func TestSetContractAddresses(t *testing.T) {
	path := writeCommented(t)

	require.NoError(t, SetContractAddresses(path, "development", map[string]string{
		"TokenA":     "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		"SoloMargin": "0x5FC8d32690cc91D4c39d9d3abcBD16989F875707",
	}))
	require.NoError(t, SetContractAddresses(path, "kovan", map[string]string{
		"SoloMargin": "0x4EC3570cADaAEE08Ae384779B0f3A45EF85289DE",
	}))
	require.NoError(t, SetContractAddresses(path, "docker", map[string]string{
		"TokenB": "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# networks used by the tooling")
	assert.Contains(t, string(data), "# anvil")

	cfg, err := LoadNetworksConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512", cfg.Networks["development"].Contracts["TokenA"])
	assert.Equal(t, "0x5FC8d32690cc91D4c39d9d3abcBD16989F875707", cfg.Networks["development"].Contracts["SoloMargin"])
	assert.Equal(t, "0x4EC3570cADaAEE08Ae384779B0f3A45EF85289DE", cfg.Networks["kovan"].Contracts["SoloMargin"])
	assert.Equal(t, "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512", cfg.Networks["docker"].Contracts["TokenB"])
	assert.Equal(t, int64(1337), cfg.Networks["development"].ChainID)
}

func TestSetContractAddresses_Errors(t *testing.T) {
	path := writeCommented(t)

	err := SetContractAddresses(path, "mainnet", map[string]string{"X": "0x0"})
	assert.ErrorIs(t, err, ErrNetworkNotConfigured)

	err = SetContractAddresses(path, "", nil)
	assert.ErrorIs(t, err, ErrNoNetwork)

	err = SetContractAddresses(filepath.Join(t.TempDir(), "missing.yaml"), "development", nil)
	assert.Error(t, err)
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.yaml")
	require.NoError(t, WriteYAML(path, map[string]interface{}{"a": map[string]int{"b": 1}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a:\n  b: 1\n", string(data))

	node, err := LoadYAML(path)
	require.NoError(t, err)
	a := GetChildByKey(node.Content[0], "a")
	require.NotNil(t, a)
	assert.Equal(t, yaml.MappingNode, a.Kind)
	assert.Equal(t, "1", GetChildByKey(a, "b").Value)
	assert.Nil(t, GetChildByKey(a, "c"))
}
