package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkClassification(t *testing.T) {
	cases := []struct {
		network string
		dev     bool
		mainnet bool
		kovan   bool
		docker  bool
	}{
		{"development", true, false, false, false},
		{"develop", true, false, false, false},
		{"dev_local", true, false, false, false},
		{"test", true, false, false, false},
		{"test_ci", true, false, false, false},
		{"docker", true, false, false, true},
		{"docker_ci", true, false, false, true},
		{"coverage", true, false, false, false},
		{"mainnet", false, true, false, false},
		{"mainnet_fork", false, true, false, false},
		{"kovan", false, false, true, false},
		{"ropsten", false, false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.network, func(t *testing.T) {
			dev, err := IsDevNetwork(tc.network)
			require.NoError(t, err)
			assert.Equal(t, tc.dev, dev)

			main, err := IsMainNet(tc.network)
			require.NoError(t, err)
			assert.Equal(t, tc.mainnet, main)

			kovan, err := IsKovan(tc.network)
			require.NoError(t, err)
			assert.Equal(t, tc.kovan, kovan)

			docker, err := IsDocker(tc.network)
			require.NoError(t, err)
			assert.Equal(t, tc.docker, docker)
		})
	}
}

func TestNetworkClassification_Empty(t *testing.T) {
	_, err := IsDevNetwork("")
	assert.ErrorIs(t, err, ErrNoNetwork)
	_, err = IsMainNet(" ")
	assert.ErrorIs(t, err, ErrNoNetwork)
	_, err = IsKovan("")
	assert.ErrorIs(t, err, ErrNoNetwork)
	_, err = ChainIDForNetwork("")
	assert.ErrorIs(t, err, ErrNoNetwork)
}

func TestChainIDForNetwork(t *testing.T) {
	expected := map[string]int64{
		"mainnet":     1,
		"kovan":       42,
		"coverage":    1002,
		"docker":      1313,
		"test":        1001,
		"test_ci":     1001,
		"development": 1337,
	}
	for network, want := range expected {
		got, err := ChainIDForNetwork(network)
		require.NoError(t, err, network)
		assert.Equal(t, want, got, network)
	}

	_, err := ChainIDForNetwork("ropsten")
	assert.ErrorIs(t, err, ErrUnknownNetwork)
}
