package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoNetwork      = errors.New("no network provided")
	ErrUnknownNetwork = errors.New("unknown network")
)

// Prefixes that mark a local or CI network. Order does not matter, any match wins.
var devNetworkPrefixes = []string{
	"development",
	"develop",
	"dev",
	"test",
	"test_ci",
	"docker",
	"coverage",
}

const (
	MainnetChainID  int64 = 1
	KovanChainID    int64 = 42
	TestChainID     int64 = 1001
	CoverageChainID int64 = 1002
	DockerChainID   int64 = 1313
	DevChainID      int64 = 1337
)

func verifyNetwork(network string) error {
	if strings.TrimSpace(network) == "" {
		return ErrNoNetwork
	}
	return nil
}

// IsDevNetwork reports whether network is a local, docker, test or coverage network.
func IsDevNetwork(network string) (bool, error) {
	if err := verifyNetwork(network); err != nil {
		return false, err
	}
	for _, prefix := range devNetworkPrefixes {
		if strings.HasPrefix(network, prefix) {
			return true, nil
		}
	}
	return false, nil
}

func IsMainNet(network string) (bool, error) {
	if err := verifyNetwork(network); err != nil {
		return false, err
	}
	return strings.HasPrefix(network, "mainnet"), nil
}

func IsKovan(network string) (bool, error) {
	if err := verifyNetwork(network); err != nil {
		return false, err
	}
	return strings.HasPrefix(network, "kovan"), nil
}

func IsDocker(network string) (bool, error) {
	if err := verifyNetwork(network); err != nil {
		return false, err
	}
	return strings.HasPrefix(network, "docker"), nil
}

// ChainIDForNetwork returns the chain id a network name is expected to run on.
func ChainIDForNetwork(network string) (int64, error) {
	if err := verifyNetwork(network); err != nil {
		return 0, err
	}
	switch {
	case strings.HasPrefix(network, "mainnet"):
		return MainnetChainID, nil
	case strings.HasPrefix(network, "kovan"):
		return KovanChainID, nil
	case strings.HasPrefix(network, "coverage"):
		return CoverageChainID, nil
	case strings.HasPrefix(network, "docker"):
		return DockerChainID, nil
	case strings.HasPrefix(network, "test"):
		return TestChainID, nil
	}
	dev, _ := IsDevNetwork(network)
	if dev {
		return DevChainID, nil
	}
	return 0, fmt.Errorf("%w: no chain id for %q", ErrUnknownNetwork, network)
}
