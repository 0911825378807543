package common

import (
	"os"
)

// GetRPCURLDefault returns SOLO_RPC_URL when set, otherwise the configured rpc_url
func GetRPCURLDefault(n *NetworkConfig) string {
	if url := os.Getenv("SOLO_RPC_URL"); url != "" {
		return url
	}
	return n.RPCURL
}

// GetDeployerKeyDefault returns SOLO_DEPLOYER_KEY when set, otherwise the configured key
func GetDeployerKeyDefault(n *NetworkConfig) string {
	if key := os.Getenv("SOLO_DEPLOYER_KEY"); key != "" {
		return key
	}
	return n.DeployerPrivateKey
}
