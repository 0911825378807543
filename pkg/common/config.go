package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

const DefaultNetworksConfigPath = "config/networks.yaml"

// NetworksConfigVersion is the config schema version written by `solo init`
const NetworksConfigVersion = "0.1.0"

var ErrNetworkNotConfigured = errors.New("network not configured")

type NetworksConfig struct {
	Version  string                   `json:"version" yaml:"version" toml:"version"`
	Networks map[string]NetworkConfig `json:"networks" yaml:"networks" toml:"networks"`
}

type NetworkConfig struct {
	ChainID            int64               `json:"chain_id" yaml:"chain_id" toml:"chain_id"`
	RPCURL             string              `json:"rpc_url" yaml:"rpc_url" toml:"rpc_url"`
	DeployerPrivateKey string              `json:"deployer_private_key" yaml:"deployer_private_key" toml:"deployer_private_key"`
	Router             *RouterConfig       `json:"router,omitempty" yaml:"router,omitempty" toml:"router,omitempty"`
	Contracts          map[string]string   `json:"contracts" yaml:"contracts" toml:"contracts"`
	Provisioning       *ProvisioningConfig `json:"provisioning,omitempty" yaml:"provisioning,omitempty" toml:"provisioning,omitempty"`
}

type RouterConfig struct {
	Address      string `json:"address" yaml:"address" toml:"address"`
	Factory      string `json:"factory" yaml:"factory" toml:"factory"`
	InitCodeHash string `json:"init_code_hash" yaml:"init_code_hash" toml:"init_code_hash"`
}

// ProvisioningConfig describes the balances, prices and rates a dev network
// is seeded with. Token, oracle and setter fields accept either an address or
// a key of NetworkConfig.Contracts.
type ProvisioningConfig struct {
	FundValue      string                `json:"fund_value" yaml:"fund_value" toml:"fund_value"`
	Accounts       []string              `json:"accounts" yaml:"accounts" toml:"accounts"`
	Oracle         string                `json:"oracle" yaml:"oracle" toml:"oracle"`
	InterestSetter string                `json:"interest_setter" yaml:"interest_setter" toml:"interest_setter"`
	Tokens         []TokenIssuance       `json:"tokens" yaml:"tokens" toml:"tokens"`
	Prices         []PriceSetting        `json:"prices" yaml:"prices" toml:"prices"`
	InterestRates  []InterestRateSetting `json:"interest_rates" yaml:"interest_rates" toml:"interest_rates"`
}

type TokenIssuance struct {
	Token  string `json:"token" yaml:"token" toml:"token"`
	Amount string `json:"amount" yaml:"amount" toml:"amount"`
}

type PriceSetting struct {
	Token string `json:"token" yaml:"token" toml:"token"`
	Price string `json:"price" yaml:"price" toml:"price"`
}

type InterestRateSetting struct {
	Token string `json:"token" yaml:"token" toml:"token"`
	Rate  string `json:"rate" yaml:"rate" toml:"rate"`
}

// LoadNetworksConfig reads the networks config, decoding TOML for .toml files and YAML otherwise
func LoadNetworksConfig(path string) (*NetworksConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read networks config: %w", err)
	}
	return ParseNetworksConfig(data, filepath.Ext(path))
}

// ParseNetworksConfig decodes raw config bytes; ext selects the format (".toml" or YAML for anything else)
func ParseNetworksConfig(data []byte, ext string) (*NetworksConfig, error) {
	var cfg NetworksConfig
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse networks config (toml): %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse networks config: %w", err)
		}
	}
	if cfg.Networks == nil {
		cfg.Networks = map[string]NetworkConfig{}
	}
	return &cfg, nil
}

// Network returns the named network with environment overrides applied
func (c *NetworksConfig) Network(name string) (*NetworkConfig, error) {
	if err := verifyNetwork(name); err != nil {
		return nil, err
	}
	n, ok := c.Networks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrNetworkNotConfigured, name, strings.Join(c.NetworkNames(), ", "))
	}
	n.RPCURL = GetRPCURLDefault(&n)
	n.DeployerPrivateKey = GetDeployerKeyDefault(&n)
	return &n, nil
}

// NetworkNames returns the configured network names in sorted order
func (c *NetworksConfig) NetworkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveAddress turns a contract reference into an address. A reference is a
// hex address or a key of Contracts.
func (n *NetworkConfig) ResolveAddress(ref string) (common.Address, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return common.Address{}, fmt.Errorf("empty contract reference")
	}
	if common.IsHexAddress(ref) {
		return common.HexToAddress(ref), nil
	}
	addr, ok := n.Contracts[ref]
	if !ok {
		return common.Address{}, fmt.Errorf("contract %q not found in network config", ref)
	}
	if !common.IsHexAddress(addr) {
		return common.Address{}, fmt.Errorf("contract %q has invalid address %q", ref, addr)
	}
	return common.HexToAddress(addr), nil
}
