// Package rebalancer holds the AMM router addresses and pair init-code hashes
// the rebalancer is deployed against on each network.
package rebalancer

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/solo-margin/solo-tools/pkg/codec"
	solocommon "github.com/solo-margin/solo-tools/pkg/common"
)

var ErrNoRouter = errors.New("no rebalancer router for network")

type Router struct {
	Network      string
	Address      common.Address
	Factory      common.Address
	InitCodeHash common.Hash
}

var (
	uniswapV2Router       = common.HexToAddress("0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D")
	uniswapV2Factory      = common.HexToAddress("0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f")
	uniswapV2InitCodeHash = common.HexToHash("0x96e8ac4277198ff8b6f785478aa9a39f403cb768dd02cbee326c3e7da348845f")
)

// RouterForNetwork looks up the router of a network. Public networks use the
// canonical Uniswap V2 deployment; dev networks take the router from cfg,
// which may be nil.
func RouterForNetwork(network string, cfg *solocommon.NetworkConfig) (Router, error) {
	mainnet, err := solocommon.IsMainNet(network)
	if err != nil {
		return Router{}, err
	}
	kovan, _ := solocommon.IsKovan(network)
	if mainnet || kovan {
		return Router{
			Network:      network,
			Address:      uniswapV2Router,
			Factory:      uniswapV2Factory,
			InitCodeHash: uniswapV2InitCodeHash,
		}, nil
	}

	dev, _ := solocommon.IsDevNetwork(network)
	if !dev || cfg == nil || cfg.Router == nil {
		return Router{}, fmt.Errorf("%w %q", ErrNoRouter, network)
	}
	return routerFromConfig(network, cfg.Router)
}

func routerFromConfig(network string, rc *solocommon.RouterConfig) (Router, error) {
	if !common.IsHexAddress(rc.Address) {
		return Router{}, fmt.Errorf("invalid router address %q for %s", rc.Address, network)
	}
	if rc.Factory != "" && !common.IsHexAddress(rc.Factory) {
		return Router{}, fmt.Errorf("invalid factory address %q for %s", rc.Factory, network)
	}
	hash, err := parseHash(rc.InitCodeHash)
	if err != nil {
		return Router{}, fmt.Errorf("invalid init code hash for %s: %w", network, err)
	}
	return Router{
		Network:      network,
		Address:      common.HexToAddress(rc.Address),
		Factory:      common.HexToAddress(rc.Factory),
		InitCodeHash: hash,
	}, nil
}

func parseHash(s string) (common.Hash, error) {
	b, err := codec.HexToBytes(s)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("expected 32-byte hex, got %q", s)
	}
	return common.BytesToHash(b), nil
}

// SortTokens orders two token addresses the way the pair factory does.
func SortTokens(tokenA, tokenB common.Address) (common.Address, common.Address) {
	if bytes.Compare(tokenA.Bytes(), tokenB.Bytes()) < 0 {
		return tokenA, tokenB
	}
	return tokenB, tokenA
}

// PairAddress derives the CREATE2 address of the tokenA/tokenB pair.
func PairAddress(factory common.Address, initCodeHash common.Hash, tokenA, tokenB common.Address) common.Address {
	token0, token1 := SortTokens(tokenA, tokenB)
	salt := crypto.Keccak256Hash(token0.Bytes(), token1.Bytes())
	return crypto.CreateAddress2(factory, salt, initCodeHash.Bytes())
}

// PairAddress derives a pair address using this router's factory and init hash.
func (r Router) PairAddress(tokenA, tokenB common.Address) common.Address {
	return PairAddress(r.Factory, r.InitCodeHash, tokenA, tokenB)
}
