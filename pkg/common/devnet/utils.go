package devnet

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// RPCCaller is the subset of *rpc.Client used for dev-chain control calls.
type RPCCaller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// IsPortAvailable checks if a TCP port is not already bound by another service.
func IsPortAvailable(port int) bool {
	addr := fmt.Sprintf("localhost:%d", port)
	conn, err := net.DialTimeout("tcp", addr, 1*time.Second)
	if err != nil {
		// If dialing fails, port is likely available
		return true
	}
	_ = conn.Close()
	return false
}

// GetRPCURL returns the RPC URL of a dev chain listening on the host.
func GetRPCURL(port int) string {
	return fmt.Sprintf("http://localhost:%d", port)
}

// Snapshot takes an evm snapshot and returns its id
func Snapshot(ctx context.Context, client RPCCaller) (string, error) {
	var id string
	if err := client.CallContext(ctx, &id, "evm_snapshot"); err != nil {
		return "", fmt.Errorf("failed to take snapshot: %w", err)
	}
	return id, nil
}

// Revert restores the chain to a snapshot. Snapshots are single use on ganache and anvil.
func Revert(ctx context.Context, client RPCCaller, id string) error {
	var ok bool
	if err := client.CallContext(ctx, &ok, "evm_revert", id); err != nil {
		return fmt.Errorf("failed to revert to snapshot %s: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("snapshot %s was not reverted", id)
	}
	return nil
}

// MineBlocks mines numBlocks empty blocks one at a time
func MineBlocks(ctx context.Context, client RPCCaller, numBlocks uint64) error {
	for i := uint64(0); i < numBlocks; i++ {
		if err := client.CallContext(ctx, nil, "evm_mine"); err != nil {
			return fmt.Errorf("failed to mine block %d of %d: %w", i+1, numBlocks, err)
		}
	}
	return nil
}

// IncreaseTime moves the chain clock forward and mines a block so the new
// timestamp is visible to calls.
func IncreaseTime(ctx context.Context, client RPCCaller, seconds int64) error {
	if seconds <= 0 {
		return fmt.Errorf("seconds must be positive, got %d", seconds)
	}
	if err := client.CallContext(ctx, nil, "evm_increaseTime", seconds); err != nil {
		return fmt.Errorf("failed to increase time: %w", err)
	}
	return MineBlocks(ctx, client, 1)
}

// GetTimestamp returns the timestamp of the latest block
func GetTimestamp(ctx context.Context, client RPCCaller) (uint64, error) {
	var block map[string]interface{}
	if err := client.CallContext(ctx, &block, "eth_getBlockByNumber", "latest", false); err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	tsHex, ok := block["timestamp"].(string)
	if !ok {
		return 0, fmt.Errorf("invalid timestamp format in latest block")
	}
	ts, err := hexutil.DecodeUint64(tsHex)
	if err != nil {
		return 0, fmt.Errorf("failed to parse timestamp %q: %w", tsHex, err)
	}
	return ts, nil
}
