package devnet

import (
	"context"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChain serves the evm_* and eth_getBlockByNumber methods over an in-process RPC server
type fakeChain struct {
	timestamp uint64
	blocks    uint64
	snapshots map[string]uint64
	nextID    int
}

type evmService struct{ c *fakeChain }

func (s *evmService) Snapshot() string {
	s.c.nextID++
	id := fmt.Sprintf("0x%x", s.c.nextID)
	s.c.snapshots[id] = s.c.timestamp
	return id
}

func (s *evmService) Revert(id string) bool {
	ts, ok := s.c.snapshots[id]
	if !ok {
		return false
	}
	delete(s.c.snapshots, id)
	s.c.timestamp = ts
	return true
}

func (s *evmService) Mine() string {
	s.c.blocks++
	s.c.timestamp++
	return "0x0"
}

func (s *evmService) IncreaseTime(seconds int64) int64 {
	s.c.timestamp += uint64(seconds)
	return seconds
}

type ethService struct{ c *fakeChain }

func (s *ethService) GetBlockByNumber(number string, full bool) map[string]interface{} {
	return map[string]interface{}{
		"number":    fmt.Sprintf("0x%x", s.c.blocks),
		"timestamp": fmt.Sprintf("0x%x", s.c.timestamp),
	}
}

func newFakeClient(t *testing.T) (*rpc.Client, *fakeChain) {
	chain := &fakeChain{timestamp: 1000, snapshots: map[string]uint64{}}
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("evm", &evmService{c: chain}))
	require.NoError(t, server.RegisterName("eth", &ethService{c: chain}))
	client := rpc.DialInProc(server)
	t.Cleanup(func() {
		client.Close()
		server.Stop()
	})
	return client, chain
}

func TestIncreaseTimeAndTimestamp(t *testing.T) {
	client, chain := newFakeClient(t)
	ctx := context.Background()

	require.NoError(t, IncreaseTime(ctx, client, 3600))
	ts, err := GetTimestamp(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000+3600+1), ts)
	assert.Equal(t, uint64(1), chain.blocks)

	assert.Error(t, IncreaseTime(ctx, client, 0))
}

func TestSnapshotRevert(t *testing.T) {
	client, chain := newFakeClient(t)
	ctx := context.Background()

	id, err := Snapshot(ctx, client)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.NoError(t, MineBlocks(ctx, client, 5))
	assert.Equal(t, uint64(1005), chain.timestamp)

	require.NoError(t, Revert(ctx, client, id))
	assert.Equal(t, uint64(1000), chain.timestamp)

	// snapshots are single use
	err = Revert(ctx, client, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "was not reverted")
}

func TestGetRPCURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8545", GetRPCURL(DEFAULT_PORT))
}

func TestTestAccountKeysMatchAddresses(t *testing.T) {
	require.Len(t, TEST_ACCOUNT_KEYS, len(TEST_ACCOUNTS))
	for i, key := range TEST_ACCOUNT_KEYS {
		pk, err := crypto.HexToECDSA(key[2:])
		require.NoError(t, err)
		assert.Equal(t, TEST_ACCOUNTS[i], crypto.PubkeyToAddress(pk.PublicKey), "account %d", i)
	}
}
