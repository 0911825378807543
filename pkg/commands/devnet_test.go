package commands

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/solo-margin/solo-tools/pkg/common/devnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type devChain struct {
	timestamp uint64
	blocks    uint64
	snapshots map[string]uint64
}

type devEvmService struct{ c *devChain }

func (s *devEvmService) Snapshot() string {
	id := fmt.Sprintf("0x%x", len(s.c.snapshots)+1)
	s.c.snapshots[id] = s.c.timestamp
	return id
}

func (s *devEvmService) Revert(id string) bool {
	ts, ok := s.c.snapshots[id]
	if ok {
		s.c.timestamp = ts
	}
	return ok
}

func (s *devEvmService) Mine() string {
	s.c.blocks++
	return "0x0"
}

func (s *devEvmService) IncreaseTime(seconds int64) int64 {
	s.c.timestamp += uint64(seconds)
	return seconds
}

type devEthService struct{ c *devChain }

func (s *devEthService) GetBlockByNumber(number string, full bool) map[string]interface{} {
	return map[string]interface{}{"timestamp": fmt.Sprintf("0x%x", s.c.timestamp)}
}

// useDevChain points the devnet commands at an in-process chain
func useDevChain(t *testing.T) *devChain {
	t.Helper()
	chain := &devChain{timestamp: 1_700_000_000, snapshots: map[string]uint64{}}
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("evm", &devEvmService{c: chain}))
	require.NoError(t, server.RegisterName("eth", &devEthService{c: chain}))

	orig := dialRPC
	dialRPC = func(context.Context, string) (devnet.RPCCaller, func(), error) {
		client := rpc.DialInProc(server)
		return client, client.Close, nil
	}
	t.Cleanup(func() {
		dialRPC = orig
		server.Stop()
	})
	return chain
}

func TestDevnet_SnapshotRevert(t *testing.T) {
	chain := useDevChain(t)

	id, err := runApp(t, DevnetCommand, "devnet", "snapshot")
	require.NoError(t, err)
	assert.Equal(t, "0x1\n", id)

	got, err := runApp(t, DevnetCommand, "devnet", "increase-time", "36h")
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatUint(1_700_000_000+36*3600, 10)+"\n", got)
	assert.Equal(t, uint64(1), chain.blocks)

	_, err = runApp(t, DevnetCommand, "devnet", "revert", "0x1")
	require.NoError(t, err)

	got, err = runApp(t, DevnetCommand, "devnet", "timestamp")
	require.NoError(t, err)
	assert.Equal(t, "1700000000\n", got)

	_, err = runApp(t, DevnetCommand, "devnet", "revert", "0x9")
	assert.ErrorContains(t, err, "snapshot 0x9 was not reverted")
}

func TestDevnet_Mine(t *testing.T) {
	chain := useDevChain(t)

	_, err := runApp(t, DevnetCommand, "devnet", "mine", "--blocks", "3")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), chain.blocks)
}

func TestDevnet_IncreaseTimeInvalid(t *testing.T) {
	useDevChain(t)

	_, err := runApp(t, DevnetCommand, "devnet", "increase-time", "soon")
	assert.ErrorContains(t, err, `invalid time "soon"`)

	_, err = runApp(t, DevnetCommand, "devnet", "increase-time", "0")
	assert.ErrorContains(t, err, "seconds must be positive")
}

func TestParseSeconds(t *testing.T) {
	n, err := parseSeconds("86400")
	require.NoError(t, err)
	assert.Equal(t, int64(86400), n)

	n, err = parseSeconds("90m")
	require.NoError(t, err)
	assert.Equal(t, int64(5400), n)
}
