package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/solo-margin/solo-tools/pkg/migration"
	"github.com/solo-margin/solo-tools/pkg/migration/migrationtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useBackend points the migrate command at an in-memory chain
func useBackend(t *testing.T, chainID int64) *migrationtest.Backend {
	t.Helper()
	backend := migrationtest.NewBackend(chainID)
	orig := dialBackend
	dialBackend = func(context.Context, string) (migration.Backend, func(), error) {
		return backend, func() {}, nil
	}
	t.Cleanup(func() { dialBackend = orig })
	return backend
}

func TestMigrate(t *testing.T) {
	backend := useBackend(t, 1337)
	cfg := writeNetworksConfig(t, "http://localhost:8545")
	stateDir := t.TempDir()

	_, err := runApp(t, MigrateCommand, "migrate", "--config", cfg, "--state-dir", stateDir)
	require.NoError(t, err)

	// one account funded, one price set
	require.Len(t, backend.Transactions(), 2)
	oracle := common.HexToAddress("0xCf7Ed3AccA5a467e9e704C703E8D87F634fB0Fc9")
	assert.Len(t, backend.SentTo(oracle), 1)

	state, err := migration.LoadState(migration.StatePath(stateDir, "development"), "development")
	require.NoError(t, err)
	assert.Len(t, state.Completed, 4)

	// rerun skips everything
	_, err = runApp(t, MigrateCommand, "migrate", "--config", cfg, "--state-dir", stateDir)
	require.NoError(t, err)
	assert.Len(t, backend.Transactions(), 2)

	// reset runs the selected step again
	_, err = runApp(t, MigrateCommand, "migrate", "--config", cfg, "--state-dir", stateDir, "--reset", "--step", "set-prices")
	require.NoError(t, err)
	assert.Len(t, backend.SentTo(oracle), 2)
}

func TestMigrate_RefusesPublicNetwork(t *testing.T) {
	backend := useBackend(t, 1)
	cfg := writeNetworksConfig(t, "")

	_, err := runApp(t, MigrateCommand, "migrate", "--config", cfg, "--network", "mainnet", "--state-dir", t.TempDir())
	assert.ErrorIs(t, err, migration.ErrNotDevNetwork)
	assert.Empty(t, backend.Transactions())
}

func TestMigrate_ChainMismatch(t *testing.T) {
	useBackend(t, 5)
	cfg := writeNetworksConfig(t, "http://localhost:8545")

	_, err := runApp(t, MigrateCommand, "migrate", "--config", cfg, "--state-dir", t.TempDir())
	assert.ErrorContains(t, err, "chain id mismatch for development: config has 1337, node reports 5")
}

func TestMigrate_Errors(t *testing.T) {
	useBackend(t, 1337)

	_, err := runApp(t, MigrateCommand, "migrate", "--config", writeNetworksConfig(t, "http://localhost:8545"), "--step", "deploy")
	assert.ErrorContains(t, err, "unknown migration steps: deploy")

	_, err = runApp(t, MigrateCommand, "migrate", "--config", writeNetworksConfig(t, ""), "--state-dir", t.TempDir())
	assert.ErrorContains(t, err, "no rpc url configured for development")

	_, err = runApp(t, MigrateCommand, "migrate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to load networks config")
}
