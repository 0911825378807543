package migration

import (
	"context"
	"io"
	"testing"

	"github.com/solo-margin/solo-tools/config"
	solocommon "github.com/solo-margin/solo-tools/pkg/common"
	"github.com/solo-margin/solo-tools/pkg/common/devnet"
	"github.com/solo-margin/solo-tools/pkg/common/logger"
	"github.com/solo-margin/solo-tools/pkg/migration/migrationtest"
	"github.com/stretchr/testify/require"
)

var _ Backend = (*migrationtest.Backend)(nil)

func testLogger() *logger.BasicLogger {
	return logger.NewLoggerWithWriter(io.Discard, true)
}

func defaultNetwork(t *testing.T, name string) *solocommon.NetworkConfig {
	t.Helper()
	cfg, err := solocommon.ParseNetworksConfig([]byte(config.DefaultNetworksYaml), ".yaml")
	require.NoError(t, err)
	n, err := cfg.Network(name)
	require.NoError(t, err)
	return n
}

func newTestEnv(t *testing.T, network string, cfg *solocommon.NetworkConfig) (*Env, *migrationtest.Backend) {
	t.Helper()
	backend := migrationtest.NewBackend(1337)
	tr, err := NewTransactor(context.Background(), backend, devnet.DEFAULT_DEPLOYER_KEY, testLogger())
	require.NoError(t, err)
	return &Env{
		Network:    network,
		Config:     cfg,
		Backend:    backend,
		Transactor: tr,
		Logger:     testLogger(),
	}, backend
}
