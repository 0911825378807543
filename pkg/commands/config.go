package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/solo-margin/solo-tools/config"
	"github.com/solo-margin/solo-tools/pkg/common"

	"github.com/urfave/cli/v2"
)

// loadNetworksConfig reads --config, falling back to the embedded default when
// the default path does not exist
func loadNetworksConfig(cCtx *cli.Context) (*common.NetworksConfig, error) {
	path := cCtx.String("config")
	if path == "" {
		path = common.DefaultNetworksConfigPath
	}
	cfg, err := common.LoadNetworksConfig(path)
	if err == nil {
		return cfg, nil
	}
	if path == common.DefaultNetworksConfigPath {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			common.LoggerFromContext(cCtx.Context).Debug("%s not found, using built-in networks", path)
			return common.ParseNetworksConfig([]byte(config.DefaultNetworksYaml), ".yaml")
		}
	}
	return nil, err
}

// loadNetwork returns the --network name and its config
func loadNetwork(cCtx *cli.Context) (string, *common.NetworkConfig, error) {
	name := cCtx.String("network")
	cfg, err := loadNetworksConfig(cCtx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load networks config: %w", err)
	}
	n, err := cfg.Network(name)
	if err != nil {
		return "", nil, err
	}
	return name, n, nil
}

func out(cCtx *cli.Context) io.Writer {
	if cCtx.App != nil && cCtx.App.Writer != nil {
		return cCtx.App.Writer
	}
	return os.Stdout
}
