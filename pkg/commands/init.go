package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/solo-margin/solo-tools/config"
	"github.com/solo-margin/solo-tools/pkg/common"

	"github.com/urfave/cli/v2"
)

// InitCommand writes the default config files into a project
var InitCommand = &cli.Command{
	Name:  "init",
	Usage: "Write the default networks config and .env example",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "dir",
			Usage: "Project root",
			Value: ".",
		},
		&cli.BoolFlag{
			Name:  "force",
			Usage: "Overwrite existing files",
		},
	},
	Action: InitAction,
}

func InitAction(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)
	root := cCtx.String("dir")
	force := cCtx.Bool("force")

	names := make([]string, 0, len(config.InitFiles))
	for name := range config.InitFiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil && !force {
			logger.Warn("%s already exists, skipping (use --force to overwrite)", path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
		if err := os.WriteFile(path, []byte(config.InitFiles[name]), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Info("Wrote %s", path)
	}
	return nil
}
