package common

import (
	"github.com/solo-margin/solo-tools/pkg/common/iface"
	"github.com/solo-margin/solo-tools/pkg/common/logger"

	"github.com/urfave/cli/v2"
)

// IsVerboseEnabled checks if the CLI --verbose flag is set
func IsVerboseEnabled(cCtx *cli.Context) bool {
	return cCtx.Bool("verbose")
}

// GetLoggerFromCLIContext picks the logger implementation from the global flags:
// --plain selects the line logger, otherwise zap is used.
func GetLoggerFromCLIContext(cCtx *cli.Context) iface.Logger {
	verbose := IsVerboseEnabled(cCtx)
	if cCtx.Bool("plain") {
		return logger.NewLoggerWithWriter(cCtx.App.ErrWriter, verbose)
	}
	return logger.NewZapLogger(verbose)
}
