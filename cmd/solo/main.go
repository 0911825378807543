package main

import (
	"context"
	"log"
	"os"

	"github.com/solo-margin/solo-tools/pkg/commands"
	"github.com/solo-margin/solo-tools/pkg/common"
	"github.com/solo-margin/solo-tools/pkg/common/logger"
	"github.com/solo-margin/solo-tools/pkg/hooks"
	"github.com/solo-margin/solo-tools/pkg/telemetry"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx := common.WithShutdown(context.Background())

	app := &cli.App{
		Name:    "solo",
		Usage:   "Solo Margin protocol tooling",
		Version: commands.Version,
		Flags:   common.GlobalFlags,
		Before: func(cCtx *cli.Context) error {
			if err := hooks.LoadEnvFile(hooks.EnvFile); err != nil {
				return err
			}

			// Get logger based on CLI context (handles verbosity internally)
			l := common.GetLoggerFromCLIContext(cCtx)
			cCtx.Context = common.WithLogger(cCtx.Context, l)

			// Store the telemetry client for the metrics middleware
			cCtx.Context = telemetry.WithContext(cCtx.Context, hooks.NewTelemetryClient(cCtx))
			return nil
		},
		After: func(cCtx *cli.Context) error {
			if client, ok := telemetry.FromContext(cCtx.Context); ok {
				_ = client.Close()
			}
			if zl, ok := common.LoggerFromContext(cCtx.Context).(*logger.ZapLogger); ok {
				_ = zl.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			commands.CodecCommand,
			commands.NetworkCommand,
			commands.RouterCommand,
			commands.ArtifactsCommand,
			commands.InitHashCommand,
			commands.MigrateCommand,
			commands.DevnetCommand,
			commands.InitCommand,
			commands.VersionCommand,
		},
		UseShortOptionHandling: true,
	}

	hooks.ApplyMiddleware(app.Commands, hooks.WithMetrics)

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
