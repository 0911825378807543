package hooks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/solo-margin/solo-tools/pkg/common"
	"github.com/solo-margin/solo-tools/pkg/telemetry"
	"github.com/urfave/cli/v2"
)

// EnvFile is the name of the environment file
const EnvFile = ".env"

// CommandPrefix is the prefix applied to all command names in event names
const CommandPrefix = "solo."

// CommandMetrics holds timing and metadata for command execution
type CommandMetrics struct {
	StartTime time.Time
	Command   string
	Flags     map[string]interface{}
}

// contextKey is used to store command metrics in context
type contextKey struct{}

func getFlagValue(ctx *cli.Context, name string) interface{} {
	if !ctx.IsSet(name) {
		return nil
	}

	if ctx.Bool(name) {
		return ctx.Bool(name)
	}
	if ctx.String(name) != "" {
		return ctx.String(name)
	}
	if ctx.Int(name) != 0 {
		return ctx.Int(name)
	}
	if s := ctx.StringSlice(name); len(s) > 0 {
		return s
	}
	return nil
}

func collectFlagValues(ctx *cli.Context) map[string]interface{} {
	flags := make(map[string]interface{})

	// App-level flags
	for _, flag := range ctx.App.Flags {
		flagName := flag.Names()[0]
		if ctx.IsSet(flagName) {
			flags[flagName] = getFlagValue(ctx, flagName)
		}
	}

	// Command-level flags
	if ctx.Command != nil {
		for _, flag := range ctx.Command.Flags {
			flagName := flag.Names()[0]
			if ctx.IsSet(flagName) {
				flags[flagName] = getFlagValue(ctx, flagName)
			}
		}
	}

	return flags
}

// NewTelemetryClient returns a log backed client when --telemetry is set and a noop client otherwise
func NewTelemetryClient(ctx *cli.Context) telemetry.Client {
	if !ctx.Bool("telemetry") {
		return telemetry.NewNoopClient()
	}
	props := telemetry.NewProperties(
		ctx.App.Version,
		runtime.GOOS,
		runtime.GOARCH,
		uuid.New().String(),
	)
	return telemetry.NewLogClient(common.LoggerFromContext(ctx.Context), props)
}

func MetricsFromContext(ctx context.Context) (CommandMetrics, bool) {
	metrics, ok := ctx.Value(contextKey{}).(CommandMetrics)
	if metrics.Command == "" {
		return CommandMetrics{}, false
	}
	return metrics, ok
}

func WithCommandMetrics(ctx context.Context, metrics CommandMetrics) context.Context {
	return context.WithValue(ctx, contextKey{}, metrics)
}

func FormatEventName(command, action string) string {
	return fmt.Sprintf("cli.%s%s.%s", CommandPrefix, command, action)
}

func Track(ctx context.Context, name string, props map[string]interface{}) error {
	client, ok := telemetry.FromContext(ctx)
	if !ok {
		return nil
	}
	return client.Track(ctx, name, props)
}

// FormatCustomMetric names a metric under the running command
func FormatCustomMetric(ctx context.Context, metricPath string) string {
	metrics, ok := MetricsFromContext(ctx)
	if !ok {
		return fmt.Sprintf("cli.%sunknown.%s", CommandPrefix, metricPath)
	}
	return fmt.Sprintf("cli.%s%s.%s", CommandPrefix, metrics.Command, metricPath)
}

func trackCommandResult(ctx *cli.Context, result string, err error) {
	metrics, ok := MetricsFromContext(ctx.Context)
	if !ok {
		return
	}

	// Copy the flags map to avoid modifying the original
	props := make(map[string]interface{}, len(metrics.Flags))
	for k, v := range metrics.Flags {
		props[k] = v
	}
	props["duration_ms"] = time.Since(metrics.StartTime).Milliseconds()

	if err != nil {
		props["error"] = err.Error()
	}

	_ = Track(ctx.Context, FormatEventName(metrics.Command, result), props)
}

// WithMetrics wraps a command action with invoked/success/fail events. The
// telemetry client is taken from the context; without one nothing is emitted.
func WithMetrics(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		command := ctx.Command.Name

		flags := collectFlagValues(ctx)
		ctx.Context = WithCommandMetrics(ctx.Context, CommandMetrics{
			StartTime: time.Now(),
			Command:   command,
			Flags:     flags,
		})

		_ = Track(ctx.Context, FormatEventName(command, "invoked"), flags)

		err := action(ctx)

		if err != nil {
			trackCommandResult(ctx, "fail", err)
		} else {
			trackCommandResult(ctx, "success", nil)
		}

		return err
	}
}

// ApplyMiddleware applies a list of middleware functions to commands
func ApplyMiddleware(commands []*cli.Command, middlewares ...func(cli.ActionFunc) cli.ActionFunc) {
	for _, cmd := range commands {
		if cmd.Action != nil {
			wrappedAction := cmd.Action
			for _, middleware := range middlewares {
				wrappedAction = middleware(wrappedAction)
			}
			cmd.Action = wrappedAction
		}

		// Recursively apply to subcommands
		if len(cmd.Subcommands) > 0 {
			ApplyMiddleware(cmd.Subcommands, middlewares...)
		}
	}
}

// LoadEnvFile loads environment variables from path if it exists.
// Variables already present in the environment win.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
