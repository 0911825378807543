package telemetry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/solo-margin/solo-tools/pkg/common/iface"
)

// LogClient writes every event to a logger at debug level. It never fails.
type LogClient struct {
	mu     sync.Mutex
	logger iface.Logger
	props  Properties
	count  int
}

func NewLogClient(logger iface.Logger, props Properties) *LogClient {
	return &LogClient{logger: logger, props: props}
}

// Track implements the Client interface
func (c *LogClient) Track(_ context.Context, event string, props map[string]interface{}) error {
	if c == nil || c.logger == nil {
		return nil
	}

	merged := map[string]interface{}{
		"cli_version": c.props.CLIVersion,
		"os":          c.props.OS,
		"arch":        c.props.Arch,
		"session_id":  c.props.SessionID,
	}
	for k, v := range props {
		merged[k] = v
	}

	c.mu.Lock()
	c.count++
	c.mu.Unlock()

	c.logger.Debug("telemetry %s %s", event, formatProps(merged))
	return nil
}

// Close implements the Client interface
func (c *LogClient) Close() error {
	if c == nil || c.logger == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Debug("telemetry session %s closed after %d events", c.props.SessionID, c.count)
	return nil
}

// formatProps renders properties as sorted key=value pairs
func formatProps(props map[string]interface{}) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, props[k]))
	}
	return strings.Join(parts, " ")
}
