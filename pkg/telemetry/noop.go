package telemetry

import "context"

// NoopClient drops every event. It is the default when --telemetry is off.
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

func (c *NoopClient) Track(context.Context, string, map[string]interface{}) error {
	return nil
}

func (c *NoopClient) Close() error {
	return nil
}

// IsNoopClient reports whether client discards events
func IsNoopClient(client Client) bool {
	_, isNoop := client.(*NoopClient)
	return isNoop
}
