package acl

import (
	"context"
	"fmt"
	"net/http"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *TodoClient) Name() string {
	return "todo-server"
}

// HealthCheck calls the server's liveness endpoint. Unlike
// httpclient.Client.HealthCheck it makes a network call, so the terminal
// client can report an unreachable server before the first refresh.
func (c *TodoClient) HealthCheck(ctx context.Context) error {
	if err := c.req.Do(ctx, http.MethodGet, "/health/live", http.StatusOK, nil, nil); err != nil {
		return fmt.Errorf("todo-server: %w", err)
	}
	return nil
}
