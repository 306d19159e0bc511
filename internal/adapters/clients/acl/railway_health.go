package acl

import "context"

// Name returns the identifier used with a [ports.HealthRegistry]. It matches
// the service name given to the underlying httpclient.Client.
func (c *RailwayClient) Name() string {
	return c.req.ServiceName()
}

// HealthCheck reports backend availability from the circuit breaker state;
// no network call is made.
//
// This reports downstream status only. Readiness is not tied to it, so the
// breaker can still observe recovery.
func (c *RailwayClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
