package ports

import "context"

// HealthChecker reports whether a backing store the wallet engine depends on
// (the PostgreSQL journal, the Redis caches) is reachable. GET /health
// degrades to 503 when any checker fails.
type HealthChecker interface {
	Ping(ctx context.Context) error
	// Name labels the dependency in the health report.
	Name() string
}
