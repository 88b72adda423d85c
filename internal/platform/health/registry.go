// Package health tracks the readiness of the service's dependencies (the
// database pool and its circuit breaker). The readiness endpoint asks the
// registry before accepting traffic.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/home-service/internal/platform/fanout"
	"github.com/jsamuelsen11/home-service/internal/ports"
)

// maxConcurrentChecks bounds how many checks run at once.
const maxConcurrentChecks = 8

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a concurrency-safe [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs the registered checks concurrently and returns the results
// keyed by checker name; nil means healthy. When two checkers share a name
// the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	outcomes := fanout.Each(ctx, maxConcurrentChecks, checkers,
		func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
			return struct{}{}, c.HealthCheck(ctx)
		})
	errs := fanout.Errors(outcomes)

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
