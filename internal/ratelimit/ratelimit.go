// Package ratelimit builds the token buckets used by the rate limit middleware.
package ratelimit

import (
	"net/http"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// NewRateLimiter creates a token bucket refilled at requestsPerSecond with a
// burst capacity of the same size. The Dashboard API budgets calls per
// organization per second.
func NewRateLimiter(requestsPerSecond int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
}

// DefaultBucket is the bucket name for requests whose path does not name an organization.
const DefaultBucket = "default"

// Registry hands out one limiter per organization ID found in the request
// path and a shared limiter for everything else.
type Registry struct {
	requestsPerSecond int
	fallback          *rate.Limiter
	limiters          sync.Map // organization ID -> *rate.Limiter
}

// NewRegistry creates a Registry whose limiters allow requestsPerSecond each.
func NewRegistry(requestsPerSecond int) *Registry {
	return &Registry{
		requestsPerSecond: requestsPerSecond,
		fallback:          NewRateLimiter(requestsPerSecond),
	}
}

// Select implements middleware.RateLimiterSelector.
func (r *Registry) Select(req *http.Request) (*rate.Limiter, string) {
	orgID := OrganizationID(req.URL.Path)
	if orgID == "" {
		return r.fallback, DefaultBucket
	}

	if limiter, ok := r.limiters.Load(orgID); ok {
		//nolint:forcetypeassert // Map only stores limiters
		return limiter.(*rate.Limiter), "org:" + orgID
	}

	limiter, _ := r.limiters.LoadOrStore(orgID, NewRateLimiter(r.requestsPerSecond))

	//nolint:forcetypeassert // Map only stores limiters
	return limiter.(*rate.Limiter), "org:" + orgID
}

// OrganizationID extracts the segment following "/organizations/" in path,
// or returns "" when the path is not scoped to an organization.
func OrganizationID(path string) string {
	const marker = "/organizations/"

	idx := strings.Index(path, marker)
	if idx < 0 {
		return ""
	}

	rest := path[idx+len(marker):]
	if end := strings.IndexByte(rest, '/'); end >= 0 {
		rest = rest[:end]
	}
	return rest
}
