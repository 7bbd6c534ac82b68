package tenant

import (
	"errors"
	"net/http"
	"time"
)

// ErrorHandler renders a tenancy failure to the client.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// config holds middleware configuration.
type config struct {
	cache              Cache
	cacheTTL           time.Duration
	skipPaths          []string
	trustForwardedHost bool
}

// Option configures the middleware.
type Option func(*config)

// WithCache replaces the default in-memory cache. Use NewNoopCache to
// disable caching or NewRedisCache to share snapshots across processes.
func WithCache(cache Cache) Option {
	return func(c *config) {
		if cache != nil {
			c.cache = cache
		}
	}
}

// WithCacheTTL bounds how long a resolved snapshot may be served without
// re-reading the directory. Shorter TTLs notice suspensions sooner.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// WithSkipPaths lists path prefixes that bypass tenant resolution entirely,
// e.g. health and metrics endpoints.
func WithSkipPaths(paths []string) Option {
	return func(c *config) {
		c.skipPaths = paths
	}
}

// WithTrustForwardedHost makes the middleware prefer X-Forwarded-Host over
// Host. Enable only behind a proxy that strips the header from client
// traffic, otherwise any client can pick its own tenant.
func WithTrustForwardedHost(trust bool) Option {
	return func(c *config) {
		c.trustForwardedHost = trust
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNoTenantInContext) {
		http.Error(w, "Clinic not found", http.StatusNotFound)
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
