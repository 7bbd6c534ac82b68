package tenant

import (
	"net/http"
	"strings"
	"time"

	"github.com/clinicbase/clinickit/pkg/subdomain"
)

// forwardedHostHeader is consulted when the server sits behind a proxy that
// rewrites Host. Only trusted when enabled via WithTrustForwardedHost.
const forwardedHostHeader = "X-Forwarded-Host"

// Middleware resolves the request's tenant from its hostname and stores the
// tenancy snapshot in the request context. It always calls the next
// handler: a host with no slug, an unknown slug, and an inactive tenant all
// produce a context with a zero TenantID, which downstream query scoping
// treats as the legacy no-tenant path.
//
// Resolution happens exactly once per request; everything downstream reads
// the memoized snapshot via FromContext or TenantID.
func Middleware(extractor *subdomain.Extractor, directory *Directory, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		cache:    NewMemoryCache(),
		cacheTTL: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, skip := range cfg.skipPaths {
				if strings.HasPrefix(r.URL.Path, skip) {
					next.ServeHTTP(w, r)
					return
				}
			}

			host := r.Host
			if cfg.trustForwardedHost {
				if fh := r.Header.Get(forwardedHostHeader); fh != "" {
					host = fh
				}
			}

			tc := Context{Subdomain: extractor.Extract(host)}
			if tc.Subdomain != "" {
				slug := strings.ToLower(tc.Subdomain)
				if subdomain.ValidSlug(slug) && !subdomain.Reserved(slug) {
					t, ok := cfg.cache.Get(r.Context(), slug)
					if !ok {
						if t = directory.Resolve(r.Context(), slug); t != nil {
							cfg.cache.Set(r.Context(), slug, t, cfg.cacheTTL)
						}
					}
					if t.Active() {
						tc.TenantID = t.ID
						tc.Tenant = t
					}
				}
			}

			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), tc)))
		})
	}
}

// RequireTenant guards routes that cannot serve the root site: it rejects
// any request whose context lacks a resolved tenant.
func RequireTenant(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tc, ok := FromContext(r.Context()); !ok || !tc.HasTenant() {
				errorHandler(w, r, ErrNoTenantInContext)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
