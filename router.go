package clinickit

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/clinicbase/clinickit/pkg/httpserver"
	"github.com/clinicbase/clinickit/pkg/requestid"
	"github.com/clinicbase/clinickit/pkg/subdomain"
	"github.com/clinicbase/clinickit/pkg/tenant"
)

// probePaths bypass tenant resolution entirely.
var probePaths = []string{"/healthz", "/readyz"}

// Deps wires the core into a router. Extractor and Directory are required;
// everything else is optional.
type Deps struct {
	Extractor *subdomain.Extractor
	Directory *tenant.Directory
	Logger    *slog.Logger

	// TenantOptions tune the tenant middleware, e.g. a Redis cache or a
	// shorter TTL.
	TenantOptions []tenant.Option

	// Healthchecks back the readiness probe: mongo.Healthcheck, and
	// redis.Healthcheck when the shared cache is in use.
	Healthchecks []func(context.Context) error
}

// Router returns the application's base router: request identity first,
// then tenant resolution, with liveness and readiness probes mounted
// outside the tenant path. Domain modules mount their handlers on the
// returned router and may add tenant.RequireTenant on routes that cannot
// serve the root site.
func Router(deps Deps) chi.Router {
	opts := append([]tenant.Option{tenant.WithSkipPaths(probePaths)}, deps.TenantOptions...)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(tenant.Middleware(deps.Extractor, deps.Directory, opts...))

	r.Get("/healthz", httpserver.HealthCheckHandler(deps.Logger))
	r.Get("/readyz", httpserver.HealthCheckHandler(deps.Logger, deps.Healthchecks...))

	return r
}
