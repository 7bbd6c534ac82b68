// Package tenant resolves which clinic account an HTTP request belongs to
// and carries that answer through the request's context.
//
// Resolution runs once per request inside Middleware: the hostname is fed
// through the subdomain extractor, the resulting slug is looked up in the
// tenant directory (active accounts only), and the assembled snapshot is
// stored in the request context. Everything downstream, repositories
// included, reads the memoized snapshot via FromContext or TenantID instead
// of re-deriving it.
//
// # Degraded lookups
//
// Directory lookups never fail loudly. An unknown slug, a suspended clinic,
// and an unreachable store all resolve to "no tenant"; store failures are
// additionally logged. The request proceeds with root-site semantics and
// the query-scoping layer confines it to legacy, un-tenanted documents.
//
// # Caching
//
// Snapshots are cached keyed by lower-cased slug, never by anything
// request-scoped, behind the Cache interface: an in-memory TTL/LRU cache by
// default, a Redis-backed cache for multi-process deployments, or a no-op
// cache. Invalidate with Cache.Delete when a tenant's status changes.
//
// # Usage
//
//	ext := subdomain.New("example.com")
//	dir := tenant.NewDirectory(store.NewTenantStore(db), log)
//
//	r.Use(tenant.Middleware(ext, dir,
//		tenant.WithCacheTTL(2*time.Minute),
//		tenant.WithSkipPaths([]string{"/healthz"}),
//	))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		tc, _ := tenant.FromContext(r.Context())
//		if !tc.HasTenant() {
//			// root site: tc.Subdomain may still name the slug that failed
//		}
//	}
package tenant
