package tenant

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Context is the per-request tenancy snapshot computed once by the
// middleware. Subdomain may be set while TenantID is zero: the host carried
// a slug but no active tenant matched it. Callers must not conflate the
// two fields.
type Context struct {
	TenantID  bson.ObjectID
	Subdomain string
	Tenant    *Tenant
}

// HasTenant reports whether the request resolved to an active tenant.
func (c Context) HasTenant() bool {
	return c.Tenant != nil && !c.TenantID.IsZero()
}

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithContext returns a copy of ctx carrying the tenancy snapshot.
func WithContext(ctx context.Context, tc Context) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// FromContext retrieves the tenancy snapshot from the context.
// The second return value is false when the middleware never ran.
func FromContext(ctx context.Context) (Context, bool) {
	tc, ok := ctx.Value(contextKey{}).(Context)
	return tc, ok
}

// TenantID retrieves just the resolved tenant identifier. It returns a zero
// ObjectID and false when the request resolved to no tenant, including the
// slug-present-but-inactive case.
func TenantID(ctx context.Context) (bson.ObjectID, bool) {
	tc, ok := FromContext(ctx)
	if !ok || !tc.HasTenant() {
		return bson.ObjectID{}, false
	}
	return tc.TenantID, true
}

// MustFromContext retrieves the tenancy snapshot and panics when the request
// resolved to no tenant. Use only behind RequireTenant.
func MustFromContext(ctx context.Context) Context {
	tc, ok := FromContext(ctx)
	if !ok || !tc.HasTenant() {
		panic("tenant: no tenant in context")
	}
	return tc
}

// LoggerExtractor returns a logger context extractor that annotates log
// records with the resolved tenant ID.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := TenantID(ctx); ok {
			return slog.String("tenant_id", id.Hex()), true
		}
		return slog.Attr{}, false
	}
}
