package tenant

import "errors"

var (
	// ErrTenantNotFound is returned by Store implementations when no tenant
	// record matches the lookup filter.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrNoTenantInContext is returned when a handler requires a resolved
	// tenant but the request context carries none.
	ErrNoTenantInContext = errors.New("no tenant in context")
)
