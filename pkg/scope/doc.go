// Package scope rewrites MongoDB predicates and documents so they respect
// clinic boundaries. Every read, update, or delete filter for a
// tenant-scoped collection must pass through Filter or FilterFor before it
// reaches the driver; every insert must pass through Stamp or StampFor.
//
// Under a resolved tenant the filter gains an exact match on the tenantId
// field. Under no tenant (root site, background work without an explicit
// tenant) the filter instead gains a disjunction matching documents whose
// tenantId is absent or null: records that predate multi-tenancy belong to
// "no tenant" and stay visible only to requests that themselves resolved to
// none.
//
// All functions are pure over their inputs: they shallow-copy rather than
// mutate, perform no I/O, and the only ambient read is the tenant snapshot
// already memoized in the request context. Scoping an already-scoped filter
// again is redundant but sound.
//
// Call sites that hold an explicit tenant identifier (migrations,
// cross-tenant admin tooling, batch jobs) use the *For variants and skip
// the ambient context entirely. Most application code should not call this
// package directly at all: the store package wraps collections so scoping
// happens at the client boundary.
package scope
