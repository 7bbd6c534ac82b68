// Package clinickit is the multi-tenant core of the clinic-management
// application: it decides which clinic account an inbound request belongs
// to and confines every data-access call to that clinic's documents.
//
// The pipeline runs leaf to root:
//
//   - subdomain extracts the candidate tenant slug from the request host.
//   - tenant looks the slug up in the directory (active clinics only) and
//     memoizes the result in the request context for the request lifetime.
//   - scope rewrites MongoDB predicates and documents to honor the
//     memoized tenant, falling back to legacy un-tenanted documents when
//     the request resolved to none.
//   - store wraps collections so that rewrite is mandatory rather than a
//     call-site convention.
//
// Router assembles the standard middleware chain (request identity, tenant
// resolution, probe endpoints) that the application mounts its pages and
// API under.
package clinickit
