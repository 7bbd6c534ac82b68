// Package subdomain resolves the tenant-identifying prefix of an HTTP
// hostname for subdomain-per-clinic multi-tenancy.
//
// The extractor is a pure function over the request Host value: it performs
// no I/O and never fails, returning the candidate slug or an empty string
// when the hostname does not carry one. Three hostname families are
// recognized:
//
//   - Development hosts: "acme.localhost:3000" yields "acme", while bare
//     "localhost" and "127.0.0.1" never carry a tenant.
//   - Preview deployments: "acme---feature-x.vercel.app" yields "acme",
//     supporting ephemeral branch URLs where the slug is encoded before a
//     triple-hyphen delimiter.
//   - Production hosts: "acme.example.com" yields "acme" when the configured
//     root domain is "example.com". The bare root, its "www" form, and the
//     reserved application host resolve to no tenant.
//
// The package also owns slug validation: DNS-safe character set, 2-63
// character length, and a reserved-word list ("www", "api", "admin", ...)
// that can never name a clinic.
//
// # Usage
//
//	ext := subdomain.New("example.com")
//	slug := ext.Extract(r.Host) // "" when the host carries no tenant
//
// Extraction preserves case; callers performing lookups must lower-case the
// result first (see ValidSlug).
package subdomain
