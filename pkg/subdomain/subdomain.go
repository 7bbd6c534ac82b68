package subdomain

import (
	"regexp"
	"strings"
)

const (
	// MinSlugLength and MaxSlugLength bound tenant slugs; the upper bound
	// keeps slugs valid as DNS labels.
	MinSlugLength = 2
	MaxSlugLength = 63

	// previewSeparator delimits the tenant slug from the branch name in
	// preview-deployment hostnames, e.g. "acme---feature-x.vercel.app".
	previewSeparator = "---"
)

// slugPattern requires lowercase alphanumeric labels with interior hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// reservedSlugs can never identify a tenant. They cover infrastructure
// hostnames and the application's own pages.
var reservedSlugs = map[string]struct{}{
	"www":     {},
	"api":     {},
	"admin":   {},
	"app":     {},
	"mail":    {},
	"smtp":    {},
	"ftp":     {},
	"staging": {},
	"dev":     {},
	"test":    {},
	"demo":    {},
	"docs":    {},
	"blog":    {},
	"status":  {},
	"support": {},
	"help":    {},
	"billing": {},
	"assets":  {},
	"static":  {},
	"cdn":     {},
}

// ValidSlug reports whether s is an acceptable tenant slug: lowercase
// alphanumeric with interior hyphens, within length bounds. Reserved words
// are still valid slugs; use Reserved to exclude them.
func ValidSlug(s string) bool {
	if len(s) < MinSlugLength || len(s) > MaxSlugLength {
		return false
	}
	return slugPattern.MatchString(s)
}

// Reserved reports whether s (case-insensitively) is on the reserved-word
// list and therefore unavailable as a tenant slug.
func Reserved(s string) bool {
	_, ok := reservedSlugs[strings.ToLower(s)]
	return ok
}

// Config carries the environment knobs consulted by the production-path
// extraction logic.
type Config struct {
	RootDomain    string `env:"APP_ROOT_DOMAIN" envDefault:"localhost"` // RootDomain is the apex domain tenant subdomains hang off.
	AppHost       string `env:"APP_HOST"`                               // AppHost is the reserved application hostname that never maps to a tenant, e.g. "portal.example.com".
	PreviewSuffix string `env:"APP_PREVIEW_SUFFIX" envDefault:".vercel.app"` // PreviewSuffix is the deployment-platform suffix of preview hostnames.
}

// Extractor derives tenant slugs from request hostnames. The zero value is
// not usable; construct with New or NewFromConfig.
type Extractor struct {
	root          string
	appHost       string
	previewSuffix string
}

// New returns an Extractor for the given root domain. An empty rootDomain
// falls back to "localhost".
func New(rootDomain string) *Extractor {
	if rootDomain == "" {
		rootDomain = "localhost"
	}
	return &Extractor{root: rootDomain, previewSuffix: ".vercel.app"}
}

// NewFromConfig returns an Extractor built from environment configuration.
func NewFromConfig(cfg Config) *Extractor {
	e := New(cfg.RootDomain)
	e.appHost = cfg.AppHost
	e.previewSuffix = cfg.PreviewSuffix
	return e
}

// RootDomain returns the configured apex domain.
func (e *Extractor) RootDomain() string {
	return e.root
}

// Extract returns the candidate tenant slug encoded in host, or "" when the
// host carries no tenant. The function is total: any input, including an
// empty or malformed Host header, yields a string. Case is preserved;
// callers must lower-case before comparing or querying.
func (e *Extractor) Extract(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return ""
	}

	// Strip a trailing :port.
	if i := strings.LastIndex(host, ":"); i != -1 && !strings.Contains(host[i+1:], ".") {
		host = host[:i]
	}
	if host == "" {
		return ""
	}

	// Development hosts: only the literal <slug>.localhost form carries a
	// tenant. Bare localhost and loopback addresses never do.
	if strings.Contains(host, "localhost") || strings.Contains(host, "127.0.0.1") {
		slug, ok := strings.CutSuffix(host, ".localhost")
		if !ok || slug == "" || slug == "www" || strings.Contains(slug, ".") {
			return ""
		}
		return slug
	}

	// Preview deployments encode the slug before the delimiter:
	// <slug>---<branch>.<platform suffix>.
	if e.previewSuffix != "" && strings.HasSuffix(host, e.previewSuffix) {
		if i := strings.Index(host, previewSeparator); i > 0 {
			if slug := host[:i]; slug != "www" {
				return slug
			}
		}
		return ""
	}

	// Production hosts against the configured root domain.
	if host == e.root || host == "www."+e.root {
		return ""
	}
	if e.appHost != "" && host == e.appHost {
		return ""
	}
	if slug, ok := strings.CutSuffix(host, "."+e.root); ok && slug != "" && slug != "www" {
		return slug
	}
	return ""
}
