// Package slug turns clinic names into subdomain candidates for onboarding:
// "St. Mary's Clinic" becomes "st-marys-clinic". Candidates satisfy the
// subdomain package's slug rules; names that collapse to something reserved
// or too short get a random suffix so the result is always usable as-is for
// an availability check against the tenant directory.
package slug

import (
	"crypto/rand"
	"strings"

	"github.com/clinicbase/clinickit/pkg/subdomain"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Option configures candidate generation.
type Option func(*config)

type config struct {
	maxLength    int
	suffixLength int
}

// MaxLength truncates the candidate; the default is the DNS label limit.
func MaxLength(n int) Option {
	return func(c *config) {
		if n > 0 && n <= subdomain.MaxSlugLength {
			c.maxLength = n
		}
	}
}

// WithSuffix always appends a random suffix of the given length, for
// callers that retry after an availability collision.
func WithSuffix(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.suffixLength = n
		}
	}
}

// Make derives a subdomain candidate from name. The result always passes
// subdomain.ValidSlug and is never a reserved word; when the name alone
// cannot produce that, a random suffix is appended.
func Make(name string, opts ...Option) string {
	cfg := &config{maxLength: subdomain.MaxSlugLength}
	for _, opt := range opts {
		opt(cfg)
	}

	s := normalize(name, cfg.maxLength)
	if cfg.suffixLength > 0 {
		s = appendSuffix(s, cfg.suffixLength, cfg.maxLength)
	}
	if !subdomain.ValidSlug(s) || subdomain.Reserved(s) {
		s = appendSuffix(s, 6, cfg.maxLength)
	}
	return s
}

// normalize lowercases, maps runs of unusable characters to single hyphens,
// and trims to length on a hyphen-safe boundary.
func normalize(name string, maxLength int) string {
	var b strings.Builder
	b.Grow(len(name))

	hyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			hyphen = false
		case r == '\'' || r == '’':
			// Apostrophes vanish: "Mary's" -> "marys".
		default:
			if b.Len() > 0 && !hyphen {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}

	s := strings.Trim(b.String(), "-")
	if len(s) > maxLength {
		s = strings.Trim(s[:maxLength], "-")
	}
	return s
}

func appendSuffix(s string, n, maxLength int) string {
	suffix := randomSuffix(n)
	keep := maxLength - n - 1
	if s == "" || keep <= 0 {
		return suffix
	}
	if len(s) > keep {
		s = strings.Trim(s[:keep], "-")
	}
	if s == "" {
		return suffix
	}
	return s + "-" + suffix
}

func randomSuffix(n int) string {
	buf := make([]byte, n)
	// rand.Read never fails on supported platforms.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return string(buf)
}
