package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicbase/clinickit/pkg/slug"
	"github.com/clinicbase/clinickit/pkg/subdomain"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "Acme Clinic", "acme-clinic"},
		{"apostrophes vanish", "St. Mary's Clinic", "st-marys-clinic"},
		{"punctuation collapses", "Downtown -- Dental & Care", "downtown-dental-care"},
		{"already a slug", "acme", "acme"},
		{"digits kept", "Clinic 24", "clinic-24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, slug.Make(tt.in))
		})
	}
}

func TestMake_AlwaysProducesValidSlug(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Acme Clinic",
		"www", // reserved
		"x",   // too short
		"",    // nothing usable
		"日本語クリニック",
		strings.Repeat("very long clinic name ", 10),
	}
	for _, in := range inputs {
		got := slug.Make(in)
		assert.True(t, subdomain.ValidSlug(got), "Make(%q) = %q must be a valid slug", in, got)
		assert.False(t, subdomain.Reserved(got), "Make(%q) = %q must not be reserved", in, got)
	}
}

func TestMake_MaxLength(t *testing.T) {
	t.Parallel()

	got := slug.Make("A Very Long Clinic Name Indeed", slug.MaxLength(12))
	assert.LessOrEqual(t, len(got), 12)
	assert.True(t, subdomain.ValidSlug(got))
}

func TestMake_WithSuffix(t *testing.T) {
	t.Parallel()

	first := slug.Make("Acme Clinic", slug.WithSuffix(6))
	second := slug.Make("Acme Clinic", slug.WithSuffix(6))

	require.True(t, strings.HasPrefix(first, "acme-clinic-"))
	assert.Len(t, first, len("acme-clinic-")+6)
	assert.NotEqual(t, first, second, "suffixes should differ across calls")
}
