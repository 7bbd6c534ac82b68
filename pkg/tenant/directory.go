package tenant

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/clinicbase/clinickit/pkg/logger"
	"github.com/clinicbase/clinickit/pkg/subdomain"
)

// snapshotProjection limits directory reads to the fields the snapshot
// actually carries.
var snapshotProjection = bson.M{
	"subdomain":    1,
	"name":         1,
	"displayName":  1,
	"status":       1,
	"settings":     1,
	"subscription": 1,
}

// Directory looks clinic accounts up by subdomain slug. It is read-only:
// tenant records are created and mutated elsewhere (onboarding, admin).
type Directory struct {
	store Store
	log   *slog.Logger
}

// NewDirectory returns a Directory over the given store. A nil log
// discards lookup failures silently.
func NewDirectory(store Store, log *slog.Logger) *Directory {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Directory{store: store, log: log}
}

// Resolve returns the active tenant registered under slug, or nil.
//
// The nil result deliberately collapses three cases: no such tenant, tenant
// not active, and store failure. Store failures are logged before the
// collapse so the page can still render; callers that must distinguish a
// suspended clinic from a missing one have to query the store without the
// active-status filter themselves.
func (d *Directory) Resolve(ctx context.Context, slug string) *Tenant {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if !subdomain.ValidSlug(slug) || subdomain.Reserved(slug) {
		return nil
	}

	t, err := d.store.FindTenant(ctx, bson.M{
		"subdomain": slug,
		"status":    StatusActive,
	}, snapshotProjection)
	if err != nil {
		if !errors.Is(err, ErrTenantNotFound) {
			d.log.ErrorContext(ctx, "tenant directory lookup failed",
				slog.String("subdomain", slug), logger.Error(err))
		}
		return nil
	}
	if !t.Active() {
		return nil
	}
	return t
}

// Verify is Resolve for callers that hold no ambient request: onboarding
// flows checking slug availability, admin tooling redirecting a clinic to
// its own subdomain.
func (d *Directory) Verify(ctx context.Context, slug string) *Tenant {
	return d.Resolve(ctx, slug)
}
