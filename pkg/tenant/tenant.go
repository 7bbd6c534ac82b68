package tenant

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Status is the lifecycle state of a clinic account. Only active tenants
// are resolvable through the directory.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// Subscription mirrors the billing state stored on the tenant record. The
// core treats it as an opaque passthrough for UI and billing collaborators.
type Subscription struct {
	Plan      string    `bson:"plan" json:"plan"`
	Status    string    `bson:"status" json:"status"`
	ExpiresAt time.Time `bson:"expiresAt,omitempty" json:"expires_at,omitempty"`
}

// Tenant is the request-scoped snapshot of one clinic account: the fields
// needed to scope queries and render tenant-aware chrome, nothing more.
// The core never creates or mutates tenant records.
type Tenant struct {
	ID           bson.ObjectID `bson:"_id" json:"id"`
	Subdomain    string        `bson:"subdomain" json:"subdomain"`
	Name         string        `bson:"name" json:"name"`
	DisplayName  string        `bson:"displayName,omitempty" json:"display_name,omitempty"`
	Status       Status        `bson:"status" json:"status"`
	Settings     bson.M        `bson:"settings,omitempty" json:"settings,omitempty"`
	Subscription *Subscription `bson:"subscription,omitempty" json:"subscription,omitempty"`
}

// Active reports whether the snapshot belongs to a resolvable tenant.
func (t *Tenant) Active() bool {
	return t != nil && t.Status == StatusActive
}

// Store reads tenant records from the directory collection.
// Implementations return ErrTenantNotFound when no record matches the
// filter; any other error signals a data-layer failure.
type Store interface {
	FindTenant(ctx context.Context, filter bson.M, projection bson.M) (*Tenant, error)
}
