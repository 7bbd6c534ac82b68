package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/clinicbase/clinickit/pkg/tenant"
)

// TenantsCollection names the directory collection.
const TenantsCollection = "tenants"

// TenantStore reads the tenant directory. Lookups run unscoped: the
// directory is consulted before any tenant is resolved.
type TenantStore struct {
	coll Collection
}

// NewTenantStore returns the directory store over db's tenants collection.
func NewTenantStore(db *mongo.Database) *TenantStore {
	return &TenantStore{coll: db.Collection(TenantsCollection)}
}

// NewTenantStoreWithCollection is NewTenantStore for callers that already
// hold a collection handle, tests included.
func NewTenantStoreWithCollection(coll Collection) *TenantStore {
	return &TenantStore{coll: coll}
}

// FindTenant implements tenant.Store. A missing document maps to
// tenant.ErrTenantNotFound; every other decode or driver error passes
// through for the directory to log.
func (s *TenantStore) FindTenant(ctx context.Context, filter bson.M, projection bson.M) (*tenant.Tenant, error) {
	res := s.coll.FindOne(ctx, filter, options.FindOne().SetProjection(projection))

	var t tenant.Tenant
	if err := res.Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}
