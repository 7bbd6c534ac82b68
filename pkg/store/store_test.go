package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/clinicbase/clinickit/pkg/store"
	"github.com/clinicbase/clinickit/pkg/tenant"
)

// fakeCollection records what would reach the driver.
type fakeCollection struct {
	gotFilter any
	gotDoc    any
	gotDocs   any
	findOne   *mongo.SingleResult
	err       error
}

func (f *fakeCollection) FindOne(_ context.Context, filter any, _ ...options.Lister[options.FindOneOptions]) *mongo.SingleResult {
	f.gotFilter = filter
	if f.findOne != nil {
		return f.findOne
	}
	return mongo.NewSingleResultFromDocument(bson.M{}, f.err, nil)
}

func (f *fakeCollection) Find(_ context.Context, filter any, _ ...options.Lister[options.FindOptions]) (*mongo.Cursor, error) {
	f.gotFilter = filter
	return mongo.NewCursorFromDocuments(nil, f.err, nil)
}

func (f *fakeCollection) InsertOne(_ context.Context, document any, _ ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error) {
	f.gotDoc = document
	return &mongo.InsertOneResult{}, f.err
}

func (f *fakeCollection) InsertMany(_ context.Context, documents any, _ ...options.Lister[options.InsertManyOptions]) (*mongo.InsertManyResult, error) {
	f.gotDocs = documents
	return &mongo.InsertManyResult{}, f.err
}

func (f *fakeCollection) UpdateOne(_ context.Context, filter any, _ any, _ ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error) {
	f.gotFilter = filter
	return &mongo.UpdateResult{}, f.err
}

func (f *fakeCollection) UpdateMany(_ context.Context, filter any, _ any, _ ...options.Lister[options.UpdateManyOptions]) (*mongo.UpdateResult, error) {
	f.gotFilter = filter
	return &mongo.UpdateResult{}, f.err
}

func (f *fakeCollection) DeleteOne(_ context.Context, filter any, _ ...options.Lister[options.DeleteOneOptions]) (*mongo.DeleteResult, error) {
	f.gotFilter = filter
	return &mongo.DeleteResult{}, f.err
}

func (f *fakeCollection) DeleteMany(_ context.Context, filter any, _ ...options.Lister[options.DeleteManyOptions]) (*mongo.DeleteResult, error) {
	f.gotFilter = filter
	return &mongo.DeleteResult{}, f.err
}

func (f *fakeCollection) CountDocuments(_ context.Context, filter any, _ ...options.Lister[options.CountOptions]) (int64, error) {
	f.gotFilter = filter
	return 0, f.err
}

func resolvedCtx(id bson.ObjectID) context.Context {
	return tenant.WithContext(context.Background(), tenant.Context{
		TenantID:  id,
		Subdomain: "acme",
		Tenant:    &tenant.Tenant{ID: id, Subdomain: "acme", Status: tenant.StatusActive},
	})
}

func TestScoped_ReadsCarryTenantFilter(t *testing.T) {
	t.Parallel()

	id := bson.NewObjectID()
	ctx := resolvedCtx(id)

	fake := &fakeCollection{}
	scoped := store.NewScoped(fake)

	_ = scoped.FindOne(ctx, bson.M{"status": "open"})
	assert.Equal(t, bson.M{"status": "open", "tenantId": id}, fake.gotFilter)

	_, err := scoped.Find(ctx, bson.M{"status": "open"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"status": "open", "tenantId": id}, fake.gotFilter)

	_, err = scoped.UpdateMany(ctx, bson.M{}, bson.M{"$set": bson.M{"status": "closed"}})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"tenantId": id}, fake.gotFilter)

	_, err = scoped.DeleteOne(ctx, bson.M{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"x": 1, "tenantId": id}, fake.gotFilter)

	_, err = scoped.CountDocuments(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"tenantId": id}, fake.gotFilter)
}

func TestScoped_ReadsWithoutTenantSeeOnlyLegacyDocuments(t *testing.T) {
	t.Parallel()

	fake := &fakeCollection{}
	scoped := store.NewScoped(fake)

	_ = scoped.FindOne(context.Background(), bson.M{"status": "open"})

	got, ok := fake.gotFilter.(bson.M)
	require.True(t, ok)
	assert.Equal(t, "open", got["status"])
	assert.Equal(t, bson.A{
		bson.M{"tenantId": bson.M{"$exists": false}},
		bson.M{"tenantId": nil},
	}, got["$or"])
}

func TestScoped_InsertsAreStamped(t *testing.T) {
	t.Parallel()

	id := bson.NewObjectID()
	ctx := resolvedCtx(id)

	fake := &fakeCollection{}
	scoped := store.NewScoped(fake)

	_, err := scoped.InsertOne(ctx, bson.M{"name": "visit"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"name": "visit", "tenantId": id}, fake.gotDoc)

	_, err = scoped.InsertMany(ctx, []bson.M{{"n": 1}, {"n": 2}})
	require.NoError(t, err)
	docs, ok := fake.gotDocs.([]any)
	require.True(t, ok)
	require.Len(t, docs, 2)
	for _, d := range docs {
		assert.Equal(t, id, d.(bson.M)["tenantId"])
	}
}

func TestScoped_InsertWithoutTenantLeftUnstamped(t *testing.T) {
	t.Parallel()

	fake := &fakeCollection{}
	scoped := store.NewScoped(fake)

	_, err := scoped.InsertOne(context.Background(), bson.M{"name": "visit"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"name": "visit"}, fake.gotDoc)
}

func TestTenantStore_FindTenant(t *testing.T) {
	t.Parallel()

	t.Run("decodes a matching record", func(t *testing.T) {
		t.Parallel()

		id := bson.NewObjectID()
		fake := &fakeCollection{findOne: mongo.NewSingleResultFromDocument(bson.M{
			"_id":       id,
			"subdomain": "acme",
			"name":      "Acme Clinic",
			"status":    "active",
		}, nil, nil)}

		ts := store.NewTenantStoreWithCollection(fake)
		got, err := ts.FindTenant(context.Background(), bson.M{"subdomain": "acme"}, bson.M{"name": 1})
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "acme", got.Subdomain)
		assert.True(t, got.Active())
		assert.Equal(t, bson.M{"subdomain": "acme"}, fake.gotFilter)
	})

	t.Run("maps missing document to ErrTenantNotFound", func(t *testing.T) {
		t.Parallel()

		fake := &fakeCollection{findOne: mongo.NewSingleResultFromDocument(bson.M{}, mongo.ErrNoDocuments, nil)}

		ts := store.NewTenantStoreWithCollection(fake)
		got, err := ts.FindTenant(context.Background(), bson.M{"subdomain": "ghost"}, nil)
		require.ErrorIs(t, err, tenant.ErrTenantNotFound)
		assert.Nil(t, got)
	})
}
