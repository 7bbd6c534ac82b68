package store

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/clinicbase/clinickit/pkg/scope"
)

// Collection is the subset of *mongo.Collection the wrappers rely on.
// It exists as a seam so tests can observe the filters that would reach
// the driver.
type Collection interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
	InsertMany(ctx context.Context, documents any, opts ...options.Lister[options.InsertManyOptions]) (*mongo.InsertManyResult, error)
	UpdateOne(ctx context.Context, filter any, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error)
	UpdateMany(ctx context.Context, filter any, update any, opts ...options.Lister[options.UpdateManyOptions]) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter any, opts ...options.Lister[options.DeleteOneOptions]) (*mongo.DeleteResult, error)
	DeleteMany(ctx context.Context, filter any, opts ...options.Lister[options.DeleteManyOptions]) (*mongo.DeleteResult, error)
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
}

// Scoped forces every operation on a tenant-scoped collection through the
// query-scoping layer, using the tenant snapshot already memoized in ctx.
// Filters take bson.M rather than any so the scoping rewrite always
// applies.
type Scoped struct {
	coll Collection
}

// NewScoped wraps a collection holding tenant-scoped documents.
func NewScoped(coll Collection) *Scoped {
	return &Scoped{coll: coll}
}

func (s *Scoped) FindOne(ctx context.Context, filter bson.M, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult {
	return s.coll.FindOne(ctx, scope.Filter(ctx, filter), opts...)
}

func (s *Scoped) Find(ctx context.Context, filter bson.M, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error) {
	return s.coll.Find(ctx, scope.Filter(ctx, filter), opts...)
}

func (s *Scoped) InsertOne(ctx context.Context, document bson.M, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error) {
	return s.coll.InsertOne(ctx, scope.Stamp(ctx, document), opts...)
}

func (s *Scoped) InsertMany(ctx context.Context, documents []bson.M, opts ...options.Lister[options.InsertManyOptions]) (*mongo.InsertManyResult, error) {
	stamped := make([]any, len(documents))
	for i, doc := range documents {
		stamped[i] = scope.Stamp(ctx, doc)
	}
	return s.coll.InsertMany(ctx, stamped, opts...)
}

func (s *Scoped) UpdateOne(ctx context.Context, filter bson.M, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error) {
	return s.coll.UpdateOne(ctx, scope.Filter(ctx, filter), update, opts...)
}

func (s *Scoped) UpdateMany(ctx context.Context, filter bson.M, update any, opts ...options.Lister[options.UpdateManyOptions]) (*mongo.UpdateResult, error) {
	return s.coll.UpdateMany(ctx, scope.Filter(ctx, filter), update, opts...)
}

func (s *Scoped) DeleteOne(ctx context.Context, filter bson.M, opts ...options.Lister[options.DeleteOneOptions]) (*mongo.DeleteResult, error) {
	return s.coll.DeleteOne(ctx, scope.Filter(ctx, filter), opts...)
}

func (s *Scoped) DeleteMany(ctx context.Context, filter bson.M, opts ...options.Lister[options.DeleteManyOptions]) (*mongo.DeleteResult, error) {
	return s.coll.DeleteMany(ctx, scope.Filter(ctx, filter), opts...)
}

func (s *Scoped) CountDocuments(ctx context.Context, filter bson.M, opts ...options.Lister[options.CountOptions]) (int64, error) {
	return s.coll.CountDocuments(ctx, scope.Filter(ctx, filter), opts...)
}
