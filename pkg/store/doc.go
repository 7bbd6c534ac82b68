// Package store wraps MongoDB collections so tenant scoping happens at the
// client boundary instead of at every call site.
//
// Nothing in the language stops a new code path from querying a collection
// directly and leaking another clinic's records. Scoped closes that gap
// capability-style: repositories receive a *Scoped instead of a
// *mongo.Collection, and every filter runs through the scope package before
// it reaches the driver: reads, updates, and deletes are conjoined with
// the ambient tenant, inserts are stamped with it. Code holding only a
// Scoped cannot express an unscoped query.
//
//	visits := store.NewScoped(db.Collection("visits"))
//	cur, err := visits.Find(r.Context(), bson.M{"status": "open"})
//
// The tenants collection itself is the directory, not tenant-scoped data;
// TenantStore reads it unscoped and backs tenant.Directory.
package store
