package scope

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/clinicbase/clinickit/pkg/tenant"
)

// Field is the document field carrying the owning tenant's identifier.
const Field = "tenantId"

// Filter conjoins the ambient tenant with the given predicate. With a
// resolved tenant the result matches only that tenant's documents; without
// one it matches only legacy documents whose tenantId is absent or null.
// A nil predicate is treated as match-all.
func Filter(ctx context.Context, q bson.M) bson.M {
	if id, ok := tenant.TenantID(ctx); ok {
		return scoped(id, q)
	}
	return legacy(q)
}

// FilterFor is the explicit-identifier sibling of Filter for callers that
// run outside a request. A zero id selects the legacy no-tenant path.
func FilterFor(id bson.ObjectID, q bson.M) bson.M {
	if id.IsZero() {
		return legacy(q)
	}
	return scoped(id, q)
}

// Stamp returns doc with the ambient tenant's identifier set, copying
// before writing. An existing tenantId is never overwritten, and without an
// ambient tenant the document is returned unchanged.
func Stamp(ctx context.Context, doc bson.M) bson.M {
	id, ok := tenant.TenantID(ctx)
	if !ok {
		return doc
	}
	return StampFor(id, doc)
}

// StampFor stamps an explicit tenant identifier onto doc under the same
// rules as Stamp.
func StampFor(id bson.ObjectID, doc bson.M) bson.M {
	if id.IsZero() || doc == nil {
		return doc
	}
	if _, exists := doc[Field]; exists {
		return doc
	}
	out := clone(doc)
	out[Field] = id
	return out
}

func scoped(id bson.ObjectID, q bson.M) bson.M {
	out := clone(q)
	if prior, exists := out[Field]; exists {
		// Already carries a tenant constraint: conjoin instead of
		// overwriting so double scoping stays sound.
		delete(out, Field)
		return bson.M{"$and": bson.A{
			out,
			bson.M{Field: prior},
			bson.M{Field: id},
		}}
	}
	out[Field] = id
	return out
}

// legacy widens the predicate to documents created before multi-tenancy:
// tenantId missing entirely or explicitly null. When the caller already has
// a top-level $or the clauses are appended into it rather than nested, the
// shape the pre-migration data layer expects.
func legacy(q bson.M) bson.M {
	out := clone(q)
	clauses := bson.A{
		bson.M{Field: bson.M{"$exists": false}},
		bson.M{Field: nil},
	}
	switch or := out["$or"].(type) {
	case bson.A:
		out["$or"] = append(append(bson.A{}, or...), clauses...)
	case []bson.M:
		merged := make(bson.A, 0, len(or)+len(clauses))
		for _, m := range or {
			merged = append(merged, m)
		}
		out["$or"] = append(merged, clauses...)
	default:
		out["$or"] = clauses
	}
	return out
}

// clone copies the top level of q. Nested values are shared; scoping only
// ever adds top-level keys.
func clone(q bson.M) bson.M {
	out := make(bson.M, len(q)+1)
	for k, v := range q {
		out[k] = v
	}
	return out
}
