package ports

import "context"

// Collection names persisted by the document store.
const (
	CollectionUsers = "users"
	CollectionRoles = "roles"
)

// DocumentStore persists whole named collections against a durable key-value
// substrate. Load fills out (a pointer to a slice) with the stored records;
// a missing or malformed collection leaves out untouched and returns no
// error. Save replaces the entire collection in one write. The store has no
// schema awareness; callers always write back the complete, already-mutated
// collection.
type DocumentStore interface {
	Load(ctx context.Context, collection string, out any) error
	Save(ctx context.Context, collection string, records any) error
}
