package mongo

import (
	"context"
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionsCollection = "collections"

// DocumentStore persists whole collections as single documents of the form
// {_id: <name>, records: [...]}. Save replaces the document wholesale, which
// keeps the collection write atomic from the caller's perspective.
type DocumentStore struct {
	coll *mongo.Collection
}

// NewDocumentStore creates a DocumentStore backed by the given database.
func NewDocumentStore(db *mongo.Database) *DocumentStore {
	return &DocumentStore{coll: db.Collection(collectionsCollection)}
}

// Load fills out with the stored collection. An absent document or
// undecodable records leave out untouched.
func (s *DocumentStore) Load(ctx context.Context, collection string, out any) error {
	raw, err := s.coll.FindOne(ctx, bson.M{"_id": collection}).Raw()
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}
	// malformed stored data degrades to an empty collection; decoding into
	// a scratch value keeps a partial decode from reaching out
	tmp := reflect.New(reflect.TypeOf(out).Elem())
	if err := raw.Lookup("records").Unmarshal(tmp.Interface()); err != nil {
		return nil
	}
	reflect.ValueOf(out).Elem().Set(tmp.Elem())
	return nil
}

// Save replaces the stored collection with records in one upsert.
func (s *DocumentStore) Save(ctx context.Context, collection string, records any) error {
	doc := bson.M{"_id": collection, "records": records}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": collection}, doc, opts); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}
