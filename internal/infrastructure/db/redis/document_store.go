package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rbac:collection:"

// DocumentStore persists whole collections as JSON blobs, one Redis key per
// collection. A missing key or an undecodable blob degrades to an empty
// collection rather than an error.
type DocumentStore struct {
	client *redis.Client
}

// NewDocumentStore creates a DocumentStore wrapping the given Redis client.
func NewDocumentStore(client *redis.Client) *DocumentStore {
	return &DocumentStore{client: client}
}

// Load fills out with the stored collection. Absent or malformed data leaves
// out untouched.
func (s *DocumentStore) Load(ctx context.Context, collection string, out any) error {
	data, err := s.client.Get(ctx, key(collection)).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}
	// malformed stored data degrades to an empty collection; decoding into
	// a scratch value keeps a partial decode from reaching out
	tmp := reflect.New(reflect.TypeOf(out).Elem())
	if err := json.Unmarshal(data, tmp.Interface()); err != nil {
		return nil
	}
	reflect.ValueOf(out).Elem().Set(tmp.Elem())
	return nil
}

// Save replaces the stored collection with records in a single write.
func (s *DocumentStore) Save(ctx context.Context, collection string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	if err := s.client.Set(ctx, key(collection), data, 0).Err(); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

func key(collection string) string {
	return keyPrefix + collection
}
