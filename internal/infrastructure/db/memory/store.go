// Package memory provides an in-process DocumentStore. It is the default
// backend for single-machine runs and the store used throughout the tests.
package memory

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"
)

// Store keeps each collection as a JSON blob, giving it the same value-copy
// semantics as the durable backends.
type Store struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Load fills out with the stored collection. An absent or malformed
// collection leaves out untouched.
func (s *Store) Load(_ context.Context, collection string, out any) error {
	s.mu.Lock()
	data, ok := s.data[collection]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	// decode into a scratch value so a malformed blob cannot leave out
	// partially populated
	tmp := reflect.New(reflect.TypeOf(out).Elem())
	if err := json.Unmarshal(data, tmp.Interface()); err != nil {
		return nil
	}
	reflect.ValueOf(out).Elem().Set(tmp.Elem())
	return nil
}

// Save replaces the stored collection with records.
func (s *Store) Save(_ context.Context, collection string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[collection] = data
	s.mu.Unlock()
	return nil
}
