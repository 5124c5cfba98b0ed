package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) (*DocumentStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewDocumentStore(client), mr
}

func TestDocumentStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	in := []record{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	if err := store.Save(context.Background(), "things", in); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out []record
	if err := store.Load(context.Background(), "things", &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("unexpected round trip result: %+v", out)
	}
}

func TestDocumentStore_MissingKey(t *testing.T) {
	store, _ := newTestStore(t)

	var out []record
	if err := store.Load(context.Background(), "absent", &out); err != nil {
		t.Fatalf("missing key must not error, got %v", err)
	}
	if out != nil {
		t.Fatalf("missing key must leave out untouched, got %+v", out)
	}
}

func TestDocumentStore_MalformedDataDegradesToEmpty(t *testing.T) {
	store, mr := newTestStore(t)
	if err := mr.Set(key("things"), "{not json"); err != nil {
		t.Fatalf("seed malformed data: %v", err)
	}

	var out []record
	if err := store.Load(context.Background(), "things", &out); err != nil {
		t.Fatalf("malformed data must not error, got %v", err)
	}
	if out != nil {
		t.Fatalf("malformed data must degrade to empty, got %+v", out)
	}
}

func TestDocumentStore_WrongTypedDataDegradesToEmpty(t *testing.T) {
	store, mr := newTestStore(t)

	// valid JSON whose first record has a mistyped id
	if err := mr.Set(key("things"), `[{"id":"oops","name":"a"},{"id":2,"name":"b"}]`); err != nil {
		t.Fatalf("seed wrong-typed data: %v", err)
	}

	var out []record
	if err := store.Load(context.Background(), "things", &out); err != nil {
		t.Fatalf("wrong-typed data must not error, got %v", err)
	}
	if out != nil {
		t.Fatalf("wrong-typed data must not leak partial records, got %+v", out)
	}
}

func TestDocumentStore_SaveReplacesWholeCollection(t *testing.T) {
	store, _ := newTestStore(t)

	_ = store.Save(context.Background(), "things", []record{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
	_ = store.Save(context.Background(), "things", []record{{ID: 3, Name: "c"}})

	var out []record
	_ = store.Load(context.Background(), "things", &out)
	if len(out) != 1 || out[0].ID != 3 {
		t.Fatalf("save must replace the whole collection, got %+v", out)
	}
}
