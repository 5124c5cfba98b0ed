package memory

import (
	"context"
	"testing"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore()

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

func TestStore_MissingCollection(t *testing.T) {
	store := NewStore()

	var out []record
	if err := store.Load(context.Background(), "absent", &out); err != nil {
		t.Fatalf("missing collection must not error, got %v", err)
	}
	if out != nil {
		t.Fatalf("missing collection must leave out untouched, got %+v", out)
	}
}

func TestStore_WrongTypedDataDegradesToEmpty(t *testing.T) {
	store := NewStore()

	// valid JSON whose first record has a mistyped id
	stored := []map[string]any{
		{"id": "oops", "name": "a"},
		{"id": 2, "name": "b"},
	}
	if err := store.Save(context.Background(), "things", stored); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out []record
	if err := store.Load(context.Background(), "things", &out); err != nil {
		t.Fatalf("wrong-typed data must not error, got %v", err)
	}
	if out != nil {
		t.Fatalf("wrong-typed data must not leak partial records, got %+v", out)
	}
}

func TestStore_SaveReplacesWholeCollection(t *testing.T) {
	store := NewStore()

	_ = store.Save(context.Background(), "things", []record{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
	_ = store.Save(context.Background(), "things", []record{{ID: 3, Name: "c"}})

	var out []record
	_ = store.Load(context.Background(), "things", &out)
	if len(out) != 1 || out[0].ID != 3 {
		t.Fatalf("save must replace the whole collection, got %+v", out)
	}
}
