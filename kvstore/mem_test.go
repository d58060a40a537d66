package kvstore_test

import (
	"testing"

	"github.com/krotik/vertexdb/kvstore"
)

func TestMemStoreCRUD(t *testing.T) {
	m := kvstore.NewMemStore()

	if _, ok, err := m.Get(kvstore.TreeVertex, []byte("k1")); ok || err != nil {
		t.Fatalf("expected absent, got ok=%v err=%v", ok, err)
	}

	if err := m.Put(kvstore.TreeVertex, []byte("k1"), []byte("v1")); err != nil {
		t.Fatal(err)
	}
	v, ok, err := m.Get(kvstore.TreeVertex, []byte("k1"))
	if err != nil || !ok || string(v) != "v1" {
		t.Fatalf("got %q, %v, %v", v, ok, err)
	}

	// same key in a different tree is independent.
	if err := m.Put(kvstore.TreeEdge, []byte("k1"), []byte("v2")); err != nil {
		t.Fatal(err)
	}
	v, _, _ = m.Get(kvstore.TreeEdge, []byte("k1"))
	if string(v) != "v2" {
		t.Fatalf("tree isolation broken: got %q", v)
	}

	if err := m.Delete(kvstore.TreeVertex, []byte("k1")); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := m.Get(kvstore.TreeVertex, []byte("k1")); ok {
		t.Fatalf("expected deleted key to be absent")
	}
}

func TestMemStoreScanPrefixOrder(t *testing.T) {
	m := kvstore.NewMemStore()
	keys := []string{"a2", "a1", "b1", "a3"}
	for _, k := range keys {
		if err := m.Put(kvstore.TreeVertex, []byte(k), []byte(k)); err != nil {
			t.Fatal(err)
		}
	}

	var got []string
	err := m.ScanPrefix(kvstore.TreeVertex, []byte("a"), func(key, value []byte) bool {
		got = append(got, string(key))
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a1", "a2", "a3"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestIncrementStartsAtZeroAndIsMonotonic(t *testing.T) {
	m := kvstore.NewMemStore()
	for i, want := range []uint64{0, 1, 2} {
		got, err := kvstore.Increment(m, kvstore.TreeSchema, []byte("SCHEMA_ID"))
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("call %d: got %d, want %d", i, got, want)
		}
	}
}

func TestUpdateAndFetchDeleteOnNil(t *testing.T) {
	m := kvstore.NewMemStore()
	if err := m.Put(kvstore.TreeVertex, []byte("k"), []byte("v")); err != nil {
		t.Fatal(err)
	}
	_, err := m.UpdateAndFetch(kvstore.TreeVertex, []byte("k"), func(old []byte, had bool) []byte {
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := m.Get(kvstore.TreeVertex, []byte("k")); ok {
		t.Fatalf("expected key removed after UpdateAndFetch returning nil")
	}
}
