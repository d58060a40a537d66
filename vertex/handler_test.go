package vertex_test

import (
	"testing"

	"github.com/krotik/vertexdb/codec"
	"github.com/krotik/vertexdb/kvstore"
	"github.com/krotik/vertexdb/vertex"
)

func TestVertexCRUD(t *testing.T) {
	h := vertex.New(kvstore.NewMemStore())

	if _, err := h.Create("xx_1", 1); err != nil {
		t.Fatal(err)
	}
	if err := h.AddProperty("xx_1", 1, "test1"); err != nil {
		t.Fatal(err)
	}
	if err := h.AddProperty("xx_1", 1, "test2"); err != nil {
		t.Fatal(err)
	}

	v, ok, err := h.Get("xx_1")
	if err != nil || !ok {
		t.Fatalf("ok=%v, err=%v", ok, err)
	}
	props, err := codec.GetProperties(v.Properties)
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 2 || props[0].Value != "test1" || props[1].Value != "test2" {
		t.Fatalf("unexpected properties: %+v", props)
	}

	if err := h.RemoveProperty("xx_1", 1, nil); err != nil {
		t.Fatal(err)
	}
	v, _, _ = h.Get("xx_1")
	props, _ = codec.GetProperties(v.Properties)
	if len(props) != 0 {
		t.Fatalf("expected no properties after full removal, got %+v", props)
	}

	if err := h.Remove("xx_1"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := h.Get("xx_1"); ok {
		t.Fatalf("expected vertex removed")
	}
}

func TestAddPropertyUnknownVertex(t *testing.T) {
	h := vertex.New(kvstore.NewMemStore())
	if err := h.AddProperty("missing", 1, "v"); err == nil {
		t.Fatalf("expected error for unknown vertex")
	}
}
