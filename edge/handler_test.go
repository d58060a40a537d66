package edge_test

import (
	"bytes"
	"testing"

	"github.com/krotik/vertexdb/codec"
	"github.com/krotik/vertexdb/edge"
	"github.com/krotik/vertexdb/kvstore"
	"github.com/krotik/vertexdb/model"
)

func TestEdgeCRUDAndDualRows(t *testing.T) {
	kv := kvstore.NewMemStore()
	h := edge.New(kv)

	e, err := h.Create("xx_1", "xx_2", 1)
	if err != nil {
		t.Fatal(err)
	}
	if e.EdgeID != 0 {
		t.Fatalf("expected first edge_id 0, got %d", e.EdgeID)
	}

	if err := h.AddProperty(&e, 1, "test1"); err != nil {
		t.Fatal(err)
	}
	if err := h.AddProperty(&e, 1, "test2"); err != nil {
		t.Fatal(err)
	}

	got, ok, err := h.Get(e.SrcID, e.DstID, e.Label, e.EdgeID, model.Out)
	if err != nil || !ok {
		t.Fatalf("ok=%v, err=%v", ok, err)
	}
	props, err := codec.GetProperties(got.Properties)
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 2 || props[0].Value != "test1" || props[1].Value != "test2" {
		t.Fatalf("unexpected properties: %+v", props)
	}

	// both rows exist, byte-equal values.
	outKey, _ := codec.EncodeOutEdgeKey(e)
	inKey, _ := codec.EncodeInEdgeKey(e)
	outVal, ok, err := kv.Get(kvstore.TreeEdge, outKey)
	if err != nil || !ok {
		t.Fatalf("missing out row: ok=%v, err=%v", ok, err)
	}
	inVal, ok, err := kv.Get(kvstore.TreeEdge, inKey)
	if err != nil || !ok {
		t.Fatalf("missing in row: ok=%v, err=%v", ok, err)
	}
	if !bytes.Equal(outVal, inVal) {
		t.Fatalf("expected byte-equal out/in row values")
	}

	if err := h.RemoveProperty(&e, 1, nil); err != nil {
		t.Fatal(err)
	}
	got, _, _ = h.Get(e.SrcID, e.DstID, e.Label, e.EdgeID, model.In)
	props, _ = codec.GetProperties(got.Properties)
	if len(props) != 0 {
		t.Fatalf("expected no properties after full removal, got %+v", props)
	}

	if err := h.Remove(e); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := h.Get(e.SrcID, e.DstID, e.Label, e.EdgeID, model.Out); ok {
		t.Fatalf("expected out row removed")
	}
	if _, ok, _ := h.Get(e.SrcID, e.DstID, e.Label, e.EdgeID, model.In); ok {
		t.Fatalf("expected in row removed")
	}
}

func TestEdgeIDsAreMonotonic(t *testing.T) {
	h := edge.New(kvstore.NewMemStore())
	e1, err := h.Create("a", "b", 1)
	if err != nil {
		t.Fatal(err)
	}
	e2, err := h.Create("a", "c", 1)
	if err != nil {
		t.Fatal(err)
	}
	if e1.EdgeID != 0 || e2.EdgeID != 1 {
		t.Fatalf("expected monotonic edge ids 0, 1, got %d, %d", e1.EdgeID, e2.EdgeID)
	}
}
