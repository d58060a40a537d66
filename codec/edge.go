package codec

import (
	"github.com/krotik/vertexdb/buffer"
	"github.com/krotik/vertexdb/model"
)

// Edge is the persisted edge instance. The same value is stored twice,
// once under an OUT key and once under an IN key, so traversal from
// either endpoint is a prefix scan (both rows exist, or
// neither does).
type Edge struct {
	SrcID      string
	DstID      string
	Label      uint64
	EdgeID     uint64
	Properties []byte
}

// OutEdgePrefix enumerates every OutEdge row, optionally narrowed to a
// fixed source vertex and/or label. Passing an empty src with a label
// set is not meaningful and returns the kind-only prefix.
func OutEdgePrefix(src string, label *uint64) ([]byte, error) {
	b := buffer.New()
	b.PutU8(byte(model.KindOutEdge))
	if src == "" {
		return b.Bytes(), nil
	}
	if err := b.PutString(src); err != nil {
		return nil, err
	}
	if label != nil {
		b.PutU64(*label)
	}
	return b.Bytes(), nil
}

// InEdgePrefix enumerates every InEdge row, optionally narrowed to a
// fixed destination vertex and/or label.
func InEdgePrefix(dst string, label *uint64) ([]byte, error) {
	b := buffer.New()
	b.PutU8(byte(model.KindInEdge))
	if dst == "" {
		return b.Bytes(), nil
	}
	if err := b.PutString(dst); err != nil {
		return nil, err
	}
	if label != nil {
		b.PutU64(*label)
	}
	return b.Bytes(), nil
}

// EncodeOutEdgeKey builds 0x06 ‖ src ‖ label ‖ dst ‖ edge_id.
func EncodeOutEdgeKey(e Edge) ([]byte, error) {
	b := buffer.New()
	b.PutU8(byte(model.KindOutEdge))
	if err := b.PutString(e.SrcID); err != nil {
		return nil, err
	}
	b.PutU64(e.Label)
	if err := b.PutString(e.DstID); err != nil {
		return nil, err
	}
	b.PutU64(e.EdgeID)
	return b.Bytes(), nil
}

// EncodeInEdgeKey builds 0x05 ‖ dst ‖ label ‖ src ‖ edge_id.
func EncodeInEdgeKey(e Edge) ([]byte, error) {
	b := buffer.New()
	b.PutU8(byte(model.KindInEdge))
	if err := b.PutString(e.DstID); err != nil {
		return nil, err
	}
	b.PutU64(e.Label)
	if err := b.PutString(e.SrcID); err != nil {
		return nil, err
	}
	b.PutU64(e.EdgeID)
	return b.Bytes(), nil
}

// EncodeEdgeValue encodes the shared value payload of both edge rows.
func EncodeEdgeValue(e Edge) []byte {
	b := buffer.New()
	b.PutSlice(e.Properties)
	return b.Bytes()
}

// DecodeOutEdge parses an Edge from an OUT (key, value) pair.
func DecodeOutEdge(key, value []byte) (Edge, error) {
	kb := buffer.From(key)
	k, err := kb.GetU8()
	if err != nil {
		return Edge{}, err
	}
	if model.Kind(k) != model.KindOutEdge {
		return Edge{}, codecKindMismatch(model.KindOutEdge, model.Kind(k))
	}
	src, err := kb.GetString()
	if err != nil {
		return Edge{}, err
	}
	label, err := kb.GetU64()
	if err != nil {
		return Edge{}, err
	}
	dst, err := kb.GetString()
	if err != nil {
		return Edge{}, err
	}
	edgeID, err := kb.GetU64()
	if err != nil {
		return Edge{}, err
	}
	return Edge{SrcID: src, DstID: dst, Label: label, EdgeID: edgeID, Properties: append([]byte{}, value...)}, nil
}

// DecodeInEdge parses an Edge from an IN (key, value) pair.
func DecodeInEdge(key, value []byte) (Edge, error) {
	kb := buffer.From(key)
	k, err := kb.GetU8()
	if err != nil {
		return Edge{}, err
	}
	if model.Kind(k) != model.KindInEdge {
		return Edge{}, codecKindMismatch(model.KindInEdge, model.Kind(k))
	}
	dst, err := kb.GetString()
	if err != nil {
		return Edge{}, err
	}
	label, err := kb.GetU64()
	if err != nil {
		return Edge{}, err
	}
	src, err := kb.GetString()
	if err != nil {
		return Edge{}, err
	}
	edgeID, err := kb.GetU64()
	if err != nil {
		return Edge{}, err
	}
	return Edge{SrcID: src, DstID: dst, Label: label, EdgeID: edgeID, Properties: append([]byte{}, value...)}, nil
}
