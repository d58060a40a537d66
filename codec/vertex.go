package codec

import (
	"bytes"

	"github.com/krotik/vertexdb/buffer"
	"github.com/krotik/vertexdb/model"
)

// Vertex is the persisted {id, label, properties} instance row.
type Vertex struct {
	ID         string
	Label      uint64
	Properties []byte
}

// VertexPrefix is the scan_prefix argument that enumerates every Vertex
// row in ID order.
func VertexPrefix() []byte { return []byte{byte(model.KindVertex)} }

// EncodeVertexKey builds the key for vertex id. Lexicographic order of
// keys for distinct ids matches lexicographic order of the ids, since
// the key is the kind byte, the raw id bytes and the 0x00 terminator,
// which sorts below every other byte.
func EncodeVertexKey(id string) ([]byte, error) {
	b := buffer.New()
	b.PutU8(byte(model.KindVertex))
	if err := b.PutString(id); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// EncodeVertex returns the (key, value) pair for v.
func EncodeVertex(v Vertex) (key, value []byte, err error) {
	key, err = EncodeVertexKey(v.ID)
	if err != nil {
		return nil, nil, err
	}
	vb := buffer.New()
	vb.PutU64(v.Label)
	vb.PutSlice(v.Properties)
	return key, vb.Bytes(), nil
}

// DecodeVertex parses a Vertex from a (key, value) pair.
func DecodeVertex(key, value []byte) (Vertex, error) {
	kb := buffer.From(key)
	k, err := kb.GetU8()
	if err != nil {
		return Vertex{}, err
	}
	if model.Kind(k) != model.KindVertex {
		return Vertex{}, codecKindMismatch(model.KindVertex, model.Kind(k))
	}
	id, err := kb.GetString()
	if err != nil {
		return Vertex{}, err
	}
	vb := buffer.From(value)
	label, err := vb.GetU64()
	if err != nil {
		return Vertex{}, err
	}
	return Vertex{ID: id, Label: label, Properties: append([]byte{}, vb.Remaining()...)}, nil
}

// VertexKeyInRange reports whether vertex id falls in the half- or
// fully-bounded range [lo, hi] over vertex ids. A nil bound
// is unconstrained on that side.
func VertexKeyInRange(id string, lo, hi *string) bool {
	if lo != nil && bytes.Compare([]byte(id), []byte(*lo)) < 0 {
		return false
	}
	if hi != nil && bytes.Compare([]byte(id), []byte(*hi)) > 0 {
		return false
	}
	return true
}
