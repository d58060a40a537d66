/*
Package codec implements the key/value byte layouts: every schema
object, vertex, edge and properties blob this engine persists is encoded
and decoded here, and nowhere else. Big-endian integers keep lexicographic
byte order equal to numeric order; strings are terminated (see package
buffer) so multi-field keys remain unambiguous to re-split on read.
*/
package codec

import (
	"github.com/krotik/vertexdb/buffer"
	"github.com/krotik/vertexdb/model"
)

// VertexLabel is the {id, name} schema object for a vertex kind.
type VertexLabel struct {
	ID   uint64
	Name string
}

// EdgeLabel is the {id, name, multiplicity} schema object for an edge kind.
type EdgeLabel struct {
	ID           uint64
	Name         string
	Multiplicity model.Multiplicity
}

// PropertyKey is the {id, name, cardinality} schema object for a property
// slot.
type PropertyKey struct {
	ID          uint64
	Name        string
	Cardinality model.Cardinality
}

// VertexLabelPrefix is the scan_prefix argument that enumerates every
// VertexLabel row.
func VertexLabelPrefix() []byte { return []byte{byte(model.KindVertexLabel)} }

// EdgeLabelPrefix is the scan_prefix argument that enumerates every
// EdgeLabel row.
func EdgeLabelPrefix() []byte { return []byte{byte(model.KindEdgeLabel)} }

// PropertyKeyPrefix is the scan_prefix argument that enumerates every
// PropertyKey row.
func PropertyKeyPrefix() []byte { return []byte{byte(model.KindPropertyKey)} }

func schemaKey(kind model.Kind, id uint64) []byte {
	b := buffer.New()
	b.PutU8(byte(kind))
	b.PutU64(id)
	return b.Bytes()
}

// EncodeVertexLabel returns the (key, value) pair for v.
func EncodeVertexLabel(v VertexLabel) (key, value []byte, err error) {
	key = schemaKey(model.KindVertexLabel, v.ID)
	vb := buffer.New()
	if err = vb.PutString(v.Name); err != nil {
		return nil, nil, err
	}
	return key, vb.Bytes(), nil
}

// DecodeVertexLabel parses a VertexLabel from a (key, value) pair.
func DecodeVertexLabel(key, value []byte) (VertexLabel, error) {
	id, err := decodeSchemaID(model.KindVertexLabel, key)
	if err != nil {
		return VertexLabel{}, err
	}
	vb := buffer.From(value)
	name, err := vb.GetString()
	if err != nil {
		return VertexLabel{}, err
	}
	return VertexLabel{ID: id, Name: name}, nil
}

// EncodeEdgeLabel returns the (key, value) pair for e.
func EncodeEdgeLabel(e EdgeLabel) (key, value []byte, err error) {
	key = schemaKey(model.KindEdgeLabel, e.ID)
	vb := buffer.New()
	if err = vb.PutString(e.Name); err != nil {
		return nil, nil, err
	}
	vb.PutU8(byte(e.Multiplicity))
	return key, vb.Bytes(), nil
}

// DecodeEdgeLabel parses an EdgeLabel from a (key, value) pair.
func DecodeEdgeLabel(key, value []byte) (EdgeLabel, error) {
	id, err := decodeSchemaID(model.KindEdgeLabel, key)
	if err != nil {
		return EdgeLabel{}, err
	}
	vb := buffer.From(value)
	name, err := vb.GetString()
	if err != nil {
		return EdgeLabel{}, err
	}
	mb, err := vb.GetU8()
	if err != nil {
		return EdgeLabel{}, err
	}
	mult, err := model.MultiplicityFromByte(mb)
	if err != nil {
		return EdgeLabel{}, err
	}
	return EdgeLabel{ID: id, Name: name, Multiplicity: mult}, nil
}

// EncodePropertyKey returns the (key, value) pair for p.
func EncodePropertyKey(p PropertyKey) (key, value []byte, err error) {
	key = schemaKey(model.KindPropertyKey, p.ID)
	vb := buffer.New()
	if err = vb.PutString(p.Name); err != nil {
		return nil, nil, err
	}
	vb.PutU8(byte(p.Cardinality))
	return key, vb.Bytes(), nil
}

// DecodePropertyKey parses a PropertyKey from a (key, value) pair.
func DecodePropertyKey(key, value []byte) (PropertyKey, error) {
	id, err := decodeSchemaID(model.KindPropertyKey, key)
	if err != nil {
		return PropertyKey{}, err
	}
	vb := buffer.From(value)
	name, err := vb.GetString()
	if err != nil {
		return PropertyKey{}, err
	}
	cb, err := vb.GetU8()
	if err != nil {
		return PropertyKey{}, err
	}
	card, err := model.CardinalityFromByte(cb)
	if err != nil {
		return PropertyKey{}, err
	}
	return PropertyKey{ID: id, Name: name, Cardinality: card}, nil
}

func decodeSchemaID(want model.Kind, key []byte) (uint64, error) {
	kb := buffer.From(key)
	k, err := kb.GetU8()
	if err != nil {
		return 0, err
	}
	if model.Kind(k) != want {
		return 0, codecKindMismatch(want, model.Kind(k))
	}
	return kb.GetU64()
}
