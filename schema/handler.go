/*
Package schema implements CRUD for vertex labels, edge labels and
property keys: the three schema object kinds sharing a single ID space
allocated by the SCHEMA tree's monotonic counter.
*/
package schema

import (
	"github.com/krotik/vertexdb/codec"
	"github.com/krotik/vertexdb/errs"
	"github.com/krotik/vertexdb/kvstore"
	"github.com/krotik/vertexdb/model"
)

// schemaIDKey is the reserved counter key shared by all three schema
// kinds; it starts with a printable ASCII byte so it sorts outside any
// valid entity prefix (0x01..0x07).
var schemaIDKey = []byte("SCHEMA_ID")

// Handler is stateless apart from its KV reference.
type Handler struct {
	kv kvstore.KV
}

// New returns a schema Handler over kv.
func New(kv kvstore.KV) *Handler {
	return &Handler{kv: kv}
}

// nextID allocates the next schema id. The raw KV increment helper is
// 0-based, but the first created schema object must have id 1 — so
// schema ids are the increment result plus one; edge-id and
// per-element property-id counters stay 0-based (see DESIGN.md).
func (h *Handler) nextID() (uint64, error) {
	n, err := kvstore.Increment(h.kv, kvstore.TreeSchema, schemaIDKey)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

// CreateVertexLabel allocates an id and persists {id, name}.
func (h *Handler) CreateVertexLabel(name string) (uint64, error) {
	id, err := h.nextID()
	if err != nil {
		return 0, err
	}
	key, value, err := codec.EncodeVertexLabel(codec.VertexLabel{ID: id, Name: name})
	if err != nil {
		return 0, err
	}
	if err := h.kv.Put(kvstore.TreeSchema, key, value); err != nil {
		return 0, err
	}
	return id, nil
}

// GetVertexLabel looks up a vertex label by id.
func (h *Handler) GetVertexLabel(id uint64) (codec.VertexLabel, bool, error) {
	key, _, err := codec.EncodeVertexLabel(codec.VertexLabel{ID: id})
	if err != nil {
		return codec.VertexLabel{}, false, err
	}
	value, ok, err := h.kv.Get(kvstore.TreeSchema, key)
	if err != nil || !ok {
		return codec.VertexLabel{}, false, err
	}
	v, err := codec.DecodeVertexLabel(key, value)
	return v, err == nil, err
}

// GetVertexLabels returns every vertex label, via a full prefix scan.
func (h *Handler) GetVertexLabels() ([]codec.VertexLabel, error) {
	var out []codec.VertexLabel
	var first error
	err := h.kv.ScanPrefix(kvstore.TreeSchema, codec.VertexLabelPrefix(), func(key, value []byte) bool {
		v, derr := codec.DecodeVertexLabel(key, value)
		if derr != nil {
			first = derr
			return false
		}
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, first
}

// GetVertexLabelByName does a full prefix scan filtered by name
// equality — acceptable because the schema object count is small.
func (h *Handler) GetVertexLabelByName(name string) (codec.VertexLabel, bool, error) {
	labels, err := h.GetVertexLabels()
	if err != nil {
		return codec.VertexLabel{}, false, err
	}
	for _, l := range labels {
		if l.Name == name {
			return l, true, nil
		}
	}
	return codec.VertexLabel{}, false, nil
}

// UpdateVertexLabel renames a vertex label in place.
func (h *Handler) UpdateVertexLabel(id uint64, name string) error {
	key, value, err := codec.EncodeVertexLabel(codec.VertexLabel{ID: id, Name: name})
	if err != nil {
		return err
	}
	return h.kv.Put(kvstore.TreeSchema, key, value)
}

// RemoveVertexLabel deletes a vertex label.
func (h *Handler) RemoveVertexLabel(id uint64) error {
	key, _, err := codec.EncodeVertexLabel(codec.VertexLabel{ID: id})
	if err != nil {
		return err
	}
	return h.kv.Delete(kvstore.TreeSchema, key)
}

// CreateEdgeLabel allocates an id and persists {id, name, multiplicity}.
func (h *Handler) CreateEdgeLabel(name string, mult model.Multiplicity) (uint64, error) {
	id, err := h.nextID()
	if err != nil {
		return 0, err
	}
	key, value, err := codec.EncodeEdgeLabel(codec.EdgeLabel{ID: id, Name: name, Multiplicity: mult})
	if err != nil {
		return 0, err
	}
	if err := h.kv.Put(kvstore.TreeSchema, key, value); err != nil {
		return 0, err
	}
	return id, nil
}

// GetEdgeLabel looks up an edge label by id.
func (h *Handler) GetEdgeLabel(id uint64) (codec.EdgeLabel, bool, error) {
	key, _, err := codec.EncodeEdgeLabel(codec.EdgeLabel{ID: id, Multiplicity: model.One2One})
	if err != nil {
		return codec.EdgeLabel{}, false, err
	}
	value, ok, err := h.kv.Get(kvstore.TreeSchema, key)
	if err != nil || !ok {
		return codec.EdgeLabel{}, false, err
	}
	e, err := codec.DecodeEdgeLabel(key, value)
	return e, err == nil, err
}

// GetEdgeLabels returns every edge label.
func (h *Handler) GetEdgeLabels() ([]codec.EdgeLabel, error) {
	var out []codec.EdgeLabel
	var first error
	err := h.kv.ScanPrefix(kvstore.TreeSchema, codec.EdgeLabelPrefix(), func(key, value []byte) bool {
		e, derr := codec.DecodeEdgeLabel(key, value)
		if derr != nil {
			first = derr
			return false
		}
		out = append(out, e)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, first
}

// GetEdgeLabelByName does a full prefix scan filtered by name equality.
func (h *Handler) GetEdgeLabelByName(name string) (codec.EdgeLabel, bool, error) {
	labels, err := h.GetEdgeLabels()
	if err != nil {
		return codec.EdgeLabel{}, false, err
	}
	for _, l := range labels {
		if l.Name == name {
			return l, true, nil
		}
	}
	return codec.EdgeLabel{}, false, nil
}

// UpdateEdgeLabel renames an edge label, preserving its immutable
// multiplicity via an atomic update_and_fetch.
func (h *Handler) UpdateEdgeLabel(id uint64, name string) error {
	key, _, err := codec.EncodeEdgeLabel(codec.EdgeLabel{ID: id, Multiplicity: model.One2One})
	if err != nil {
		return err
	}

	var ferr error
	_, err = h.kv.UpdateAndFetch(kvstore.TreeSchema, key, func(old []byte, had bool) []byte {
		if !had {
			ferr = errs.Semanticf("no such edge label: %d", id)
			return old
		}
		existing, derr := codec.DecodeEdgeLabel(key, old)
		if derr != nil {
			ferr = derr
			return old
		}
		_, value, eerr := codec.EncodeEdgeLabel(codec.EdgeLabel{ID: id, Name: name, Multiplicity: existing.Multiplicity})
		if eerr != nil {
			ferr = eerr
			return old
		}
		return value
	})
	if err != nil {
		return err
	}
	return ferr
}

// RemoveEdgeLabel deletes an edge label.
func (h *Handler) RemoveEdgeLabel(id uint64) error {
	key, _, err := codec.EncodeEdgeLabel(codec.EdgeLabel{ID: id, Multiplicity: model.One2One})
	if err != nil {
		return err
	}
	return h.kv.Delete(kvstore.TreeSchema, key)
}

// CreatePropertyKey allocates an id and persists {id, name, cardinality}.
func (h *Handler) CreatePropertyKey(name string, card model.Cardinality) (uint64, error) {
	id, err := h.nextID()
	if err != nil {
		return 0, err
	}
	key, value, err := codec.EncodePropertyKey(codec.PropertyKey{ID: id, Name: name, Cardinality: card})
	if err != nil {
		return 0, err
	}
	if err := h.kv.Put(kvstore.TreeSchema, key, value); err != nil {
		return 0, err
	}
	return id, nil
}

// GetPropertyKey looks up a property key by id.
func (h *Handler) GetPropertyKey(id uint64) (codec.PropertyKey, bool, error) {
	key, _, err := codec.EncodePropertyKey(codec.PropertyKey{ID: id, Cardinality: model.Single})
	if err != nil {
		return codec.PropertyKey{}, false, err
	}
	value, ok, err := h.kv.Get(kvstore.TreeSchema, key)
	if err != nil || !ok {
		return codec.PropertyKey{}, false, err
	}
	p, err := codec.DecodePropertyKey(key, value)
	return p, err == nil, err
}

// GetPropertyKeys returns every property key.
func (h *Handler) GetPropertyKeys() ([]codec.PropertyKey, error) {
	var out []codec.PropertyKey
	var first error
	err := h.kv.ScanPrefix(kvstore.TreeSchema, codec.PropertyKeyPrefix(), func(key, value []byte) bool {
		p, derr := codec.DecodePropertyKey(key, value)
		if derr != nil {
			first = derr
			return false
		}
		out = append(out, p)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, first
}

// GetPropertyKeyByName does a full prefix scan filtered by name equality.
func (h *Handler) GetPropertyKeyByName(name string) (codec.PropertyKey, bool, error) {
	keys, err := h.GetPropertyKeys()
	if err != nil {
		return codec.PropertyKey{}, false, err
	}
	for _, k := range keys {
		if k.Name == name {
			return k, true, nil
		}
	}
	return codec.PropertyKey{}, false, nil
}

// UpdatePropertyKey renames a property key, preserving its immutable
// cardinality via an atomic update_and_fetch.
func (h *Handler) UpdatePropertyKey(id uint64, name string) error {
	key, _, err := codec.EncodePropertyKey(codec.PropertyKey{ID: id, Cardinality: model.Single})
	if err != nil {
		return err
	}

	var ferr error
	_, err = h.kv.UpdateAndFetch(kvstore.TreeSchema, key, func(old []byte, had bool) []byte {
		if !had {
			ferr = errs.Semanticf("no such property key: %d", id)
			return old
		}
		existing, derr := codec.DecodePropertyKey(key, old)
		if derr != nil {
			ferr = derr
			return old
		}
		_, value, eerr := codec.EncodePropertyKey(codec.PropertyKey{ID: id, Name: name, Cardinality: existing.Cardinality})
		if eerr != nil {
			ferr = eerr
			return old
		}
		return value
	})
	if err != nil {
		return err
	}
	return ferr
}

// RemovePropertyKey deletes a property key.
func (h *Handler) RemovePropertyKey(id uint64) error {
	key, _, err := codec.EncodePropertyKey(codec.PropertyKey{ID: id, Cardinality: model.Single})
	if err != nil {
		return err
	}
	return h.kv.Delete(kvstore.TreeSchema, key)
}
