/*
Package vertex implements CRUD for vertex instances: creation, whole-row
property add/remove, and lookup, on top of the generic KV adapter.
*/
package vertex

import (
	"github.com/krotik/vertexdb/codec"
	"github.com/krotik/vertexdb/errs"
	"github.com/krotik/vertexdb/kvstore"
)

// Handler is stateless apart from its KV reference.
type Handler struct {
	kv kvstore.KV
}

// New returns a vertex Handler over kv.
func New(kv kvstore.KV) *Handler {
	return &Handler{kv: kv}
}

// Create writes a vertex row with an empty properties blob.
func (h *Handler) Create(id string, label uint64) (codec.Vertex, error) {
	v := codec.Vertex{ID: id, Label: label}
	key, value, err := codec.EncodeVertex(v)
	if err != nil {
		return codec.Vertex{}, err
	}
	if err := h.kv.Put(kvstore.TreeVertex, key, value); err != nil {
		return codec.Vertex{}, err
	}
	return v, nil
}

// Get looks up a vertex by id.
func (h *Handler) Get(id string) (codec.Vertex, bool, error) {
	key, err := codec.EncodeVertexKey(id)
	if err != nil {
		return codec.Vertex{}, false, err
	}
	value, ok, err := h.kv.Get(kvstore.TreeVertex, key)
	if err != nil || !ok {
		return codec.Vertex{}, false, err
	}
	v, err := codec.DecodeVertex(key, value)
	return v, err == nil, err
}

// Remove deletes a vertex row. It does NOT cascade to incident edges
// — see DESIGN.md.
func (h *Handler) Remove(id string) error {
	key, err := codec.EncodeVertexKey(id)
	if err != nil {
		return err
	}
	return h.kv.Delete(kvstore.TreeVertex, key)
}

// AddProperty allocates a new prop_id from this vertex's own counter,
// appends the property record, and rewrites the whole row.
func (h *Handler) AddProperty(id string, keyID uint64, value string) error {
	v, ok, err := h.Get(id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.Semanticf("no such vertex: %s", id)
	}

	propID, err := h.nextPropID(id)
	if err != nil {
		return err
	}
	blob, err := codec.AddProperty(v.Properties, keyID, propID, value)
	if err != nil {
		return err
	}
	v.Properties = blob

	key, encoded, err := codec.EncodeVertex(v)
	if err != nil {
		return err
	}
	return h.kv.Put(kvstore.TreeVertex, key, encoded)
}

// RemoveProperty removes either all values under keyID (propIDs empty)
// or only the listed prop_ids, and rewrites the whole row.
func (h *Handler) RemoveProperty(id string, keyID uint64, propIDs []uint64) error {
	v, ok, err := h.Get(id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.Semanticf("no such vertex: %s", id)
	}

	blob, err := codec.RemoveProperty(v.Properties, keyID, propIDs)
	if err != nil {
		return err
	}
	v.Properties = blob

	key, encoded, err := codec.EncodeVertex(v)
	if err != nil {
		return err
	}
	return h.kv.Put(kvstore.TreeVertex, key, encoded)
}

func (h *Handler) nextPropID(vertexID string) (uint64, error) {
	counterKey := []byte("VERTEX_PROP_AUTO_INCREMENT_ID_" + vertexID)
	return kvstore.Increment(h.kv, kvstore.TreeVertex, counterKey)
}
