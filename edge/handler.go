/*
Package edge implements CRUD for edge instances. Every write touches
both the OUT-indexed and the IN-indexed row so traversal from either
endpoint is a prefix scan; the two rows are written IN-then-OUT,
matching the concrete reference engine this package is grounded on (see
DESIGN.md for the open-question rationale).
*/
package edge

import (
	"strconv"

	"github.com/krotik/vertexdb/codec"
	"github.com/krotik/vertexdb/kvstore"
	"github.com/krotik/vertexdb/model"
)

// edgeIDKey is the reserved global edge-id counter.
var edgeIDKey = []byte("EDGE_AUTO_INCREMENT_ID")

// Handler is stateless apart from its KV reference.
type Handler struct {
	kv kvstore.KV
}

// New returns an edge Handler over kv.
func New(kv kvstore.KV) *Handler {
	return &Handler{kv: kv}
}

// Create allocates a global edge_id and writes both rows with an empty
// properties blob.
func (h *Handler) Create(src, dst string, label uint64) (codec.Edge, error) {
	edgeID, err := kvstore.Increment(h.kv, kvstore.TreeEdge, edgeIDKey)
	if err != nil {
		return codec.Edge{}, err
	}
	e := codec.Edge{SrcID: src, DstID: dst, Label: label, EdgeID: edgeID}
	if err := h.writeBothRows(e); err != nil {
		return codec.Edge{}, err
	}
	return e, nil
}

// writeBothRows persists e under both its IN and OUT keys, IN first.
func (h *Handler) writeBothRows(e codec.Edge) error {
	inKey, err := codec.EncodeInEdgeKey(e)
	if err != nil {
		return err
	}
	outKey, err := codec.EncodeOutEdgeKey(e)
	if err != nil {
		return err
	}
	value := codec.EncodeEdgeValue(e)

	if err := h.kv.Put(kvstore.TreeEdge, inKey, value); err != nil {
		return err
	}
	return h.kv.Put(kvstore.TreeEdge, outKey, value)
}

// Get reads the row for (src, dst, label, edgeID) from the requested
// direction's key layout.
func (h *Handler) Get(src, dst string, label, edgeID uint64, dir model.Direction) (codec.Edge, bool, error) {
	e := codec.Edge{SrcID: src, DstID: dst, Label: label, EdgeID: edgeID}

	var key []byte
	var err error
	if dir == model.Out {
		key, err = codec.EncodeOutEdgeKey(e)
	} else {
		key, err = codec.EncodeInEdgeKey(e)
	}
	if err != nil {
		return codec.Edge{}, false, err
	}

	value, ok, err := h.kv.Get(kvstore.TreeEdge, key)
	if err != nil || !ok {
		return codec.Edge{}, false, err
	}

	if dir == model.Out {
		e, err = codec.DecodeOutEdge(key, value)
	} else {
		e, err = codec.DecodeInEdge(key, value)
	}
	return e, err == nil, err
}

// Remove deletes both rows for e.
func (h *Handler) Remove(e codec.Edge) error {
	inKey, err := codec.EncodeInEdgeKey(e)
	if err != nil {
		return err
	}
	outKey, err := codec.EncodeOutEdgeKey(e)
	if err != nil {
		return err
	}
	if err := h.kv.Delete(kvstore.TreeEdge, inKey); err != nil {
		return err
	}
	return h.kv.Delete(kvstore.TreeEdge, outKey)
}

// AddProperty allocates a new prop_id from this edge's own counter,
// appends the property record, and rewrites both rows.
func (h *Handler) AddProperty(e *codec.Edge, keyID uint64, value string) error {
	propID, err := h.nextPropID(e.EdgeID)
	if err != nil {
		return err
	}
	blob, err := codec.AddProperty(e.Properties, keyID, propID, value)
	if err != nil {
		return err
	}
	e.Properties = blob
	return h.writeBothRows(*e)
}

// RemoveProperty removes either all values under keyID (propIDs empty)
// or only the listed prop_ids, and rewrites both rows.
func (h *Handler) RemoveProperty(e *codec.Edge, keyID uint64, propIDs []uint64) error {
	blob, err := codec.RemoveProperty(e.Properties, keyID, propIDs)
	if err != nil {
		return err
	}
	e.Properties = blob
	return h.writeBothRows(*e)
}

func (h *Handler) nextPropID(edgeID uint64) (uint64, error) {
	counterKey := []byte("EDGE_PROP_AUTO_INCREMENT_ID_" + strconv.FormatUint(edgeID, 10))
	return kvstore.Increment(h.kv, kvstore.TreeEdge, counterKey)
}
