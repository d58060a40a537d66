package codec

import "github.com/krotik/vertexdb/buffer"

// Property is one decoded record from a properties blob.
type Property struct {
	KeyID  uint64
	PropID uint64
	Value  string
}

// PropertyPredicate is the tagged-variant filter for the property
// iterator. A boxed trait-object closure over
// (key_id, prop_id, value) is equivalent to this small closed variant;
// the variant keeps the iterator monomorphic instead of requiring a
// heap-allocated function value per call.
type PropertyPredicate struct {
	all   bool
	keyID uint64
}

// AllProperties matches every record in the blob.
func AllProperties() PropertyPredicate { return PropertyPredicate{all: true} }

// ByKey matches only records whose KeyID equals keyID.
func ByKey(keyID uint64) PropertyPredicate { return PropertyPredicate{keyID: keyID} }

func (p PropertyPredicate) match(keyID uint64) bool {
	return p.all || p.keyID == keyID
}

// IterProperties walks a properties blob, invoking fn for every record
// matching pred, in blob (insertion) order. It stops and returns fn's
// error immediately if fn returns one. A malformed blob surfaces a
// CodecError rather than being silently truncated.
func IterProperties(blob []byte, pred PropertyPredicate, fn func(Property) error) error {
	b := buffer.From(blob)
	for b.HasRemaining() {
		keyID, err := b.GetU64()
		if err != nil {
			return err
		}
		if _, err = b.GetU64(); err != nil { // value_len: redundant with the terminator, kept for wire compatibility
			return err
		}
		propID, err := b.GetU64()
		if err != nil {
			return err
		}
		value, err := b.GetString()
		if err != nil {
			return err
		}
		if pred.match(keyID) {
			if err := fn(Property{KeyID: keyID, PropID: propID, Value: value}); err != nil {
				return err
			}
		}
	}
	return nil
}

// GetProperties returns every record in the blob, in insertion order.
func GetProperties(blob []byte) ([]Property, error) {
	var out []Property
	err := IterProperties(blob, AllProperties(), func(p Property) error {
		out = append(out, p)
		return nil
	})
	return out, err
}

// GetProperty returns every record under keyID, in insertion order.
func GetProperty(blob []byte, keyID uint64) ([]Property, error) {
	var out []Property
	err := IterProperties(blob, ByKey(keyID), func(p Property) error {
		out = append(out, p)
		return nil
	})
	return out, err
}

// AddProperty appends one record to blob and returns the new blob.
func AddProperty(blob []byte, keyID, propID uint64, value string) ([]byte, error) {
	rec := buffer.New()
	rec.PutU64(keyID)
	rec.PutU64(uint64(len(value)))
	rec.PutU64(propID)
	if err := rec.PutString(value); err != nil {
		return nil, err
	}
	return append(append([]byte{}, blob...), rec.Bytes()...), nil
}

// RemoveProperty drops records under keyID from blob. If propIDs is
// empty every such record is dropped; otherwise only the records whose
// PropID appears in propIDs are dropped.
func RemoveProperty(blob []byte, keyID uint64, propIDs []uint64) ([]byte, error) {
	keep := func(pid uint64) bool {
		if len(propIDs) == 0 {
			return false
		}
		for _, p := range propIDs {
			if p == pid {
				return false
			}
		}
		return true
	}

	out := buffer.New()
	err := IterProperties(blob, AllProperties(), func(p Property) error {
		if p.KeyID == keyID && !keep(p.PropID) {
			return nil
		}
		rec, err := AddProperty(nil, p.KeyID, p.PropID, p.Value)
		if err != nil {
			return err
		}
		out.PutSlice(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
