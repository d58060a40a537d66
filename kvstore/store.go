/*
Package kvstore defines the narrow KV adapter contract required of
the external ordered store, and provides two implementations: MemStore
(an in-process, btree-ordered map used by every handler/planner test so
the suite never touches disk) and BadgerStore (a disk-backed engine on
top of dgraph-io/badger/v4).

Trees are logical namespaces (SCHEMA, VERTEX, EDGE); both implementations
multiplex them over a single physical keyspace by prefixing every key
with a one-byte tree tag, the same technique nornicdb's BadgerEngine uses
to multiplex nodes/edges/indexes over one badger.DB.
*/
package kvstore

// Tree names a logical keyspace multiplexed over one physical store.
type Tree string

const (
	TreeSchema Tree = "SCHEMA"
	TreeVertex Tree = "VERTEX"
	TreeEdge   Tree = "EDGE"
)

// KV is the uniform interface every handler is written against. It is
// intentionally narrow: get/put/delete/scan_prefix plus one atomic
// read-modify-write primitive, matching original_source's SledEngine
// one-for-one.
type KV interface {
	// Get returns the value under key, or ok=false if absent.
	Get(tree Tree, key []byte) (value []byte, ok bool, err error)

	// Put writes key=value, overwriting any existing value.
	Put(tree Tree, key, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(tree Tree, key []byte) error

	// ScanPrefix invokes fn for every (key, value) pair whose key has
	// the given prefix, in ascending key order. It stops early if fn
	// returns false.
	ScanPrefix(tree Tree, prefix []byte, fn func(key, value []byte) bool) error

	// UpdateAndFetch atomically applies f to the current value under
	// key (nil if absent) and stores whatever f returns, as a single
	// compare-and-swap step. It returns the stored value. f returning
	// nil deletes the key.
	UpdateAndFetch(tree Tree, key []byte, f func(old []byte, had bool) []byte) (newValue []byte, err error)

	// Close releases any underlying resources.
	Close() error
}

// Increment is the counter helper built on UpdateAndFetch, it
// returns the post-increment value, starting at 0 on the first call for
// a given (tree, key).
func Increment(kv KV, tree Tree, key []byte) (uint64, error) {
	var result uint64
	_, err := kv.UpdateAndFetch(tree, key, func(old []byte, had bool) []byte {
		var n uint64
		if had {
			n = bytesToU64(old) + 1
		}
		result = n
		return u64ToBytes(n)
	})
	return result, err
}

func u64ToBytes(v uint64) []byte {
	return []byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	}
}

func bytesToU64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8 && i < len(b); i++ {
		v = v<<8 | uint64(b[i])
	}
	return v
}
