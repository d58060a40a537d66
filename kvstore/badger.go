package kvstore

import (
	"bytes"

	"github.com/dgraph-io/badger/v4"

	"github.com/krotik/vertexdb/errs"
)

// maxCASAttempts bounds the UpdateAndFetch retry loop on badger's
// optimistic-concurrency conflict signal before giving up.
const maxCASAttempts = 10

// BadgerOptions configures BadgerStore.
type BadgerOptions struct {
	// DataDir is the directory badger stores its files in. Required
	// unless InMemory is set.
	DataDir string

	// InMemory runs badger without touching disk. Useful for tests that
	// still want real transactional semantics (unlike MemStore, which
	// skips badger entirely).
	InMemory bool

	// ReadOnly opens the database without permitting writes.
	ReadOnly bool
}

// BadgerStore is the disk-backed KV implementation. It wraps a single
// *badger.DB and multiplexes the three logical trees over it with a
// one-byte tag, the same technique nornicdb's BadgerEngine uses for its
// node/edge/index keyspaces.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (creating if absent) a badger database per opts.
func OpenBadgerStore(opts BadgerOptions) (*BadgerStore, error) {
	bopts := badger.DefaultOptions(opts.DataDir)
	if opts.InMemory {
		bopts = bopts.WithInMemory(true)
	}
	bopts = bopts.WithReadOnly(opts.ReadOnly)
	bopts = bopts.WithLogger(nil)

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, errs.Executionf("opening badger store: %v", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Get(tree Tree, key []byte) ([]byte, bool, error) {
	tk := treeKey(tree, key)
	var value []byte
	found := true
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(tk)
		if err == badger.ErrKeyNotFound {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			value = append([]byte{}, v...)
			return nil
		})
	})
	if err != nil {
		return nil, false, errs.Executionf("badger get: %v", err)
	}
	return value, found, nil
}

func (s *BadgerStore) Put(tree Tree, key, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(treeKey(tree, key), value)
	})
	if err != nil {
		return errs.Executionf("badger put: %v", err)
	}
	return nil
}

func (s *BadgerStore) Delete(tree Tree, key []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(treeKey(tree, key))
	})
	if err != nil {
		return errs.Executionf("badger delete: %v", err)
	}
	return nil
}

func (s *BadgerStore) ScanPrefix(tree Tree, prefix []byte, fn func(key, value []byte) bool) error {
	tk := treeKey(tree, prefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = tk
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(tk); it.ValidForPrefix(tk); it.Next() {
			item := it.Item()
			var value []byte
			if err := item.Value(func(v []byte) error {
				value = append([]byte{}, v...)
				return nil
			}); err != nil {
				return err
			}
			if !fn(bytes.TrimPrefix(item.KeyCopy(nil), []byte{tk[0]}), value) {
				break
			}
		}
		return nil
	})
	if err != nil {
		return errs.Executionf("badger scan: %v", err)
	}
	return nil
}

// UpdateAndFetch applies f inside a badger transaction, retrying on
// ErrConflict up to maxCASAttempts times — badger's real optimistic
// concurrency signal standing in for a single atomic
// compare-and-swap step.
func (s *BadgerStore) UpdateAndFetch(tree Tree, key []byte, f func(old []byte, had bool) []byte) ([]byte, error) {
	tk := treeKey(tree, key)
	var result []byte

	for attempt := 0; attempt < maxCASAttempts; attempt++ {
		err := s.db.Update(func(txn *badger.Txn) error {
			item, err := txn.Get(tk)
			var old []byte
			had := true
			if err == badger.ErrKeyNotFound {
				had = false
			} else if err != nil {
				return err
			} else if err := item.Value(func(v []byte) error {
				old = append([]byte{}, v...)
				return nil
			}); err != nil {
				return err
			}

			newValue := f(old, had)
			result = newValue
			if newValue == nil {
				return txn.Delete(tk)
			}
			return txn.Set(tk, newValue)
		})
		if err == nil {
			return result, nil
		}
		if err != badger.ErrConflict {
			return nil, errs.Executionf("badger update_and_fetch: %v", err)
		}
	}
	return nil, errs.Executionf("badger update_and_fetch: exceeded %d conflict retries", maxCASAttempts)
}

func (s *BadgerStore) Close() error {
	if err := s.db.Close(); err != nil {
		return errs.Executionf("closing badger store: %v", err)
	}
	return nil
}
