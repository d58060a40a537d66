package kvstore

import (
	"bytes"
	"sync"

	"github.com/google/btree"
)

type memItem struct {
	key   []byte
	value []byte
}

func memItemLess(a, b memItem) bool {
	return bytes.Compare(a.key, b.key) < 0
}

// MemStore is an in-process, btree-ordered KV store. It never touches
// disk and is the implementation every package test in this module runs
// against.
type MemStore struct {
	mu   sync.Mutex
	tree *btree.BTreeG[memItem]
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{tree: btree.NewG(32, memItemLess)}
}

func treeKey(tree Tree, key []byte) []byte {
	var tag byte
	switch tree {
	case TreeSchema:
		tag = 0
	case TreeVertex:
		tag = 1
	case TreeEdge:
		tag = 2
	}
	out := make([]byte, 0, len(key)+1)
	out = append(out, tag)
	out = append(out, key...)
	return out
}

func (m *MemStore) Get(tree Tree, key []byte) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.tree.Get(memItem{key: treeKey(tree, key)})
	if !ok {
		return nil, false, nil
	}
	return append([]byte{}, item.value...), true, nil
}

func (m *MemStore) Put(tree Tree, key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tree.ReplaceOrInsert(memItem{key: treeKey(tree, key), value: append([]byte{}, value...)})
	return nil
}

func (m *MemStore) Delete(tree Tree, key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tree.Delete(memItem{key: treeKey(tree, key)})
	return nil
}

func (m *MemStore) ScanPrefix(tree Tree, prefix []byte, fn func(key, value []byte) bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tk := treeKey(tree, prefix)
	var matches []memItem
	m.tree.AscendGreaterOrEqual(memItem{key: tk}, func(item memItem) bool {
		if !bytes.HasPrefix(item.key, tk) {
			return false
		}
		matches = append(matches, item)
		return true
	})

	for _, item := range matches {
		if !fn(item.key[1:], item.value) {
			break
		}
	}
	return nil
}

func (m *MemStore) UpdateAndFetch(tree Tree, key []byte, f func(old []byte, had bool) []byte) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tk := treeKey(tree, key)
	item, had := m.tree.Get(memItem{key: tk})

	var old []byte
	if had {
		old = item.value
	}
	newValue := f(old, had)
	if newValue == nil {
		m.tree.Delete(memItem{key: tk})
		return nil, nil
	}
	m.tree.ReplaceOrInsert(memItem{key: tk, value: newValue})
	return newValue, nil
}

func (m *MemStore) Close() error { return nil }
