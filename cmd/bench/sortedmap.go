package main

import (
	"sort"

	"github.com/KubanjaElijahEldred/Data-Structures-and-algorithms-linear-and-non-linear-vectors-and-skip-lists/vector"
)

type entry struct {
	key   int64
	value int
}

// sortedMap is the comparison baseline: a key-ordered map over a
// vector with binary search on the read path and shifting on the write
// path.
type sortedMap struct {
	items *vector.Vector[entry]
}

func newSortedMap() *sortedMap {
	return &sortedMap{items: vector.New[entry]()}
}

// firstGE returns the first index i such that items[i].key >= key, or
// Len() if no such index exists.
func (m *sortedMap) firstGE(key int64) int {
	return sort.Search(m.items.Len(), func(i int) bool {
		return m.items.At(i).key >= key
	})
}

func (m *sortedMap) Get(key int64) (int, bool) {
	i := m.firstGE(key)
	if i < m.items.Len() && m.items.At(i).key == key {
		return m.items.At(i).value, true
	}
	return 0, false
}

func (m *sortedMap) Contains(key int64) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *sortedMap) Put(key int64, value int) bool {
	i := m.firstGE(key)
	if i < m.items.Len() && m.items.At(i).key == key {
		m.items.Set(i, entry{key: key, value: value})
		return false
	}
	m.items.Insert(i, entry{key: key, value: value})
	return true
}

func (m *sortedMap) Delete(key int64) bool {
	i := m.firstGE(key)
	if i < m.items.Len() && m.items.At(i).key == key {
		m.items.Remove(i)
		return true
	}
	return false
}

func (m *sortedMap) Len() int {
	return m.items.Len()
}
