package skiplist

// Iterator provides a forward-only view over the list in ascending key
// order. It starts positioned before the first element. Iterators do
// not tolerate concurrent mutation of the underlying list.
type Iterator[V any] struct {
	list    *SkipList[V]
	current *Node[V]
	valid   bool
}

// Iterator returns a new iterator positioned before the first element.
func (list *SkipList[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{list: list}
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[V]) Valid() bool {
	if it == nil {
		return false
	}
	return it.valid
}

// Key returns the key at the iterator's current position. It should
// only be called when Valid reports true.
func (it *Iterator[V]) Key() int64 {
	if it == nil || !it.valid {
		return 0
	}
	return it.current.key
}

// Value returns the value at the iterator's current position. It
// should only be called when Valid reports true.
func (it *Iterator[V]) Value() V {
	var zero V
	if it == nil || !it.valid {
		return zero
	}
	return it.current.value
}

// Next advances the iterator to the next element and reports whether
// it successfully moved forward. The first call positions it at the
// smallest key.
func (it *Iterator[V]) Next() bool {
	if it == nil || it.list == nil {
		return false
	}

	var next *Node[V]
	if it.valid {
		next = it.current.next[0]
	} else {
		next = it.list.head.next[0]
	}
	if next == nil {
		it.current = nil
		it.valid = false
		return false
	}

	it.current = next
	it.valid = true
	return true
}
