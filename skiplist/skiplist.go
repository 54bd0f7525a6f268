// Package skiplist implements an ordered map over int64 keys as a
// probabilistic skip list. Randomized node heights stand in for the
// rebalancing work of a search tree: the expected distribution of
// nodes across levels yields logarithmic search depth without any
// rotation logic.
//
// A SkipList is not safe for concurrent use; callers must serialize
// access externally.
package skiplist

// SkipList is a generic ordered map keyed by int64. The zero value is
// not usable; construct instances with New.
type SkipList[V any] struct {
	head     *Node[V]
	level    int
	size     int
	maxLevel int
	p        float64
	src      Source
}

// New creates an empty SkipList. The defaults (maxLevel 16, p 0.5, a
// PCG entropy source) can be overridden with options. It returns
// ErrInvalidMaxLevel or ErrInvalidProbability for configurations
// outside the supported ranges.
func New[V any](opts ...Option) (*SkipList[V], error) {
	cfg := config{
		maxLevel: DefaultMaxLevel,
		p:        DefaultProbability,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := ValidateParams(cfg.maxLevel, cfg.p); err != nil {
		return nil, err
	}
	if cfg.src == nil {
		cfg.src = newDefaultSource()
	}

	return &SkipList[V]{
		head:     newHead[V](cfg.maxLevel),
		level:    1,
		maxLevel: cfg.maxLevel,
		p:        cfg.p,
		src:      cfg.src,
	}, nil
}

// findPredecessors walks the list from the top occupied level down,
// advancing while the next key is smaller than the target. When update
// is non-nil it records, per level, the last node visited before
// dropping down. The returned node is the level-1 successor of the
// descent's end: the first node with key >= the target, or nil.
func (list *SkipList[V]) findPredecessors(key int64, update []*Node[V]) *Node[V] {
	n := list.head
	for i := list.level - 1; i >= 0; i-- {
		for n.next[i] != nil && n.next[i].key < key {
			n = n.next[i]
		}
		if update != nil {
			update[i] = n
		}
	}
	return n.next[0]
}

// Put inserts or replaces the value associated with key. If the key
// was already present the old value is overwritten in place, no node
// is created and no height is drawn; Put then returns the previous
// value and true. Otherwise it returns the zero value and false.
func (list *SkipList[V]) Put(key int64, value V) (V, bool) {
	update := make([]*Node[V], list.maxLevel)
	if n := list.findPredecessors(key, update); n != nil && n.key == key {
		prev := n.value
		n.value = value
		return prev, true
	}

	height := randomLevel(list.src, list.p, list.maxLevel)
	if height > list.level {
		// No existing node reaches the new levels; the head itself is
		// the predecessor there.
		for i := list.level; i < height; i++ {
			update[i] = list.head
		}
		list.level = height
	}

	n := newNode(key, value, height)
	for i := 0; i < height; i++ {
		n.next[i] = update[i].next[i]
		update[i].next[i] = n
	}
	list.size++

	var zero V
	return zero, false
}

// Get retrieves the value associated with key. The second return value
// reports whether the key was present.
func (list *SkipList[V]) Get(key int64) (V, bool) {
	if n := list.findPredecessors(key, nil); n != nil && n.key == key {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present in the list.
func (list *SkipList[V]) Contains(key int64) bool {
	_, ok := list.Get(key)
	return ok
}

// Delete removes the node with the given key and returns its value,
// handing ownership back to the caller. It returns the zero value and
// false if the key is absent, leaving the list untouched.
func (list *SkipList[V]) Delete(key int64) (V, bool) {
	update := make([]*Node[V], list.maxLevel)
	n := list.findPredecessors(key, update)
	if n == nil || n.key != key {
		var zero V
		return zero, false
	}

	// Unsplice one level at a time. Levels above the node's height were
	// never linked to it, so the trail stops mattering there.
	for i := 0; i < list.level; i++ {
		if update[i].next[i] != n {
			break
		}
		update[i].next[i] = n.next[i]
	}
	for list.level > 1 && list.head.next[list.level-1] == nil {
		list.level--
	}

	for i := range n.next {
		n.next[i] = nil
	}
	list.size--
	return n.value, true
}

// Clear removes all entries, resetting the list to its initial state.
// The head, configuration and entropy source are kept, so a cleared
// list behaves like a freshly constructed one.
func (list *SkipList[V]) Clear() {
	n := list.head.next[0]
	for n != nil {
		next := n.next[0]
		for i := range n.next {
			n.next[i] = nil
		}
		n = next
	}
	for i := range list.head.next {
		list.head.next[i] = nil
	}
	list.level = 1
	list.size = 0
}

// Len returns the number of entries currently stored.
func (list *SkipList[V]) Len() int {
	return list.size
}

// IsEmpty reports whether the list holds no entries.
func (list *SkipList[V]) IsEmpty() bool {
	return list.size == 0
}

// Level returns the highest level currently occupied by a node, or 1
// for an empty list.
func (list *SkipList[V]) Level() int {
	return list.level
}

// MaxLevel returns the list's fixed maximum height.
func (list *SkipList[V]) MaxLevel() int {
	return list.maxLevel
}

// Head returns the head sentinel node. It is exposed for traversal and
// printing tooling; mutating the list through it is not supported.
func (list *SkipList[V]) Head() *Node[V] {
	return list.head
}

// ForEach applies fn to every entry in ascending key order, stopping
// early when fn returns false.
func (list *SkipList[V]) ForEach(fn func(key int64, value V) bool) {
	for n := list.head.next[0]; n != nil; n = n.next[0] {
		if !fn(n.key, n.value) {
			return
		}
	}
}
