package skiplist

// Node is a single element of a SkipList. It is exported to allow
// inspection and printing tools to traverse the list directly; all
// mutation happens through SkipList methods.
type Node[V any] struct {
	key   int64
	value V
	next  []*Node[V]
}

// Key returns the node's key. The value returned for the head sentinel
// is meaningless.
func (n *Node[V]) Key() int64 {
	return n.key
}

// Value returns the node's value.
func (n *Node[V]) Value() V {
	return n.value
}

// Height returns the number of levels the node participates in.
func (n *Node[V]) Height() int {
	return len(n.next)
}

// Next returns the node's immediate successor on level 1, or nil at the
// end of the list.
func (n *Node[V]) Next() *Node[V] {
	return n.next[0]
}

// NextAt returns the node's successor on the given level (1-based). It
// returns nil if the node does not participate in that level or has no
// successor there.
func (n *Node[V]) NextAt(level int) *Node[V] {
	if level < 1 || level > len(n.next) {
		return nil
	}
	return n.next[level-1]
}

func newNode[V any](key int64, value V, height int) *Node[V] {
	return &Node[V]{
		key:   key,
		value: value,
		next:  make([]*Node[V], height),
	}
}

// newHead builds the sentinel node. It carries no key or value and
// participates in every level up to maxLevel.
func newHead[V any](maxLevel int) *Node[V] {
	return &Node[V]{next: make([]*Node[V], maxLevel)}
}
