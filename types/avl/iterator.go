package avl

// Iterator walks tree nodes in ascending key order.
// Iterators are comparable: two iterators are equal when they point to the same node,
// so `it != tree.End()` is the usual loop condition.
// Iterator is invalidated by removing the node it points to.
type Iterator[K, V any] struct {
	node *Node[K, V]
}

// Begin returns iterator positioned at the node with the lowest key.
// Equals End() for an empty tree.
func (t *SearchTree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{node: t.First()}
}

// End returns iterator positioned past the last node.
func (t *SearchTree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// Valid returns true if iterator points to a node.
func (it Iterator[K, V]) Valid() bool {
	return it.node != nil
}

// Node returns the node iterator points to or nil for End().
func (it Iterator[K, V]) Node() *Node[K, V] {
	return it.node
}

// Key returns key of the current node.
// NOTE: Panics if the iterator is not valid.
func (it Iterator[K, V]) Key() K {
	return it.node.key
}

// Value returns value of the current node.
// NOTE: Panics if the iterator is not valid.
func (it Iterator[K, V]) Value() V {
	return it.node.value
}

// SetValue replaces value of the current node in place.
// NOTE: Panics if the iterator is not valid.
func (it Iterator[K, V]) SetValue(value V) {
	it.node.value = value
}

// Next advances iterator to the in-order successor.
// Does nothing if the iterator is already at End().
func (it *Iterator[K, V]) Next() {
	if it.node != nil {
		it.node = it.node.Next()
	}
}
