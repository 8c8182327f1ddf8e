package avl

import (
	"sync"

	"gopkg.in/typ.v4"
)

// SearchTree is an unbalanced binary search tree (BST) for any key type with a comparator.
// Its shape depends exclusively on the order of insert and remove operations,
// so operations are O(height) which degrades to O(n) on sorted input.
// Tree embeds it and adds self-balancing on top of the same structural primitives.
// NOTE: Not thread-safe.
type SearchTree[K, V any] struct {
	compare func(a, b K) int
	pool    *sync.Pool
	root    *Node[K, V]
	size    int
}

////////////////////////////////////////////////////////////////

// NewOrderedSearchTree creates a new unbalanced tree using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrderedSearchTree[K typ.Ordered, V any]() SearchTree[K, V] {
	return NewSearchTree[K, V](typ.Compare[K])
}

// NewSearchTree creates a new unbalanced tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
func NewSearchTree[K, V any](compare func(a, b K) int) SearchTree[K, V] {
	return NewSearchTreePooled[K, V](compare, nil)
}

// NewSearchTreePooled creates a new unbalanced tree using a comparator function.
// Pooled tree uses given pool for nodes creating/releasing.
func NewSearchTreePooled[K, V any](compare func(a, b K) int, pool *sync.Pool) SearchTree[K, V] {
	if compare == nil {
		panic("avl: nil compare function")
	}
	return SearchTree[K, V]{
		compare: compare,
		pool:    pool,
	}
}

////////////////////////////////////////////////////////////////
// Getters
////////////////////////////////////////////////////////////////

// Size returns the amount of nodes in the tree.
func (t *SearchTree[K, V]) Size() int {
	return t.size
}

// IsEmpty returns true if the tree has no nodes.
func (t *SearchTree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Root returns the root node of the tree or nil if the tree is empty.
func (t *SearchTree[K, V]) Root() *Node[K, V] {
	return t.root
}

// First returns the node with the lowest key or nil if the tree is empty.
func (t *SearchTree[K, V]) First() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.MostLeft()
}

// Last returns the node with the highest key or nil if the tree is empty.
func (t *SearchTree[K, V]) Last() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.MostRight()
}

// Contains checks if node with given key exists in the tree by iterating the binary search tree.
func (t *SearchTree[K, V]) Contains(key K) bool {
	return t.root.find(key, t.compare) != nil
}

// Find returns iterator positioned at the node with given key or End() if there is no such key.
func (t *SearchTree[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{node: t.root.find(key, t.compare)}
}

// At returns value stored by given key.
// Missing key is reported with ErrorTreeNodeNotFound, nothing is inserted.
func (t *SearchTree[K, V]) At(key K) (value V, err error) {
	node := t.root.find(key, t.compare)
	if node == nil {
		err = ErrorTreeNodeNotFound
		return
	}
	return node.value, nil
}

// Assign overwrites value of already existing key.
// Missing key is reported with ErrorTreeNodeNotFound, nothing is inserted.
func (t *SearchTree[K, V]) Assign(key K, value V) error {
	node := t.root.find(key, t.compare)
	if node == nil {
		return ErrorTreeNodeNotFound
	}
	node.value = value
	return nil
}

// Level returns all nodes placed at given depth ordered from left to right.
func (t *SearchTree[K, V]) Level(depth int) []*Node[K, V] {
	if depth < 0 {
		return nil
	}
	return t.root.level(depth, nil)
}

////////////////////////////////////////////////////////////////
// Modifiers
////////////////////////////////////////////////////////////////

// Insert inserts a node with given key and value to the tree.
// Value of already existing key is overwritten in place.
// The tree does not remain balanced when inserting.
func (t *SearchTree[K, V]) Insert(key K, value V) {
	t.attach(key, value)
}

// Remove removes a node with given key from the tree and returns its value.
// Returns false if there is no such key.
func (t *SearchTree[K, V]) Remove(key K) (value V, ok bool) {
	node := t.root.find(key, t.compare)
	if node == nil {
		return
	}
	value = node.value
	t.detach(node)
	return value, true
}

// Clear will reset this tree to an empty tree.
func (t *SearchTree[K, V]) Clear() {
	if t.pool != nil {
		t.root.iteratePostOrder(func(node *Node[K, V]) bool {
			t.release(node)
			return false
		})
	}
	t.root = nil
	t.size = 0
}

////////////////////////////////////////////////////////////////
// Iterating
////////////////////////////////////////////////////////////////

// IteratePreOrder will iterate all entries in this tree by first visiting each
// node, followed by the its left branch, and then its right branch.
// Returning true from f stops the iteration.
//
// This is useful when copying binary search trees, as inserting back in this
// order will guarantee the clone will have the exact same layout.
func (t *SearchTree[K, V]) IteratePreOrder(f func(key K, value V) bool) {
	t.root.iteratePreOrder(func(n *Node[K, V]) bool {
		return f(n.key, n.value)
	})
}

// IterateInOrder will iterate all entries in this tree by first visiting each
// node's left branch, followed by the its own entry, and then its right branch.
// Returning true from f stops the iteration.
//
// This is useful when reading a tree's entries in order, as this guarantees
// iterating them in a sorted order.
func (t *SearchTree[K, V]) IterateInOrder(f func(key K, value V) bool) {
	t.root.iterateInOrder(func(n *Node[K, V]) bool {
		return f(n.key, n.value)
	})
}

// IteratePostOrder will iterate all entries in this tree by first visiting each
// node's left branch, followed by the its right branch, and then its own entry.
// Returning true from f stops the iteration.
func (t *SearchTree[K, V]) IteratePostOrder(f func(key K, value V) bool) {
	t.root.iteratePostOrder(func(n *Node[K, V]) bool {
		return f(n.key, n.value)
	})
}

////////////////////////////////////////////////////////////////
// Structural primitives shared with Tree
////////////////////////////////////////////////////////////////

// attach links a new leaf for the key or overwrites value of the existing node.
// Returns the node holding the key and whether it was created.
func (t *SearchTree[K, V]) attach(key K, value V) (*Node[K, V], bool) {
	var parent *Node[K, V]
	cmp := 0
	for current := t.root; current != nil; {
		cmp = t.compare(key, current.key)
		if cmp == 0 {
			current.value = value
			return current, false
		}
		parent = current
		if cmp < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}
	node := t.acquire(key, value)
	node.parent = parent
	switch {
	case parent == nil:
		t.root = node
	case cmp < 0:
		parent.left = node
	default:
		parent.right = node
	}
	t.size++
	return node, true
}

// detach splices the node out of the tree and releases it.
// A node with two children first swaps position with its in-order predecessor
// so the spliced position always has at most one child.
// Returns former parent of the spliced position and the balance change of that parent:
// +1 if the left subtree shrank, -1 if the right one did, 0 if the root was spliced.
func (t *SearchTree[K, V]) detach(node *Node[K, V]) (parent *Node[K, V], diff int8) {
	if node.left != nil && node.right != nil {
		t.swap(node.left.MostRight(), node)
	}
	parent = node.parent
	if parent != nil {
		if parent.left == node {
			diff = 1
		} else {
			diff = -1
		}
	}
	child := node.left
	if child == nil {
		child = node.right
	}
	t.replaceChild(parent, node, child)
	t.size--
	t.release(node)
	return parent, diff
}

// replaceChild puts the child into the slot occupied by old under parent (or the root slot).
func (t *SearchTree[K, V]) replaceChild(parent, old, child *Node[K, V]) {
	switch {
	case parent == nil:
		t.root = child
	case parent.left == old:
		parent.left = child
	default:
		parent.right = child
	}
	if child != nil {
		child.parent = parent
	}
}

// swap exchanges structural positions of two nodes keeping their key/value payloads.
// Balance factors describe positions, not payloads, so they are exchanged too.
func (t *SearchTree[K, V]) swap(a, b *Node[K, V]) {
	if a == nil || b == nil || a == b {
		return
	}
	// Make a the upper node if they are adjacent
	if a.parent == b {
		a, b = b, a
	}
	ap, al, ar := a.parent, a.left, a.right
	bp, bl, br := b.parent, b.left, b.right
	aIsLeft := ap != nil && ap.left == a
	bIsLeft := bp != nil && bp.left == b

	t.setChild(ap, aIsLeft, b)
	b.parent = ap
	if bp == a {
		// b was a direct child of a
		if al == b {
			b.left, b.right = a, ar
			setParent(ar, b)
		} else {
			b.left, b.right = al, a
			setParent(al, b)
		}
		a.parent = b
	} else {
		t.setChild(bp, bIsLeft, a)
		a.parent = bp
		b.left, b.right = al, ar
		setParent(al, b)
		setParent(ar, b)
	}
	a.left, a.right = bl, br
	setParent(bl, a)
	setParent(br, a)

	a.balance, b.balance = b.balance, a.balance
}

func (t *SearchTree[K, V]) setChild(parent *Node[K, V], left bool, child *Node[K, V]) {
	switch {
	case parent == nil:
		t.root = child
	case left:
		parent.left = child
	default:
		parent.right = child
	}
}

func setParent[K, V any](node, parent *Node[K, V]) {
	if node != nil {
		node.parent = parent
	}
}

func (t *SearchTree[K, V]) acquire(key K, value V) (node *Node[K, V]) {
	if t.pool != nil {
		node = t.pool.Get().(*Node[K, V])
		node.key = key
		node.value = value
		return
	}
	return &Node[K, V]{
		key:   key,
		value: value,
	}
}

func (t *SearchTree[K, V]) release(node *Node[K, V]) {
	// Release tree node if pool is used
	if t.pool != nil {
		*node = Node[K, V]{}
		t.pool.Put(node)
	}
}
