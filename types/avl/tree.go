package avl

import (
	"sync"

	"gopkg.in/typ.v4"
)

// Tree is a binary search tree (BST) for ordered Go types (numbers & strings),
// implemented as an AVL tree (Adelson-Velsky and Landis tree), a type of self-balancing BST.
// This guarantees O(log n) operations on insertion, searching, and deletion.
// Every node keeps balance factor height(right) - height(left) updated incrementally,
// heights are never recomputed while mutating.
// NOTE: Not thread-safe.
type Tree[K, V any] struct {
	SearchTree[K, V]
	handler Handler
}

////////////////////////////////////////////////////////////////

// NewOrderedTree creates a new AVL tree using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrderedTree[K typ.Ordered, V any]() Tree[K, V] {
	return NewTree[K, V](typ.Compare[K])
}

// NewTree creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
func NewTree[K, V any](compare func(a, b K) int) Tree[K, V] {
	return Tree[K, V]{
		SearchTree: NewSearchTree[K, V](compare),
	}
}

// NewTreePooled creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
// Pooled tree uses given pool for nodes creating/releasing.
func NewTreePooled[K, V any](compare func(a, b K) int, pool *sync.Pool) Tree[K, V] {
	return Tree[K, V]{
		SearchTree: NewSearchTreePooled[K, V](compare, pool),
	}
}

// SetHandler attaches handler notified about tree modifications.
// Nil handler detaches previously attached one.
func (t *Tree[K, V]) SetHandler(handler Handler) {
	t.handler = handler
}

////////////////////////////////////////////////////////////////
// Modifiers
////////////////////////////////////////////////////////////////

// Insert inserts a node with given key and value to the tree.
// Value of already existing key is overwritten in place without structural changes.
func (t *Tree[K, V]) Insert(key K, value V) {
	node, inserted := t.attach(key, value)
	if !inserted {
		if t.handler != nil {
			t.handler.OnUpdate(key)
		}
		return
	}
	if t.handler != nil {
		t.handler.OnInsert(key)
	}
	parent := node.parent
	if parent == nil {
		return
	}
	if parent.left == node {
		parent.balance--
	} else {
		parent.balance++
	}
	// Parent became perfectly balanced so its height did not change
	if parent.balance != 0 {
		t.insertFix(parent, node)
	}
}

// insertFix walks up from parent whose subtree has just grown by one level.
func (t *Tree[K, V]) insertFix(parent, node *Node[K, V]) {
	for {
		grand := parent.parent
		if grand == nil {
			return
		}
		if grand.left == parent {
			grand.balance--
		} else {
			grand.balance++
		}
		switch grand.balance {
		case 0:
			return
		case -1, 1:
			parent, node = grand, parent
			continue
		case -2:
			if parent.left == node {
				t.rotateRight(grand)
				parent.balance, grand.balance = 0, 0
				return
			}
			t.rotateLeft(parent)
			t.rotateRight(grand)
			switch node.balance {
			case -1:
				parent.balance, grand.balance = 0, 1
			case 0:
				parent.balance, grand.balance = 0, 0
			case 1:
				parent.balance, grand.balance = -1, 0
			}
			node.balance = 0
			return
		case 2:
			if parent.right == node {
				t.rotateLeft(grand)
				parent.balance, grand.balance = 0, 0
				return
			}
			t.rotateRight(parent)
			t.rotateLeft(grand)
			switch node.balance {
			case 1:
				parent.balance, grand.balance = 0, -1
			case 0:
				parent.balance, grand.balance = 0, 0
			case -1:
				parent.balance, grand.balance = 1, 0
			}
			node.balance = 0
			return
		}
	}
}

// Remove removes a node with given key from the tree and returns its value.
// Returns false if there is no such key.
func (t *Tree[K, V]) Remove(key K) (value V, ok bool) {
	node := t.root.find(key, t.compare)
	if node == nil {
		return
	}
	value = node.value
	parent, diff := t.detach(node)
	if t.handler != nil {
		t.handler.OnRemove(key)
	}
	t.removeFix(parent, diff)
	return value, true
}

// removeFix walks up from node whose balance changes by diff because one of its
// subtrees has just shrunk by one level. The walk may cascade up to the root.
func (t *Tree[K, V]) removeFix(node *Node[K, V], diff int8) {
	for node != nil {
		// Computed before rotations move the node
		parent := node.parent
		var nextDiff int8
		if parent != nil {
			if parent.left == node {
				nextDiff = 1
			} else {
				nextDiff = -1
			}
		}

		balance := node.balance + diff
		switch balance {
		case -2:
			child := node.left
			switch child.balance {
			case -1:
				t.rotateRight(node)
				node.balance, child.balance = 0, 0
			case 0:
				// Height of the subtree is unchanged after rotation
				t.rotateRight(node)
				node.balance, child.balance = -1, 1
				return
			case 1:
				grand := child.right
				t.rotateLeft(child)
				t.rotateRight(node)
				switch grand.balance {
				case 1:
					node.balance, child.balance = 0, -1
				case 0:
					node.balance, child.balance = 0, 0
				case -1:
					node.balance, child.balance = 1, 0
				}
				grand.balance = 0
			}
		case 2:
			child := node.right
			switch child.balance {
			case 1:
				t.rotateLeft(node)
				node.balance, child.balance = 0, 0
			case 0:
				// Height of the subtree is unchanged after rotation
				t.rotateLeft(node)
				node.balance, child.balance = 1, -1
				return
			case -1:
				grand := child.left
				t.rotateRight(child)
				t.rotateLeft(node)
				switch grand.balance {
				case -1:
					node.balance, child.balance = 0, 1
				case 0:
					node.balance, child.balance = 0, 0
				case 1:
					node.balance, child.balance = -1, 0
				}
				grand.balance = 0
			}
		case -1, 1:
			// Subtree height did not change
			node.balance = balance
			return
		case 0:
			node.balance = 0
		}
		node, diff = parent, nextDiff
	}
}
