// Package paths checks whether all leaves of an arbitrary binary tree lie at the same depth.
// It works over a raw node graph and is independent of the search trees in package avl.
package paths

// Node is a node of an arbitrary binary tree.
type Node[T any] struct {
	Key   T
	Left  *Node[T]
	Right *Node[T]
}

// NewNode creates a node with given key and children.
func NewNode[T any](key T, left, right *Node[T]) *Node[T] {
	return &Node[T]{Key: key, Left: left, Right: right}
}

// Height returns amount of nodes on the longest path from the node down to a leaf (0 for nil).
func Height[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}
	return 1 + max(Height(root.Left), Height(root.Right))
}

// EqualPaths returns true if every root-to-leaf path has identical length.
// A node missing one child satisfies the property when the other child does,
// a node with both children requires equal heights on both sides.
// Nil tree trivially satisfies the property.
func EqualPaths[T any](root *Node[T]) bool {
	_, ok := equalPaths(root)
	return ok
}

// equalPaths returns height of the subtree along with the property so every node is visited once.
func equalPaths[T any](n *Node[T]) (int, bool) {
	if n == nil {
		return 0, true
	}
	leftHeight, ok := equalPaths(n.Left)
	if !ok {
		return 0, false
	}
	rightHeight, ok := equalPaths(n.Right)
	if !ok {
		return 0, false
	}
	switch {
	case n.Left == nil:
		return 1 + rightHeight, true
	case n.Right == nil:
		return 1 + leftHeight, true
	case leftHeight != rightHeight:
		return 0, false
	}
	return 1 + leftHeight, true
}
