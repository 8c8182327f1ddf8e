package avl

// Node is a single tree node. Both SearchTree and Tree are built from it;
// the balance field is maintained only by Tree and is height(right) - height(left).
// The parent link is a back reference used for upward traversal and rotations.
type Node[K, V any] struct {
	key     K
	value   V
	parent  *Node[K, V]
	left    *Node[K, V]
	right   *Node[K, V]
	balance int8
}

// Key returns key of the tree node.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns value of the tree node.
func (n *Node[K, V]) Value() V {
	return n.value
}

// SetValue replaces value of the tree node in place.
func (n *Node[K, V]) SetValue(value V) {
	n.value = value
}

// Parent returns parent of the tree node or nil for the root.
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

// Left returns left child of the tree node.
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns right child of the tree node.
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// Balance returns balance factor of the tree node.
// Always zero for nodes of an unbalanced SearchTree.
func (n *Node[K, V]) Balance() int8 {
	return n.balance
}

// Depth returns amount of ancestors of the tree node (zero for the root).
func (n *Node[K, V]) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

func (n *Node[K, V]) MostLeft() *Node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *Node[K, V]) MostRight() *Node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Next returns in-order successor of the tree node or nil if the node is the last one.
func (n *Node[K, V]) Next() *Node[K, V] {
	if n.right != nil {
		return n.right.MostLeft()
	}
	// Climb until we arrive from a left subtree
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}
	return n.parent
}

// Prev returns in-order predecessor of the tree node or nil if the node is the first one.
func (n *Node[K, V]) Prev() *Node[K, V] {
	if n.left != nil {
		return n.left.MostRight()
	}
	// Climb until we arrive from a right subtree
	for n.parent != nil && n == n.parent.left {
		n = n.parent
	}
	return n.parent
}

func (n *Node[K, V]) find(key K, compare func(a, b K) int) *Node[K, V] {
	current := n
	for current != nil {
		cmp := compare(key, current.key)
		switch {
		case cmp == 0:
			return current
		case cmp < 0:
			current = current.left
		default:
			current = current.right
		}
	}
	return nil
}

func (n *Node[K, V]) height() int {
	if n == nil {
		return 0
	}
	leftHeight, rightHeight := n.left.height(), n.right.height()
	if leftHeight < rightHeight {
		return 1 + rightHeight
	}
	return 1 + leftHeight
}

func (n *Node[K, V]) iteratePreOrder(f func(v *Node[K, V]) bool) bool {
	if n == nil {
		return false
	}
	if f(n) {
		return true
	}
	if n.left.iteratePreOrder(f) {
		return true
	}
	return n.right.iteratePreOrder(f)
}

func (n *Node[K, V]) iterateInOrder(f func(v *Node[K, V]) bool) bool {
	if n == nil {
		return false
	}
	if n.left.iterateInOrder(f) {
		return true
	}
	if f(n) {
		return true
	}
	return n.right.iterateInOrder(f)
}

func (n *Node[K, V]) iteratePostOrder(f func(v *Node[K, V]) bool) bool {
	if n == nil {
		return false
	}
	if n.left.iteratePostOrder(f) {
		return true
	}
	if n.right.iteratePostOrder(f) {
		return true
	}
	return f(n)
}

func (n *Node[K, V]) level(depth int, nodes []*Node[K, V]) []*Node[K, V] {
	if n == nil {
		return nodes
	}
	if depth == 0 {
		return append(nodes, n)
	}
	nodes = n.left.level(depth-1, nodes)
	return n.right.level(depth-1, nodes)
}
