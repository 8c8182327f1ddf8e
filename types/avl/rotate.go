package avl

// Rotation is the direction of a single tree rotation.
type Rotation uint8

const (
	RotationLeft Rotation = iota + 1
	RotationRight
)

func (r Rotation) String() string {
	switch r {
	case RotationLeft:
		return "left"
	case RotationRight:
		return "right"
	default:
		return "unknown"
	}
}

////////////////////////////////////////////////////////////////

// rotateLeft lifts the right child of the node into the node's position.
// Balance factors are left untouched, callers fix them.
/*
	  n              r
	 / \            / \
	a   r    =>    n   c
	   / \        / \
	  b   c      a   b
*/
func (t *Tree[K, V]) rotateLeft(n *Node[K, V]) {
	r := n.right
	n.right = r.left
	setParent(r.left, n)
	t.replaceChild(n.parent, n, r)
	r.left = n
	n.parent = r
	if t.handler != nil {
		t.handler.OnRotate(RotationLeft, n.key)
	}
}

// rotateRight lifts the left child of the node into the node's position.
// Balance factors are left untouched, callers fix them.
/*
	    n          l
	   / \        / \
	  l   c  =>  a   n
	 / \            / \
	a   b          b   c
*/
func (t *Tree[K, V]) rotateRight(n *Node[K, V]) {
	l := n.left
	n.left = l.right
	setParent(l.right, n)
	t.replaceChild(n.parent, n, l)
	l.right = n
	n.parent = l
	if t.handler != nil {
		t.handler.OnRotate(RotationRight, n.key)
	}
}
