package avl

import (
	"fmt"
)

// Height returns height of the tree recomputed recursively (0 for an empty tree).
func (t *SearchTree[K, V]) Height() int {
	return t.root.height()
}

// IsBalanced checks that heights of left and right subtrees differ by at most one
// at every node. Heights are recomputed so stored balance factors are not trusted.
func (t *SearchTree[K, V]) IsBalanced() bool {
	_, ok := balancedHeight(t.root)
	return ok
}

func balancedHeight[K, V any](n *Node[K, V]) (int, bool) {
	if n == nil {
		return 0, true
	}
	leftHeight, ok := balancedHeight(n.left)
	if !ok {
		return 0, false
	}
	rightHeight, ok := balancedHeight(n.right)
	if !ok {
		return 0, false
	}
	diff := rightHeight - leftHeight
	if diff < -1 || diff > 1 {
		return 0, false
	}
	return 1 + max(leftHeight, rightHeight), true
}

////////////////////////////////////////////////////////////////

// Check verifies structural consistency of the tree: parent back references,
// strict ordering of keys and the amount of nodes.
func (t *SearchTree[K, V]) Check() error {
	_, err := t.check(false)
	return err
}

// Check verifies structural consistency of the tree and additionally
// that every stored balance factor matches recomputed heights and is within [-1, 1].
func (t *Tree[K, V]) Check() error {
	_, err := t.check(true)
	return err
}

func (t *SearchTree[K, V]) check(balanced bool) (int, error) {
	if t.root != nil && t.root.parent != nil {
		return 0, fmt.Errorf("%w: root %v has parent %v", ErrorTreeCorrupted, t.root.key, t.root.parent.key)
	}
	count := 0
	height, err := t.checkNode(t.root, balanced, &count)
	if err != nil {
		return 0, err
	}
	if count != t.size {
		return 0, fmt.Errorf("%w: size is %d but %d nodes found", ErrorTreeCorrupted, t.size, count)
	}
	// Strict key order
	var prev *Node[K, V]
	t.root.iterateInOrder(func(n *Node[K, V]) bool {
		if prev != nil && t.compare(prev.key, n.key) >= 0 {
			err = fmt.Errorf("%w: key %v is not less than following key %v", ErrorTreeCorrupted, prev.key, n.key)
			return true
		}
		prev = n
		return false
	})
	return height, err
}

func (t *SearchTree[K, V]) checkNode(n *Node[K, V], balanced bool, count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*count++
	if n.left != nil && n.left.parent != n {
		return 0, fmt.Errorf("%w: left child %v of node %v has wrong parent", ErrorTreeCorrupted, n.left.key, n.key)
	}
	if n.right != nil && n.right.parent != n {
		return 0, fmt.Errorf("%w: right child %v of node %v has wrong parent", ErrorTreeCorrupted, n.right.key, n.key)
	}
	leftHeight, err := t.checkNode(n.left, balanced, count)
	if err != nil {
		return 0, err
	}
	rightHeight, err := t.checkNode(n.right, balanced, count)
	if err != nil {
		return 0, err
	}
	if balanced {
		diff := rightHeight - leftHeight
		if int(n.balance) != diff {
			return 0, fmt.Errorf("%w: node %v has balance %d but subtree heights differ by %d", ErrorTreeCorrupted, n.key, n.balance, diff)
		}
		if diff < -1 || diff > 1 {
			return 0, fmt.Errorf("%w: node %v is out of balance (%d)", ErrorTreeCorrupted, n.key, diff)
		}
	}
	return 1 + max(leftHeight, rightHeight), nil
}
