package avl

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Print writes ASCII graphic representation of the tree to w.
// Each node is printed as its key, missing child of a node having single child is printed as <nil>.
func (t *SearchTree[K, V]) Print(w io.Writer) error {
	return printTree(w, t.root, func(n *Node[K, V]) string {
		return fmt.Sprintf("%v", n.key)
	})
}

// Print writes ASCII graphic representation of the tree to w.
// Each node is printed as its key followed by its balance factor.
func (t *Tree[K, V]) Print(w io.Writer) error {
	return printTree(w, t.root, func(n *Node[K, V]) string {
		return fmt.Sprintf("%v [%+d]", n.key, n.balance)
	})
}

func printTree[K, V any](w io.Writer, root *Node[K, V], label func(n *Node[K, V]) string) error {
	if root == nil {
		_, err := io.WriteString(w, "<empty>\n")
		return err
	}
	tree := treeprint.NewWithRoot(label(root))
	addChildren(tree, root, label)
	_, err := io.WriteString(w, tree.String())
	return err
}

func addChildren[K, V any](branch treeprint.Tree, n *Node[K, V], label func(n *Node[K, V]) string) {
	if n.left == nil && n.right == nil {
		return
	}
	for _, child := range [2]*Node[K, V]{n.left, n.right} {
		switch {
		case child == nil:
			branch.AddNode("<nil>")
		case child.left == nil && child.right == nil:
			branch.AddNode(label(child))
		default:
			addChildren(branch.AddBranch(label(child)), child, label)
		}
	}
}
