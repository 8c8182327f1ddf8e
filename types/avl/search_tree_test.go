package avl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptonstudio/crypton-avl/types/avl"
)

func keysInOrder[K, V any](tree interface {
	IterateInOrder(f func(key K, value V) bool)
}) []K {
	keys := make([]K, 0)
	tree.IterateInOrder(func(key K, _ V) bool {
		keys = append(keys, key)
		return false
	})
	return keys
}

func TestSearchTree(t *testing.T) {
	t.Run("empty tree", func(t *testing.T) {
		tree := avl.NewOrderedSearchTree[int, string]()
		require.True(t, tree.IsEmpty())
		require.Equal(t, 0, tree.Size())
		require.Equal(t, 0, tree.Height())
		require.True(t, tree.IsBalanced())
		require.Nil(t, tree.First())
		require.Nil(t, tree.Last())
		require.Equal(t, tree.End(), tree.Begin())
		require.Equal(t, tree.End(), tree.Find(1))
		require.False(t, tree.Contains(1))
		require.NoError(t, tree.Check())

		_, ok := tree.Remove(1)
		require.False(t, ok)
	})

	t.Run("degenerates on sorted input", func(t *testing.T) {
		tree := avl.NewOrderedSearchTree[int, int]()
		for i := 1; i <= 10; i++ {
			tree.Insert(i, i*10)
		}
		require.Equal(t, 10, tree.Size())
		require.Equal(t, 10, tree.Height())
		require.False(t, tree.IsBalanced())
		require.NoError(t, tree.Check())
		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, keysInOrder[int, int](&tree))
		for node := tree.Root(); node != nil; node = node.Right() {
			require.Nil(t, node.Left())
			require.Equal(t, int8(0), node.Balance())
		}
	})

	t.Run("insert overwrites", func(t *testing.T) {
		tree := avl.NewOrderedSearchTree[string, int]()
		tree.Insert("b", 1)
		tree.Insert("a", 2)
		tree.Insert("b", 3)
		require.Equal(t, 2, tree.Size())

		value, err := tree.At("b")
		require.NoError(t, err)
		require.Equal(t, 3, value)
	})

	t.Run("at and assign on missing key", func(t *testing.T) {
		tree := avl.NewOrderedSearchTree[string, int]()
		tree.Insert("a", 1)

		_, err := tree.At("z")
		require.ErrorIs(t, err, avl.ErrorTreeNodeNotFound)
		require.ErrorIs(t, tree.Assign("z", 5), avl.ErrorTreeNodeNotFound)
		require.Equal(t, 1, tree.Size())
		require.False(t, tree.Contains("z"))

		require.NoError(t, tree.Assign("a", 7))
		value, err := tree.At("a")
		require.NoError(t, err)
		require.Equal(t, 7, value)
	})

	t.Run("remove leaf, single child and two children", func(t *testing.T) {
		/*
			      50
			     /  \
			   30    70
			  /  \     \
			20    40    80
			     /
			   35
		*/
		tree := avl.NewOrderedSearchTree[int, int]()
		for _, key := range []int{50, 30, 70, 20, 40, 80, 35} {
			tree.Insert(key, key)
		}

		value, ok := tree.Remove(20)
		require.True(t, ok)
		require.Equal(t, 20, value)
		require.NoError(t, tree.Check())

		_, ok = tree.Remove(70)
		require.True(t, ok)
		require.Equal(t, 80, tree.Root().Right().Key())
		require.NoError(t, tree.Check())

		// Predecessor of 50 is 40 which has a left child
		_, ok = tree.Remove(50)
		require.True(t, ok)
		require.Equal(t, 40, tree.Root().Key())
		require.Equal(t, 35, tree.Root().Left().Right().Key())
		require.NoError(t, tree.Check())

		require.Equal(t, []int{30, 35, 40, 80}, keysInOrder[int, int](&tree))
		_, ok = tree.Remove(50)
		require.False(t, ok)
		require.Equal(t, 4, tree.Size())
	})

	t.Run("clear pooled", func(t *testing.T) {
		pool := avl.NewNodePool[int, int]()
		tree := avl.NewSearchTreePooled[int, int](func(a, b int) int { return a - b }, pool)
		for i := 0; i < 100; i++ {
			tree.Insert((i*37)%101, i)
		}
		require.Equal(t, 100, tree.Size())
		tree.Clear()
		require.True(t, tree.IsEmpty())
		require.Equal(t, 0, tree.Size())
		require.Nil(t, tree.Root())

		tree.Insert(1, 1)
		require.Equal(t, 1, tree.Size())
		require.NoError(t, tree.Check())
	})

	t.Run("level", func(t *testing.T) {
		tree := avl.NewOrderedSearchTree[int, int]()
		for _, key := range []int{4, 2, 6, 1, 7} {
			tree.Insert(key, key)
		}
		levelKeys := func(depth int) []int {
			keys := []int{}
			for _, node := range tree.Level(depth) {
				keys = append(keys, node.Key())
				require.Equal(t, depth, node.Depth())
			}
			return keys
		}
		require.Equal(t, []int{4}, levelKeys(0))
		require.Equal(t, []int{2, 6}, levelKeys(1))
		require.Equal(t, []int{1, 7}, levelKeys(2))
		require.Empty(t, levelKeys(3))
		require.Empty(t, levelKeys(-1))
	})
}

func TestSearchTreeIterate(t *testing.T) {
	/*
		    4
		   / \
		  2   6
		 / \   \
		1   3   7
	*/
	tree := avl.NewOrderedSearchTree[int, int]()
	for _, key := range []int{4, 2, 6, 1, 3, 7} {
		tree.Insert(key, -key)
	}

	collect := func(iterate func(f func(key, value int) bool), limit int) []int {
		keys := []int{}
		iterate(func(key, value int) bool {
			require.Equal(t, -key, value)
			keys = append(keys, key)
			return len(keys) == limit
		})
		return keys
	}

	require.Equal(t, []int{4, 2, 1, 3, 6, 7}, collect(tree.IteratePreOrder, 0))
	require.Equal(t, []int{1, 2, 3, 4, 6, 7}, collect(tree.IterateInOrder, 0))
	require.Equal(t, []int{1, 3, 2, 7, 6, 4}, collect(tree.IteratePostOrder, 0))

	// Stop early
	require.Equal(t, []int{4, 2}, collect(tree.IteratePreOrder, 2))
	require.Equal(t, []int{1, 2, 3}, collect(tree.IterateInOrder, 3))
	require.Equal(t, []int{1}, collect(tree.IteratePostOrder, 1))
}

func TestIterator(t *testing.T) {
	tree := avl.NewOrderedTree[int, string]()
	for _, key := range []int{5, 3, 8, 1, 4, 9, 7} {
		tree.Insert(key, "")
	}

	keys := []int{}
	for it := tree.Begin(); it != tree.End(); it.Next() {
		require.True(t, it.Valid())
		it.SetValue("visited")
		keys = append(keys, it.Key())
	}
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, keys)

	tree.IterateInOrder(func(key int, value string) bool {
		require.Equal(t, "visited", value)
		return false
	})

	it := tree.Find(8)
	require.True(t, it.Valid())
	require.Equal(t, 8, it.Node().Key())
	it.Next()
	require.Equal(t, 9, it.Key())
	it.Next()
	require.False(t, it.Valid())
	require.Equal(t, tree.End(), it)
	it.Next()
	require.Equal(t, tree.End(), it)

	require.Equal(t, 1, tree.First().Key())
	require.Equal(t, 9, tree.Last().Key())
	require.Nil(t, tree.First().Prev())
	require.Nil(t, tree.Last().Next())
	require.Equal(t, 5, tree.Find(4).Node().Next().Key())
	require.Equal(t, 4, tree.Find(5).Node().Prev().Key())
}

func TestPrint(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		tree := avl.NewOrderedTree[int, int]()
		buf := new(bytes.Buffer)
		require.NoError(t, tree.Print(buf))
		require.Equal(t, "<empty>\n", buf.String())
	})

	t.Run("balanced", func(t *testing.T) {
		tree := avl.NewOrderedTree[int, int]()
		for _, key := range []int{2, 1, 3, 4} {
			tree.Insert(key, key)
		}
		buf := new(bytes.Buffer)
		require.NoError(t, tree.Print(buf))
		out := buf.String()
		require.True(t, strings.HasPrefix(out, "2 [+1]\n"), out)
		require.Contains(t, out, "1 [+0]")
		require.Contains(t, out, "3 [+1]")
		require.Contains(t, out, "<nil>")
		require.Contains(t, out, "4 [+0]")
	})

	t.Run("unbalanced", func(t *testing.T) {
		tree := avl.NewOrderedSearchTree[int, int]()
		tree.Insert(1, 1)
		tree.Insert(2, 2)
		buf := new(bytes.Buffer)
		require.NoError(t, tree.Print(buf))
		require.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 3)
		require.Contains(t, buf.String(), "<nil>")
	})
}
