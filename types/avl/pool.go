package avl

import (
	"sync"
)

// NewNodePool creates sync.Pool allocating tree nodes.
// The pool can be shared by any amount of trees with the same key and value types
// passed to NewTreePooled or NewSearchTreePooled.
func NewNodePool[K, V any]() *sync.Pool {
	return &sync.Pool{New: func() any {
		return new(Node[K, V])
	}}
}
