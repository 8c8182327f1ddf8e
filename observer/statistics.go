// Package observer contains avl.Handler implementations collecting statistics,
// logging and exporting metrics of tree modifications.
package observer

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/cryptonstudio/crypton-avl/types/avl"
)

var _ avl.Handler = &Statistics{}

// Statistics counts tree modifications. Safe to share between trees used from different goroutines.
type Statistics struct {
	nodeUpdates  [3]uint64 // inserts, updates, removes
	rotations    [2]uint64 // left, right
	totalUpdates uint64
}

func (s *Statistics) OnInsert(key any) {
	atomic.AddUint64(&s.nodeUpdates[0], 1)
	atomic.AddUint64(&s.totalUpdates, 1)
}

func (s *Statistics) OnUpdate(key any) {
	atomic.AddUint64(&s.nodeUpdates[1], 1)
	atomic.AddUint64(&s.totalUpdates, 1)
}

func (s *Statistics) OnRemove(key any) {
	atomic.AddUint64(&s.nodeUpdates[2], 1)
	atomic.AddUint64(&s.totalUpdates, 1)
}

func (s *Statistics) OnRotate(rotation avl.Rotation, pivot any) {
	switch rotation {
	case avl.RotationLeft:
		atomic.AddUint64(&s.rotations[0], 1)
	case avl.RotationRight:
		atomic.AddUint64(&s.rotations[1], 1)
	}
	atomic.AddUint64(&s.totalUpdates, 1)
}

// Inserts returns amount of inserted nodes.
func (s *Statistics) Inserts() uint64 {
	return atomic.LoadUint64(&s.nodeUpdates[0])
}

// Updates returns amount of values overwritten in place.
func (s *Statistics) Updates() uint64 {
	return atomic.LoadUint64(&s.nodeUpdates[1])
}

// Removes returns amount of removed nodes.
func (s *Statistics) Removes() uint64 {
	return atomic.LoadUint64(&s.nodeUpdates[2])
}

// Rotations returns amount of single rotations in given direction.
func (s *Statistics) Rotations(rotation avl.Rotation) uint64 {
	switch rotation {
	case avl.RotationLeft:
		return atomic.LoadUint64(&s.rotations[0])
	case avl.RotationRight:
		return atomic.LoadUint64(&s.rotations[1])
	default:
		return 0
	}
}

// Total returns amount of all handler calls.
func (s *Statistics) Total() uint64 {
	return atomic.LoadUint64(&s.totalUpdates)
}

// PrintStatistics writes collected counters to w.
func (s *Statistics) PrintStatistics(w io.Writer, elapsed time.Duration) {
	fmt.Fprintf(w, "AVL TREE HANDLER:\n")
	fmt.Fprintf(w, "Node inserts %16d\n", s.Inserts())
	fmt.Fprintf(w, "Node updates %16d\n", s.Updates())
	fmt.Fprintf(w, "Node removes %16d\n", s.Removes())
	fmt.Fprintf(w, "Left rotations %14d\n", s.Rotations(avl.RotationLeft))
	fmt.Fprintf(w, "Right rotations %13d\n", s.Rotations(avl.RotationRight))
	fmt.Fprintf(w, "Total calls %17d\n", s.Total())
	if elapsed > 0 {
		fmt.Fprintf(w, "Calls per second %12.0f\n", float64(s.Total())/elapsed.Seconds())
	}
}
