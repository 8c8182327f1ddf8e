package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/cryptonstudio/crypton-avl/types/avl"
)

func newBenchCmd() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "compare AVL tree with unbalanced search tree on random and sorted workloads",
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:  "sorted-operations",
				Usage: "amount of keys inserted in ascending order",
				Value: 10000,
			},
		}, generateFlags()...),
		Action: runBench,
	}
}

// orderedTree is the part of the tree API exercised by benchmarks.
type orderedTree interface {
	Insert(key uint64, value uint64)
	Remove(key uint64) (uint64, bool)
	Contains(key uint64) bool
	Height() int
	Size() int
}

func runBench(cctx *cli.Context) error {
	config, err := loadConfig(cctx)
	if err != nil {
		return err
	}
	out := cctx.App.Writer

	rng := rand.New(rand.NewSource(config.Generate.Seed))
	random := make([]uint64, config.Generate.Operations)
	for i := range random {
		random[i] = uint64(rng.Int63n(int64(config.Generate.KeySpace)))
	}
	sorted := make([]uint64, cctx.Int("sorted-operations"))
	for i := range sorted {
		sorted[i] = uint64(i)
	}

	workloads := []struct {
		name string
		keys []uint64
	}{
		{"random", random},
		{"sorted", sorted},
	}
	for _, workload := range workloads {
		balanced := avl.NewOrderedTree[uint64, uint64]()
		unbalanced := avl.NewOrderedSearchTree[uint64, uint64]()
		bench(out, "avl "+workload.name, &balanced, workload.keys)
		bench(out, "bst "+workload.name, &unbalanced, workload.keys)
	}
	return nil
}

func bench(out io.Writer, name string, tree orderedTree, keys []uint64) {
	timeStart := time.Now()
	for _, key := range keys {
		tree.Insert(key, key)
	}
	insertElapsed := time.Since(timeStart)
	size, height := tree.Size(), tree.Height()

	timeStart = time.Now()
	for _, key := range keys {
		tree.Contains(key)
	}
	findElapsed := time.Since(timeStart)

	timeStart = time.Now()
	for _, key := range keys {
		tree.Remove(key)
	}
	removeElapsed := time.Since(timeStart)

	fmt.Fprintf(out, "%-12s size %9d height %6d insert %12.0f ops/s find %12.0f ops/s remove %12.0f ops/s\n",
		name, size, height,
		opsPerSecond(len(keys), insertElapsed),
		opsPerSecond(len(keys), findElapsed),
		opsPerSecond(len(keys), removeElapsed),
	)
}

func opsPerSecond(ops int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(ops) / elapsed.Seconds()
}
