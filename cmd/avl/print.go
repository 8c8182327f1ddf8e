package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/cryptonstudio/crypton-avl/types/avl"
)

func newPrintCmd() *cli.Command {
	return &cli.Command{
		Name:      "print",
		Usage:     "build a tree from integer keys and print it",
		ArgsUsage: "<key>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "unbalanced",
				Usage: "use unbalanced search tree instead of AVL tree",
			},
			&cli.Int64SliceFlag{
				Name:  "remove",
				Usage: "keys removed after all keys are inserted",
			},
		},
		Action: runPrint,
	}
}

type printableTree interface {
	Insert(key int64, value struct{})
	Remove(key int64) (struct{}, bool)
	Print(w io.Writer) error
	Size() int
	Height() int
	IsBalanced() bool
	Check() error
}

func runPrint(cctx *cli.Context) error {
	keys := make([]int64, 0, cctx.Args().Len())
	for _, arg := range cctx.Args().Slice() {
		key, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid key %q: %w", arg, err)
		}
		keys = append(keys, key)
	}
	var tree printableTree
	if cctx.Bool("unbalanced") {
		bst := avl.NewOrderedSearchTree[int64, struct{}]()
		tree = &bst
	} else {
		balanced := avl.NewOrderedTree[int64, struct{}]()
		tree = &balanced
	}
	for _, key := range keys {
		tree.Insert(key, struct{}{})
	}
	for _, key := range cctx.Int64Slice("remove") {
		tree.Remove(key)
	}

	out := cctx.App.Writer
	if err := tree.Print(out); err != nil {
		return err
	}
	fmt.Fprintf(out, "size %d height %d balanced %v\n", tree.Size(), tree.Height(), tree.IsBalanced())
	return tree.Check()
}
