package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"
	"lukechampine.com/uint128"

	"github.com/cryptonstudio/crypton-avl/providers/journal"
)

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "operations",
			Usage: "amount of operations to generate",
			Value: defaultConfig.Generate.Operations,
		},
		&cli.Uint64Flag{
			Name:  "key-space",
			Usage: "keys are drawn uniformly from [0, key-space)",
			Value: defaultConfig.Generate.KeySpace,
		},
		&cli.Float64Flag{
			Name:  "remove-ratio",
			Usage: "share of delete operations",
			Value: defaultConfig.Generate.RemoveRatio,
		},
		&cli.Float64Flag{
			Name:  "find-ratio",
			Usage: "share of find operations",
			Value: defaultConfig.Generate.FindRatio,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random generator seed",
			Value: defaultConfig.Generate.Seed,
		},
	}
}

func newGenerateCmd() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "write random operations journal",
		ArgsUsage: "<journal-file>",
		Flags:     generateFlags(),
		Action:    runGenerate,
	}
}

func runGenerate(cctx *cli.Context) error {
	if cctx.Args().Len() != 1 {
		return cli.Exit("exactly one journal file is expected", 1)
	}
	config, err := loadConfig(cctx)
	if err != nil {
		return err
	}

	file, err := os.Create(cctx.Args().First())
	if err != nil {
		return err
	}
	defer file.Close()

	w := journal.NewWriter(file)
	if err := generateJournal(w, config.Generate); err != nil {
		return err
	}
	fmt.Fprintf(cctx.App.Writer, "Generated %d operations into %s\n", w.Written(), file.Name())
	return file.Close()
}

// generateJournal writes operations drawn from a seeded generator, so the output is reproducible.
func generateJournal(w *journal.Writer, config GenerateConfig) error {
	rng := rand.New(rand.NewSource(config.Seed))
	for i := 0; i < config.Operations; i++ {
		key := uint128.From64(uint64(rng.Int63n(int64(config.KeySpace))))
		var err error
		switch p := rng.Float64(); {
		case p < config.RemoveRatio:
			err = w.WriteDelete(key)
		case p < config.RemoveRatio+config.FindRatio:
			err = w.WriteFind(key)
		default:
			err = w.WriteInsert(key, rng.Uint64())
		}
		if err != nil {
			return err
		}
	}
	return w.Flush()
}
