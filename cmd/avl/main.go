package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "avl",
		Usage: "replay, generate and benchmark AVL tree operation journals",
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to YAML configuration file",
			EnvVars: []string{"AVL_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level (debug logs every tree modification)",
			Value: defaultConfig.LogLevel,
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "write prometheus metrics in text format to the file after replay",
		},
		&cli.BoolFlag{
			Name:  "check-invariants",
			Usage: "verify tree consistency after every modification",
		},
		&cli.BoolFlag{
			Name:  "verify-contents",
			Usage: "verify tree contents against a shadow hash map",
		},
		&cli.BoolFlag{
			Name:  "print-tree",
			Usage: "print the resulting tree",
		},
	}

	app.Commands = []*cli.Command{
		newReplayCmd(),
		newGenerateCmd(),
		newBenchCmd(),
		newPrintCmd(),
	}

	return app
}
