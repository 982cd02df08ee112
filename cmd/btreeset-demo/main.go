// Command btreeset-demo is an interactive REPL over a btreeset.Tree[string],
// adapted from vchandela-ddia's main.go. The teacher wired a bare flag.Int
// straight into btree.NewBTree; this entrypoint is restructured around
// urfave/cli/v2 for flag parsing and go.uber.org/zap for structured
// start/parse-error/shutdown logging, matching the pack's server-entrypoint
// shape (see bluesky-social-indigo/cmd/sonar/main.go).
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"btreeset/btreeset"
	btreeclicmd "btreeset/cli"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "btreeset-demo: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	app := &cli.App{
		Name:  "btreeset-demo",
		Usage: "interactive REPL over an in-memory B-tree set",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "degree",
				Aliases: []string{"t"},
				Value:   4,
				Usage:   "minimum degree of the B-tree (must be >= 1)",
			},
		},
		Action: func(c *cli.Context) error {
			degree := c.Int("degree")
			if degree < 1 {
				return cli.Exit(fmt.Sprintf("--degree must be >= 1, got %d", degree), 1)
			}
			logger.Info("starting btreeset REPL", zap.Int("degree", degree))

			tree := btreeset.New[string](degree)
			repl := btreeclicmd.New(btreeclicmd.NewStdinScanner(), tree, func(s string) {
				fmt.Println(s)
			})
			repl.Start()

			logger.Info("btreeset REPL session ended", zap.Int("final_size", tree.Len()))
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("btreeset-demo exited with error", zap.Error(err))
		os.Exit(1)
	}
}
