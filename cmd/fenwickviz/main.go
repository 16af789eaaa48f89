// Command fenwickviz is an interactive, terminal based visualizer of a
// Fenwick tree (binary indexed tree).
package main

import (
	"fmt"
	"os"

	"github.com/caio/go-fenwickviz/internal/controller"
	"github.com/caio/go-fenwickviz/internal/render"
	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/urfave/cli.v1"
)

var (
	sizeFlag = cli.IntFlag{
		Name:  "size",
		Usage: "Initial array length",
		Value: controller.DefaultConfig.Len,
	}
	maxSizeFlag = cli.IntFlag{
		Name:  "max-size",
		Usage: "Largest array length accepted by resize",
		Value: controller.DefaultConfig.MaxLen,
	}
	minValueFlag = cli.Int64Flag{
		Name:  "min",
		Usage: "Smallest value drawn by randomize",
		Value: controller.DefaultConfig.MinValue,
	}
	maxValueFlag = cli.Int64Flag{
		Name:  "max",
		Usage: "Largest value drawn by randomize",
		Value: controller.DefaultConfig.MaxValue,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed for randomize (0 means a random sequence)",
	}
	clearOnUpdateFlag = cli.BoolFlag{
		Name:  "clear-on-update",
		Usage: "Forget the query answer whenever a value is updated",
	}
	colorFlag = cli.StringFlag{
		Name:  "color",
		Usage: "Highlight with colors: auto, always or never",
		Value: "auto",
	}
	verbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "Log level written to stderr: debug, info, warn, error",
		Value: "warn",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "fenwickviz"
	app.Usage = "step through Fenwick tree queries and updates"
	app.Flags = []cli.Flag{
		sizeFlag,
		maxSizeFlag,
		minValueFlag,
		maxValueFlag,
		seedFlag,
		clearOnUpdateFlag,
		colorFlag,
		verbosityFlag,
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	level, err := zerolog.ParseLevel(ctx.String(verbosityFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid verbosity: %w", err)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	color, err := useColor(ctx.String(colorFlag.Name), term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		return err
	}

	cfg := controller.Config{
		Len:                 ctx.Int(sizeFlag.Name),
		MaxLen:              ctx.Int(maxSizeFlag.Name),
		MinValue:            ctx.Int64(minValueFlag.Name),
		MaxValue:            ctx.Int64(maxValueFlag.Name),
		Seed:                ctx.Int64(seedFlag.Name),
		ClearResultOnUpdate: ctx.Bool(clearOnUpdateFlag.Name),
	}
	c, err := controller.New(cfg, log)
	if err != nil {
		return err
	}
	log.Info().Int("len", cfg.Len).Bool("color", color).Msg("starting")

	s := &repl{
		controller: c,
		renderer:   render.New(color),
		out:        os.Stdout,
	}
	return s.run(os.Stdin)
}

func useColor(mode string, tty bool) (bool, error) {
	switch mode {
	case "auto":
		return tty, nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("invalid color mode %q", mode)
}
