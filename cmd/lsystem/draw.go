package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	lsystem "github.com/viktordanov/lturtle"
	"github.com/viktordanov/lturtle/config"
	"github.com/viktordanov/lturtle/render"
	"github.com/viktordanov/lturtle/turtle"
)

const defaultMaxLength = 50_000_000

type drawOptions struct {
	source    figureSource
	depth     int
	seed      uint64
	maxLength int
	out       string
	fit       bool
	margin    float64
}

func newDrawCmd() *cobra.Command {
	o := &drawOptions{}
	cmd := &cobra.Command{
		Use:   "draw [figure]",
		Short: "Expand a figure and render it to PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}
	o.source.register(cmd)
	cmd.Flags().IntVarP(&o.depth, "depth", "d", 0, "number of generations (default: the figure's)")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "seed for stochastic grammars (default: random)")
	cmd.Flags().IntVar(&o.maxLength, "max-length", defaultMaxLength, "fail when a generation grows past this many symbols")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output PNG (default: <figure>.png)")
	cmd.Flags().BoolVar(&o.fit, "fit", false, "scale and centre the drawing to the surface")
	cmd.Flags().Float64Var(&o.margin, "margin", 20, "margin in pixels kept free by --fit")
	return cmd
}

func (o *drawOptions) run(cmd *cobra.Command, args []string) error {
	fig, file, err := o.source.resolve(args)
	if err != nil {
		return err
	}
	defaults := fig.Defaults()

	depth := defaults.Depth
	if cmd.Flags().Changed("depth") {
		depth = o.depth
	}
	seed := pickSeed(cmd, o.seed, file)

	start := time.Now()
	actions, err := fig.Generate(depth, seed, lsystem.WithMaxLength(maxLengthFor(cmd, o.maxLength, file)))
	if err != nil {
		return resourceHint(err)
	}
	segments, err := turtle.Trace(actions, defaults.Color, defaults.Thickness)
	if err != nil {
		return err
	}

	opts := defaults.Render
	if o.fit || defaults.Fit {
		margin := o.margin
		if !cmd.Flags().Changed("margin") && defaults.Fit {
			margin = defaults.Margin
		}
		opts.Viewport = turtle.Fit(segments, float64(opts.Width), float64(opts.Height), margin)
	}

	out := o.out
	if out == "" {
		out = fig.Name() + ".png"
	}
	if err := render.SavePNG(out, segments, opts); err != nil {
		return err
	}

	slog.Info("drew figure",
		"figure", fig.Name(),
		"depth", depth,
		"seed", seed,
		"actions", len(actions),
		"segments", len(segments),
		"out", out,
		"elapsed", time.Since(start))
	return nil
}

// maxLengthFor prefers the flag when set, then the grammar file's
// max_length, then the flag default.
func maxLengthFor(cmd *cobra.Command, flagMaxLength int, file *config.File) int {
	if file != nil && file.MaxLength > 0 && !cmd.Flags().Changed("max-length") {
		return file.MaxLength
	}
	return flagMaxLength
}

// pickSeed prefers the flag, then the grammar file, then a fresh seed.
func pickSeed(cmd *cobra.Command, flagSeed uint64, file *config.File) uint64 {
	switch {
	case cmd.Flags().Changed("seed"):
		return flagSeed
	case file != nil && file.Seed != nil:
		return *file.Seed
	default:
		return lsystem.SampleSeed()
	}
}
