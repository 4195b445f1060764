package main

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	lsystem "github.com/viktordanov/lturtle"
)

type analyseOptions struct {
	source    figureSource
	depth     int
	samples   int
	seed      uint64
	maxLength int
	out       string
	serve     string
}

func newAnalyseCmd() *cobra.Command {
	o := &analyseOptions{}
	cmd := &cobra.Command{
		Use:     "analyse [figure]",
		Aliases: []string{"analyze"},
		Short:   "Chart how fast a figure or grammar file grows",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}
	o.source.register(cmd)
	cmd.Flags().IntVarP(&o.depth, "depth", "d", 0, "number of generations (default: the figure's)")
	cmd.Flags().IntVar(&o.samples, "samples", 10, "runs averaged for stochastic grammars")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "first seed of the sampled runs (default: random)")
	cmd.Flags().IntVar(&o.maxLength, "max-length", defaultMaxLength, "fail when a generation grows past this many symbols")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output HTML (default: <name>-growth.html)")
	cmd.Flags().StringVar(&o.serve, "serve", "", "serve the chart on this address instead, e.g. :8081")
	return cmd
}

func (o *analyseOptions) run(cmd *cobra.Command, args []string) error {
	fig, file, err := o.source.resolve(args)
	if err != nil {
		return err
	}

	depth := fig.Defaults().Depth
	if cmd.Flags().Changed("depth") {
		depth = o.depth
	}
	opt := lsystem.WithMaxLength(maxLengthFor(cmd, o.maxLength, file))

	rate, err := fig.Analyse(depth, o.samples, pickSeed(cmd, o.seed, file), opt)
	if err != nil {
		return resourceHint(err)
	}
	slog.Info("analysed grammar", "grammar", fig.Name(), "depth", depth, "avg_growth", rate.AverageGrowth())

	if o.serve != "" {
		slog.Info("serving chart", "addr", o.serve)
		return lsystem.Serve(o.serve, rate)
	}

	out := o.out
	if out == "" {
		out = fig.Name() + "-growth.html"
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "creating chart file")
	}
	defer f.Close()
	if err := rate.RenderChart(f); err != nil {
		return errors.Wrap(err, "rendering chart")
	}
	slog.Info("wrote chart", "out", out)
	return nil
}
