package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	lsystem "github.com/viktordanov/lturtle"
)

type expandOptions struct {
	source    figureSource
	depth     int
	seed      uint64
	maxLength int
	every     bool
	rules     bool
}

func newExpandCmd() *cobra.Command {
	o := &expandOptions{}
	cmd := &cobra.Command{
		Use:   "expand [figure]",
		Short: "Print the expanded sequence",
		Long: `expand prints the tokens of a grammar file after --depth generations,
or the turtle actions of a built-in figure.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}
	o.source.register(cmd)
	cmd.Flags().IntVarP(&o.depth, "depth", "d", 0, "number of generations (default: the figure's)")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "seed for stochastic grammars (default: random)")
	cmd.Flags().IntVar(&o.maxLength, "max-length", defaultMaxLength, "fail when a generation grows past this many symbols")
	cmd.Flags().BoolVar(&o.every, "every", false, "print every generation, not only the last")
	cmd.Flags().BoolVar(&o.rules, "rules", false, "print the parsed rules first")
	return cmd
}

func (o *expandOptions) run(cmd *cobra.Command, args []string) error {
	fig, file, err := o.source.resolve(args)
	if err != nil {
		return err
	}
	depth := fig.Defaults().Depth
	if cmd.Flags().Changed("depth") {
		depth = o.depth
	}
	seed := pickSeed(cmd, o.seed, file)
	w := cmd.OutOrStdout()

	if file == nil {
		actions, err := fig.Generate(depth, seed, lsystem.WithMaxLength(o.maxLength))
		if err != nil {
			return resourceHint(err)
		}
		for _, a := range actions {
			fmt.Fprintln(w, a)
		}
		return nil
	}

	g, axiom, err := file.Grammar()
	if err != nil {
		return err
	}
	if o.rules {
		fmt.Fprintln(w, g)
	}

	show := func(gen int, seq []lsystem.Token) {
		if o.every || gen == depth {
			fmt.Fprintf(w, "%d: %s\n", gen, lsystem.JoinTokens(seq))
		}
	}
	opt := lsystem.WithMaxLength(maxLengthFor(cmd, o.maxLength, file))
	if g.Stochastic() {
		err = g.StochasticLSystem(axiom, opt).WalkSeed(depth, seed, show)
	} else {
		err = g.LSystem(axiom, opt).Walk(depth, show)
	}
	return errors.WithMessage(resourceHint(err), file.Name)
}
