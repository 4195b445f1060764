package main

import (
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	lsystem "github.com/viktordanov/lturtle"
	"github.com/viktordanov/lturtle/config"
	"github.com/viktordanov/lturtle/grammars"
)

type rootOptions struct {
	verbose    bool
	cpuprofile string

	profile *os.File
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "lsystem",
		Short: "Grow L-system figures and draw them with a turtle",
		Long: `lsystem expands symbol grammars by parallel rewriting and draws the
result as turtle graphics. Built-in figures: dragon, hilbert, fibdragon, tree.
Custom grammars are read from YAML files with -f.`,
		SilenceUsage:      true,
		PersistentPreRunE: o.setup,
		PersistentPostRun: o.teardown,
	}
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&o.cpuprofile, "cpuprofile", "", "write cpu profile to file")

	cmd.AddCommand(newDrawCmd(), newExpandCmd(), newAnalyseCmd(), newListCmd())
	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	lsystem.SetLogger(logger)

	if o.cpuprofile == "" {
		return nil
	}
	f, err := os.Create(o.cpuprofile)
	if err != nil {
		return errors.Wrap(err, "creating cpu profile")
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return errors.Wrap(err, "starting cpu profile")
	}
	o.profile = f
	return nil
}

func (o *rootOptions) teardown(*cobra.Command, []string) {
	if o.profile == nil {
		return
	}
	pprof.StopCPUProfile()
	o.profile.Close()
	o.profile = nil
}

// figureSource names a figure: a built-in one by argument or a file by -f.
type figureSource struct {
	file string
}

func (s *figureSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "file", "f", "", "YAML grammar file")
}

func (s *figureSource) resolve(args []string) (grammars.Figure, *config.File, error) {
	switch {
	case s.file != "" && len(args) > 0:
		return nil, nil, errors.New("give either a figure name or -f, not both")
	case s.file != "":
		file, err := config.Load(s.file)
		if err != nil {
			return nil, nil, err
		}
		fig, err := file.Figure()
		if err != nil {
			return nil, nil, err
		}
		return fig, file, nil
	case len(args) == 1:
		fig, ok := grammars.Lookup(args[0])
		if !ok {
			return nil, nil, errors.Errorf("unknown figure %q (have %v)", args[0], grammars.Names())
		}
		return fig, nil, nil
	default:
		return nil, nil, errors.New("a figure name or -f file is required")
	}
}

// resourceHint turns guard failures into advice the user can act on.
func resourceHint(err error) error {
	var re *lsystem.ResourceError
	if errors.As(err, &re) {
		return errors.Wrapf(err, "generation %d outgrew the limit; try a smaller --depth or raise --max-length", re.Generation)
	}
	return err
}
