package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/guard"
	"github.com/katalvlaran/patrol/loop"
	"github.com/katalvlaran/patrol/obstruction"
	"github.com/katalvlaran/patrol/patrol"
)

// app carries the state shared by all subcommands.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
	cfg Config
}

func newApp() *app {
	return &app{v: newViper(), log: logrus.New()}
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

// rootCmd builds the command tree; a.cfg holds the resolved settings once a
// subcommand starts.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "patrol",
		Short:         "Trace a patrolling guard and find obstructions that trap it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadDotEnv(); err != nil {
				return err
			}
			cfg, err := loadConfig(a.v, cmd)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log.SetOutput(cmd.ErrOrStderr())
			a.log.SetLevel(cfg.LogLevel)
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (yaml, json or toml)")
	pf.Int(keyWorkers, runtime.GOMAXPROCS(0), "goroutines used to test candidate obstructions")
	pf.Int(keyThreshold, loop.DefaultThreshold, "departures from one cell tolerated before declaring a loop")
	pf.Bool(keyExact, false, "declare a loop on the first repeated turning point instead")
	pf.String(keyLogLevel, logrus.InfoLevel.String(), "log level (debug, info, warn, error)")

	root.AddCommand(a.runCmd(), a.traceCmd())
	return root
}

// runCmd analyzes each file and prints one table row per file.
func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE...",
		Short: "Count visited cells and trapping obstructions per board",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-24s | %-10s | %-10s | %-10s\n", "File", "Visited", "Loops", "µs")
			for _, name := range args {
				r, err := a.analyzeFile(cmd, name)
				if err != nil {
					a.log.WithError(err).WithField("file", name).Error("analysis failed")
					return err
				}
				fmt.Fprintf(out, "%-24s | %-10d | %-10d | %-10d\n", name, r.Visited, r.Loops, r.Elapsed.Microseconds())
			}
			return nil
		},
	}
}

// traceCmd renders one board with the guard's path marked X and, with
// --loops, the trapping cells marked O.
func (a *app) traceCmd() *cobra.Command {
	var loops bool
	cmd := &cobra.Command{
		Use:   "trace FILE",
		Short: "Render the guard's path on a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, start, err := readBoard(args[0])
			if err != nil {
				return err
			}
			p, err := guard.Walk(g, start, guard.Wall)
			if err != nil {
				return fmt.Errorf("patrol: trace %s: %w", args[0], err)
			}
			traps := make(map[int]bool)
			if loops {
				cells, err := patrol.Enumerate(cmd.Context(), obstruction.Build(g, guard.Wall),
					patrol.Candidates(p), a.cfg.options(a.log)...)
				if err != nil {
					return fmt.Errorf("patrol: trace %s: %w", args[0], err)
				}
				for _, pos := range cells {
					traps[pos] = true
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), g.Format(func(pos int, c rune) string {
				if traps[pos] {
					return "O"
				}
				if _, ok := p.Visited[pos]; ok && pos != start.Pos {
					return "X"
				}
				return string(c)
			}))
			return nil
		},
	}
	cmd.Flags().BoolVar(&loops, "loops", false, "also mark cells where an obstruction traps the guard")
	return cmd
}

func (a *app) analyzeFile(cmd *cobra.Command, name string) (*patrol.Report, error) {
	g, start, err := readBoard(name)
	if err != nil {
		return nil, err
	}
	r, err := patrol.Analyze(cmd.Context(), g, start, rune(guard.Wall), a.cfg.options(a.log.WithField("file", name))...)
	if err != nil {
		return nil, fmt.Errorf("patrol: %s: %w", name, err)
	}
	a.log.WithFields(logrus.Fields{"file": name, "took": r.Elapsed}).Debug("file done")
	return r, nil
}

func readBoard(name string) (*grid.Grid[rune], guard.State, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, guard.State{}, fmt.Errorf("patrol: open board: %w", err)
	}
	defer f.Close()

	g, err := grid.ParseRunes(f)
	if err != nil {
		return nil, guard.State{}, fmt.Errorf("patrol: %s: %w", name, err)
	}
	start, err := guard.Locate(g)
	if err != nil {
		return nil, guard.State{}, fmt.Errorf("patrol: %s: %w", name, err)
	}
	return g, start, nil
}
