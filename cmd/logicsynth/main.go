// Command logicsynth is the §6 driver: it reads an AIGER file, runs the
// model-checking pipeline over every real primary output, and reports
// the verdict via exit code and stdout, mirroring the exit-code/stdout
// contract of ehrlich-b-wingthing's wt CLI commands (RunE returning a
// plain error, with os.Exit only at the very top).
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/logicsynth/aig"
	"github.com/katalvlaran/logicsynth/codec/aiger"
	"github.com/katalvlaran/logicsynth/codec/blif"
	"github.com/katalvlaran/logicsynth/internal/config"
	"github.com/katalvlaran/logicsynth/internal/logging"
	"github.com/katalvlaran/logicsynth/mc"
	"github.com/katalvlaran/logicsynth/seqaig"
)

// Exit codes per §6: no other values are ever returned.
const (
	exitSAT       = 10
	exitUNSAT     = 20
	exitUndecided = 0
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run builds and executes the root command, returning the process exit
// code instead of calling os.Exit directly so it stays testable.
func run(args []string) int {
	var configPath string
	var logLevel string
	var blifOut string

	code := exitUndecided
	root := &cobra.Command{
		Use:   "logicsynth <aiger-file>",
		Short: "Bounded model checking over AIGER circuits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := logging.Init(logLevel, ""); err != nil {
				return fmt.Errorf("init logging: %w", err)
			}

			exit, err := checkFile(cmdArgs[0], blifOut, cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			code = exit
			return nil
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "path to a SolverConfig YAML file")
	root.Flags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	root.Flags().StringVar(&blifOut, "blif", "", "also write the input circuit as BLIF to this path")
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "logicsynth: %v\n", err)
		return exitUndecided
	}
	return code
}

// checkFile reads the AIGER file at path, optionally emits a BLIF
// rendering of it, runs the model-checking pipeline, writes the §6
// verdict to out, and returns the exit code to use.
func checkFile(path, blifOut string, cfg *config.SolverConfig, out io.Writer) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return exitUndecided, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, initValues, err := aiger.Read(f)
	if err != nil {
		return exitUndecided, fmt.Errorf("read AIGER: %w", err)
	}
	return checkFileOnManager(m, initValues, blifOut, cfg, out)
}

// checkFileOnManager runs the BLIF side-output and model-checking
// pipeline over an already-parsed circuit; split out from checkFile so
// it can be exercised directly with hand-built fixtures.
func checkFileOnManager(m *aig.Manager, initValues []seqaig.LatchValue, blifOut string, cfg *config.SolverConfig, out io.Writer) (int, error) {
	stats := m.Stats()
	logging.Debug("loaded AIGER", "pis", stats.NumPIs, "pos", stats.NumPOs, "latches", stats.NumLatches,
		"ands", stats.NumAnds, "max_level", stats.MaxLevel)

	if blifOut != "" {
		if err := writeBlifFile(blifOut, m, initValues); err != nil {
			return exitUndecided, fmt.Errorf("write BLIF: %w", err)
		}
	}

	g := seqaig.NewGraph(m, initValues)
	opts := optionsFromConfig(cfg)
	opts.Trace = func(stage, status string) {
		logging.Debug("pipeline stage", "stage", stage, "status", status)
	}

	result := mc.Check(m, g, initValues, opts)
	switch result.Status {
	case mc.SAT:
		if err := aiger.WriteWitness(out, result.Cex.PIs); err != nil {
			return exitUndecided, fmt.Errorf("write witness: %w", err)
		}
		return exitSAT, nil
	case mc.UNSAT:
		if err := aiger.WriteUnsat(out); err != nil {
			return exitUndecided, fmt.Errorf("write unsat: %w", err)
		}
		return exitUNSAT, nil
	default:
		logging.Warn("verdict undecided", "stage", result.Stage)
		return exitUndecided, nil
	}
}

func writeBlifFile(path string, m *aig.Manager, initValues []seqaig.LatchValue) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return blif.Write(f, m, initValues, "logicsynth")
}

func optionsFromConfig(cfg *config.SolverConfig) mc.Options {
	opts := mc.DefaultOptions()
	if cfg.ModelCheck.FramesMax > 0 {
		opts.FramesMax = cfg.ModelCheck.FramesMax
	}
	if cfg.ModelCheck.DeepFramesMax > 0 {
		opts.DeepFramesMax = cfg.ModelCheck.DeepFramesMax
	}
	if cfg.ModelCheck.RegisterLimit > 0 {
		opts.RegisterLimit = cfg.ModelCheck.RegisterLimit
	}
	if cfg.ModelCheck.SeqSimplifyIters > 0 {
		opts.SeqSimplifyIters = cfg.ModelCheck.SeqSimplifyIters
	}
	opts.ConflictBudget = cfg.ModelCheck.ConflictBudget
	if cfg.ModelCheck.DeadlineSeconds > 0 {
		opts.Deadline = time.Now().Add(time.Duration(cfg.ModelCheck.DeadlineSeconds) * time.Second)
	}
	opts.MinimizeRetimeArea = cfg.Retime.MinimizeArea
	return opts
}
