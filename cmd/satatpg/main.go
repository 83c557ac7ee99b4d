// Command satatpg generates stuck-at test patterns for a combinational
// ISCAS-89 netlist using SAT-based ATPG.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/sat-atpg/pkg/engine"
	"github.com/fyerfyer/sat-atpg/pkg/faultcnf"
	"github.com/fyerfyer/sat-atpg/pkg/iscas89"
	"github.com/fyerfyer/sat-atpg/pkg/solver"
	"github.com/fyerfyer/sat-atpg/pkg/telemetry"
)

var (
	timeBudgetSeconds  uint64
	thresholdRatio     float64
	writeFaults        bool
	writeSolutions     bool
	writeDetectability bool
	shortStats         bool
	verbose            bool
	logFormat          string
)

var rootCmd = &cobra.Command{
	Use:           "satatpg <netlist>",
	Short:         "SAT-based stuck-at ATPG for combinational ISCAS-89 netlists",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runATPG,
}

func init() {
	rootCmd.Flags().Uint64Var(&timeBudgetSeconds, "time-budget", 0, "total wall-clock budget in seconds (0 = unbounded)")
	rootCmd.Flags().Float64Var(&thresholdRatio, "threshold-ratio", faultcnf.DefaultThresholdRatio, "fanout-cone vs whole-circuit CNF switch ratio")
	rootCmd.Flags().BoolVar(&writeFaults, "write-faults", false, "print each fault as it is processed")
	rootCmd.Flags().BoolVar(&writeSolutions, "write-solutions", false, "print the primary-input witness for each detected fault")
	rootCmd.Flags().BoolVar(&writeDetectability, "write-detectability", false, "print a detectability tag for each fault")
	rootCmd.Flags().BoolVar(&shortStats, "short-stats", false, "print the one-line summary instead of the verbose one")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text", "log output format: text or json")
}

func runATPG(cmd *cobra.Command, args []string) error {
	netlistPath := args[0]

	logLevel := telemetry.LevelInfo
	if verbose {
		logLevel = telemetry.LevelDebug
	}
	logFmt := telemetry.FormatText
	if logFormat == "json" {
		logFmt = telemetry.FormatJSON
	}
	logger := telemetry.NewLogger(telemetry.Config{Level: logLevel, Format: logFmt, Output: os.Stdout})

	f, err := os.Open(netlistPath)
	if err != nil {
		return fmt.Errorf("opening netlist: %w", err)
	}
	defer f.Close()

	graph, err := iscas89.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing netlist: %w", err)
	}
	logger.Info(graph.Stats())

	cfg := engine.Config{
		ThresholdRatio:     thresholdRatio,
		TimeBudget:         time.Duration(timeBudgetSeconds) * time.Second,
		WriteFaults:        writeFaults,
		WriteSolutions:     writeSolutions,
		WriteDetectability: writeDetectability,
	}

	sv := solver.NewGiniSolver()

	result, err := engine.Run(graph, cfg, sv, logger)
	if err != nil {
		return err
	}

	if shortStats {
		fmt.Println(result.Summary.Short())
	} else {
		fmt.Print(result.Summary.Verbose())
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
