// Command fetxtest checks a netlist against a golden-reference vector.
// The vector's columns are the netlist's inputs followed by its
// expected outputs; fetxtest simulates the input half and compares the
// resolved outputs against the expected half. It exits 0 on a pass and
// 255 otherwise (the closest a process exit status comes to -1).
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vsyn/FETX/pkg/fetx"
	"github.com/vsyn/FETX/pkg/fetxcfg"
	"github.com/vsyn/FETX/pkg/netlist"
	"github.com/vsyn/FETX/pkg/vector"
)

var (
	logLevel string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fetxtest <netlist> <vector> <time-limit> [expected-multi-drive-count]",
	Short: "Pass/fail harness for netlist simulations",
	Long: `fetxtest simulates <netlist> against the input half of <vector> and
compares the resolved outputs against the vector's output half.

<time-limit> caps the number of resolve iterations before the run is
declared a timeout; 0 means unbounded. The optional fourth argument is
the number of multiply-driven node observations the run is expected to
accumulate (default 0); any other count is a failure.

Exit status is 0 on a pass and 255 on any failure.`,
	Args:         cobra.RangeArgs(3, 4),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := fetxcfg.Load()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("log-level") {
			logLevel = cfg.LogLevel
		}
		log = fetxcfg.NewLogger(logLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		timeLimit, err := strconv.Atoi(args[2])
		if err != nil || timeLimit < 0 {
			return fmt.Errorf("time-limit %q is not a non-negative integer", args[2])
		}
		expectMulti := 0
		if len(args) == 4 {
			expectMulti, err = strconv.Atoi(args[3])
			if err != nil || expectMulti < 0 {
				return fmt.Errorf("expected-multi-drive-count %q is not a non-negative integer", args[3])
			}
		}
		return runTest(args[0], args[1], timeLimit, expectMulti)
	},
}

func init() {
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
}

func runTest(netlistPath, vectorPath string, timeLimit, expectMulti int) error {
	nl, err := netlist.Read(netlistPath)
	if err != nil {
		return fmt.Errorf("reading netlist %s: %w", netlistPath, err)
	}
	vec, err := vector.Read(vectorPath)
	if err != nil {
		return fmt.Errorf("reading vector %s: %w", vectorPath, err)
	}

	if vec.Width != len(nl.Inputs)+len(nl.Outputs) {
		return fmt.Errorf("vector is %d columns wide, netlist declares %d inputs and %d outputs",
			vec.Width, len(nl.Inputs), len(nl.Outputs))
	}

	in, expected, err := vec.Split(len(nl.Inputs))
	if err != nil {
		return err
	}

	outputs, res, err := fetx.Simulate(nl, in.Rows, timeLimit)
	if err != nil {
		return err
	}
	actual := vector.Vector{Width: expected.Width, Rows: outputs}

	if res.MultiDriven != expectMulti {
		printMismatch(expected, actual)
		return fmt.Errorf("%d multiply driven node observations, expected %d", res.MultiDriven, expectMulti)
	}

	if !equal(expected, actual) {
		printMismatch(expected, actual)
		return fmt.Errorf("outputs do not match expected outputs")
	}

	fmt.Printf("test passed: %s %s\n", netlistPath, vectorPath)
	log.Debug().Int("steps", res.Steps).Int("multiDriven", res.MultiDriven).Msg("settled")
	return nil
}

func equal(a, b vector.Vector) bool {
	if a.Width != b.Width || len(a.Rows) != len(b.Rows) {
		return false
	}
	for t := range a.Rows {
		for i := range a.Rows[t] {
			if a.Rows[t][i] != b.Rows[t][i] {
				return false
			}
		}
	}
	return true
}

func printMismatch(expected, actual vector.Vector) {
	fmt.Println("expected:")
	vector.Write(os.Stdout, expected)
	fmt.Println("actual:")
	vector.Write(os.Stdout, actual)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(255)
	}
}
