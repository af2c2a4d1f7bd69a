// Command fetx simulates a transistor netlist against a test vector.
// With no arguments it simulates a built-in CMOS inverter; with a
// netlist path and a vector path it prints the resolved output grid,
// one row per time step, to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vsyn/FETX/pkg/fetx"
	"github.com/vsyn/FETX/pkg/fetxcfg"
	"github.com/vsyn/FETX/pkg/netlist"
	"github.com/vsyn/FETX/pkg/vector"
)

var (
	timeLimit int
	logLevel  string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fetx [netlist vector]",
	Short: "Switch-level digital circuit simulator",
	Long: `fetx computes the steady-state logic level of every node in a
transistor netlist by iterating the circuit until it quiesces.

With no arguments it simulates a built-in CMOS inverter. With a netlist
path and a vector path it drives the netlist's inputs with one vector
row per time step and prints the resolved output rows to stdout.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts 0 or 2 args, received %d", len(args))
		}
		return nil
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := fetxcfg.Load()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("time-limit") {
			timeLimit = cfg.TimeLimit
		}
		if !cmd.Flags().Changed("log-level") {
			logLevel = cfg.LogLevel
		}
		log = fetxcfg.NewLogger(logLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runInverter()
		}
		return runFiles(args[0], args[1])
	},
}

func init() {
	rootCmd.Flags().IntVar(&timeLimit, "time-limit", 0, "cap on resolve iterations before reporting a timeout (0 = unbounded)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
}

// runInverter simulates the built-in CMOS inverter: nodes 0=GND, 1=Vcc,
// 2=in, 3=out.
func runInverter() error {
	nl := fetx.Netlist{
		Transistors: []fetx.Descriptor{
			{Type: fetx.P, Gate: 2, Source: 1, Drain: 3},
			{Type: fetx.N, Gate: 2, Source: 3, Drain: 0},
		},
		Inputs:  []int{0, 1, 2},
		Outputs: []int{3},
	}

	inputs := [][]fetx.State{
		{fetx.Low, fetx.High, fetx.Low},
		{fetx.Low, fetx.High, fetx.High},
	}

	log.Info().Msg("simulating built-in CMOS inverter")

	outputs, res, err := fetx.Simulate(nl, inputs, timeLimit)
	if err != nil {
		return err
	}

	for t, row := range outputs {
		fmt.Printf("in=%v out=%v\n", inputs[t][2], row[0])
	}
	log.Debug().Int("steps", res.Steps).Int("multiDriven", res.MultiDriven).Msg("settled")
	return nil
}

func runFiles(netlistPath, vectorPath string) error {
	nl, err := netlist.Read(netlistPath)
	if err != nil {
		return fmt.Errorf("reading netlist %s: %w", netlistPath, err)
	}
	in, err := vector.Read(vectorPath)
	if err != nil {
		return fmt.Errorf("reading vector %s: %w", vectorPath, err)
	}
	if in.Width != len(nl.Inputs) {
		return fmt.Errorf("vector is %d columns wide, netlist declares %d inputs", in.Width, len(nl.Inputs))
	}

	outputs, res, err := fetx.Simulate(nl, in.Rows, timeLimit)
	if err != nil {
		return err
	}

	log.Debug().
		Int("steps", res.Steps).
		Int("multiDriven", res.MultiDriven).
		Int("timeSteps", len(outputs)).
		Msg("settled")

	return vector.Write(os.Stdout, vector.Vector{Width: len(nl.Outputs), Rows: outputs})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
