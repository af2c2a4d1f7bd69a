package fetx

import (
	"errors"
	"testing"
)

func inverterNetlist() Netlist {
	return Netlist{
		Transistors: []Descriptor{
			{Type: P, Gate: 2, Source: 1, Drain: 3},
			{Type: N, Gate: 2, Source: 3, Drain: 0},
		},
		Inputs:  []int{0, 1, 2},
		Outputs: []int{3},
	}
}

// inverterChainNetlist is three inverters in series: nodes 0=gnd,
// 1=vcc, 2=in, 3 and 4 internal, 5=out.
func inverterChainNetlist() Netlist {
	return Netlist{
		Transistors: []Descriptor{
			{Type: P, Gate: 2, Source: 1, Drain: 3},
			{Type: N, Gate: 2, Source: 3, Drain: 0},
			{Type: P, Gate: 3, Source: 1, Drain: 4},
			{Type: N, Gate: 3, Source: 4, Drain: 0},
			{Type: P, Gate: 4, Source: 1, Drain: 5},
			{Type: N, Gate: 4, Source: 5, Drain: 0},
		},
		Inputs:  []int{0, 1, 2},
		Outputs: []int{5},
	}
}

func TestSimulateInverter(t *testing.T) {
	inputs := [][]State{
		{Low, High, Low},
		{Low, High, High},
	}

	outputs, res, err := Simulate(inverterNetlist(), inputs, 0)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if len(outputs) != 2 {
		t.Fatalf("got %d output rows, want 2", len(outputs))
	}
	if outputs[0][0] != High {
		t.Errorf("t=0: output = %v, want High", outputs[0][0])
	}
	if outputs[1][0] != Low {
		t.Errorf("t=1: output = %v, want Low", outputs[1][0])
	}
	if res.MultiDriven != 0 {
		t.Errorf("MultiDriven = %d, want 0", res.MultiDriven)
	}
}

func TestSimulateWidthMismatch(t *testing.T) {
	inputs := [][]State{{Low, High}} // netlist declares 3 inputs

	_, _, err := Simulate(inverterNetlist(), inputs, 0)
	if !errors.Is(err, ErrParam) {
		t.Fatalf("Simulate with short row: err = %v, want ErrParam", err)
	}
}

// TestSimulateTimeout drives a three-stage inverter chain, which needs
// one resolve iteration per stage, under a cap of one iteration.
func TestSimulateTimeout(t *testing.T) {
	inputs := [][]State{{Low, High, Low}}

	_, _, err := Simulate(inverterChainNetlist(), inputs, 1)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Simulate with cap 1: err = %v, want ErrTimeout", err)
	}

	outputs, _, err := Simulate(inverterChainNetlist(), inputs, 64)
	if err != nil {
		t.Fatalf("Simulate with cap 64: %v", err)
	}
	if outputs[0][0] != High {
		t.Errorf("odd chain, in=Low: output = %v, want High", outputs[0][0])
	}
}

func TestSimulateAccumulatesMultiDriven(t *testing.T) {
	// N-type and P-type both enabled onto node 4 (the short of seed
	// scenario 2), driven on both of two time steps.
	nl := Netlist{
		Transistors: []Descriptor{
			{Type: N, Gate: 2, Source: 0, Drain: 4},
			{Type: P, Gate: 3, Source: 1, Drain: 4},
		},
		Inputs:  []int{0, 1, 2, 3},
		Outputs: []int{4},
	}
	inputs := [][]State{
		{Low, High, High, Low},
		{Low, High, High, Low},
	}

	outputs, res, err := Simulate(nl, inputs, 0)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if outputs[0][0] != UnstableMultiple || outputs[1][0] != UnstableMultiple {
		t.Errorf("outputs = %v, want UnstableMultiple on both rows", outputs)
	}
	if res.MultiDriven != 2 {
		t.Errorf("MultiDriven = %d, want 2 (one observation per row)", res.MultiDriven)
	}
}

func TestStatsAccumulate(t *testing.T) {
	s, err := BuildSession(inverterNetlist())
	if err != nil {
		t.Fatalf("BuildSession: %v", err)
	}
	s.SetInput(0, Low)
	s.SetInput(1, High)
	s.SetInput(2, Low)
	resolveUntilSettled(t, s, 16)

	st := s.Stats()
	if st.ResolveCalls == 0 {
		t.Error("ResolveCalls = 0 after resolving")
	}
	if st.DriveChanges == 0 {
		t.Error("DriveChanges = 0 after driving three inputs")
	}
}
