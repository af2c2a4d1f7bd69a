package fetx

import "fmt"

// SimResult reports what a Simulate run consumed and observed: Steps is
// the number of unresolved Resolve iterations across all time steps, and
// MultiDriven accumulates CountMultiDriven once per settled time step.
type SimResult struct {
	Steps       int
	MultiDriven int
}

// Simulate drives nl with one row of input states per time step and
// returns the resolved output row for each. Every input row must be
// exactly as wide as the netlist's input list. timeLimit bounds the
// total number of unresolved Resolve iterations across the whole run;
// zero means unbounded. On ErrTimeout the rows resolved so far are
// returned along with the partial result.
func Simulate(nl Netlist, inputs [][]State, timeLimit int) ([][]State, SimResult, error) {
	var res SimResult

	for t, row := range inputs {
		if len(row) != len(nl.Inputs) {
			return nil, res, fmt.Errorf("fetx: input row %d has %d states, netlist declares %d inputs: %w",
				t, len(row), len(nl.Inputs), ErrParam)
		}
	}

	s, err := BuildSession(nl)
	if err != nil {
		return nil, res, err
	}
	defer s.Close()

	outputs := make([][]State, 0, len(inputs))
	for _, row := range inputs {
		for i, st := range row {
			if err := s.SetInput(i, st); err != nil {
				return outputs, res, err
			}
		}

		for !s.Resolve() {
			res.Steps++
			if timeLimit != 0 && res.Steps > timeLimit {
				return outputs, res, fmt.Errorf("fetx: circuit did not settle within %d iterations: %w",
					timeLimit, ErrTimeout)
			}
		}

		res.MultiDriven += s.CountMultiDriven()

		outRow := make([]State, len(nl.Outputs))
		for i := range outRow {
			outRow[i], _ = s.ReadOutput(i)
		}
		outputs = append(outputs, outRow)
	}

	return outputs, res, nil
}
