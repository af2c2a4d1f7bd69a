package fetx

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Session is the public façade over a built netlist: the intermediate
// graph and the runtime engine it produces are both private, reachable
// only through SetInput/Resolve/ReadOutput/CountMultiDriven.
type Session struct {
	engine  *Engine
	outputs []int

	log      zerolog.Logger
	wasMulti []bool
}

// BuildSession allocates the intermediate graph and runtime engine for
// nl and grows one conduction tree per declared input.
func BuildSession(nl Netlist) (*Session, error) {
	nodeCount := nl.NodeCount
	if nodeCount == 0 {
		nodeCount = inferNodeCount(nl.Transistors)
	}
	if err := nl.validate(nodeCount); err != nil {
		return nil, err
	}

	g := buildGraph(nl, nodeCount)
	e := buildEngine(g, nl)

	outputs := make([]int, len(nl.Outputs))
	copy(outputs, nl.Outputs)

	return &Session{engine: e, outputs: outputs}, nil
}

// SetInput drives the input at the given ordinal (its position in the
// netlist's declared input list) to state. Any of the six states is
// accepted and counted correctly, including Undriven and the unstable
// pair: the caller is responsible for using Low/High (and optionally
// UnstableLow/UnstableHigh) to actually drive a signal, and Undriven to
// release one.
func (s *Session) SetInput(ordinal int, state State) error {
	if ordinal < 0 || ordinal >= len(s.engine.rootTreeNodes) {
		return fmt.Errorf("fetx: input ordinal %d: %w", ordinal, ErrRange)
	}
	s.engine.setTreeNodeState(s.engine.rootTreeNodes[ordinal], state)
	return nil
}

// Resolve drains the engine's worklists to a fixed point and reports
// whether the transistor worklist ended empty. Callers loop until it
// reports true, typically under an iteration cap.
func (s *Session) Resolve() bool {
	settled := s.engine.Resolve()
	s.logNewMultiDriven()
	return settled
}

// ReadOutput returns the current lattice state of the output at the
// given ordinal. The value is only meaningful once Resolve has
// reported true.
func (s *Session) ReadOutput(ordinal int) (State, error) {
	if ordinal < 0 || ordinal >= len(s.outputs) {
		return Undriven, fmt.Errorf("fetx: output ordinal %d: %w", ordinal, ErrRange)
	}
	return s.engine.nodes[s.outputs[ordinal]].state, nil
}

// CountMultiDriven returns the number of nodes currently in
// UnstableMultiple.
func (s *Session) CountMultiDriven() int {
	return s.engine.countMultiDriven()
}

// Close releases the session. The engine's arenas are ordinary Go
// slices reclaimed by the garbage collector, so there is nothing to
// free by hand; Close exists so callers can pair every build with a
// teardown in a defer without special-casing it.
func (s *Session) Close() error {
	return nil
}
