package fetx

import "github.com/rs/zerolog"

// SetLogger attaches a structured logger to the session. Resolve uses it
// to report nodes that newly enter UnstableMultiple on that call; the
// zero value (zerolog.Logger{}) discards everything, same as
// zerolog.Nop(), so attaching a logger is optional.
func (s *Session) SetLogger(log zerolog.Logger) {
	s.log = log
	if s.wasMulti == nil {
		s.wasMulti = make([]bool, len(s.engine.nodes))
		for i := range s.engine.nodes {
			s.wasMulti[i] = s.engine.nodes[i].state == UnstableMultiple
		}
	}
}

// logNewMultiDriven compares the current multi-driven set against the
// one captured by the last call and emits a debug event per node that
// just transitioned into UnstableMultiple. A node leaving the state is
// not logged; a short being reasserted on a later input is.
func (s *Session) logNewMultiDriven() {
	if s.wasMulti == nil {
		return
	}
	for i := range s.engine.nodes {
		now := s.engine.nodes[i].state == UnstableMultiple
		if now && !s.wasMulti[i] {
			s.log.Debug().Int("node", i).Msg("node driven both low and high")
		}
		s.wasMulti[i] = now
	}
}
