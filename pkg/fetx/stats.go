package fetx

// Stats accumulates propagation counters over the life of a session.
type Stats struct {
	ResolveCalls      uint64
	ConductionChanges uint64
	DriveChanges      uint64
}

// Stats returns a snapshot of the session's propagation counters.
func (s *Session) Stats() Stats {
	return s.engine.stats
}
