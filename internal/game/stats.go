package game

// Stats are monotonic non-negative accumulators for the session. They need
// no recovery logic.
type Stats struct {
	Shots  int // accepted catch attempts
	Caught int // fish landed
	Missed int // accepted attempts that hit nothing
}

// Summary is the final report handed to the score-persistence collaborator
// when the session ends.
type Summary struct {
	Score    int
	Accuracy float64 // caught / accepted shots
	MaxCombo int
	Level    int
	Caught   int
}

// Summary returns the end-of-session report. Valid any time but meaningful
// once GameOver reports true.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := 0.0
	if s.stats.Shots > 0 {
		acc = float64(s.stats.Caught) / float64(s.stats.Shots)
	}
	return Summary{
		Score:    s.score,
		Accuracy: acc,
		MaxCombo: s.combo.Max,
		Level:    s.level.Level,
		Caught:   s.stats.Caught,
	}
}

// StatsSnapshot returns a copy of the raw counters.
func (s *Session) StatsSnapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
