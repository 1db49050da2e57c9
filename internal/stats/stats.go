// Package stats tracks cumulative results across game sessions.
package stats

// Stats accumulates results over every round ever played. All counters
// are non-negative and GamesPlayed always equals Wins plus Losses.
type Stats struct {
	GamesPlayed int
	Wins        int
	Losses      int
	TotalScore  int
}

// Record folds one finished round into the totals. Score only counts
// toward the running total on a win; a lost round is worth nothing.
func (s *Stats) Record(won bool, score int) {
	s.GamesPlayed++
	if won {
		s.Wins++
		s.TotalScore += score
	} else {
		s.Losses++
	}
}

// WinRate returns the percentage of rounds won, or 0 before any round.
func (s Stats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// AverageScore returns the mean score per round, or 0 before any round.
func (s Stats) AverageScore() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.GamesPlayed)
}
