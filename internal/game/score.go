package game

// Score returns the points earned for a finished round. A lost round is
// worth nothing; a won round earns ten points per letter minus five per
// wrong guess, never below zero.
func Score(s *State) int {
	if !s.Won() {
		return 0
	}
	points := s.WordLength()*10 - s.wrongCount*5
	if points < 0 {
		return 0
	}
	return points
}
