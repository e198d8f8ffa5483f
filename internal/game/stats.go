package game

import (
	"fmt"
	"strings"
)

// SessionStats accumulates results across the rounds of one session.
type SessionStats struct {
	Rounds     int
	Losses     int // ended by the fail limit
	Timeouts   int
	Clears     int
	TotalScore int
	TotalFails int
	BestScore  int
}

// Record folds a finished round into the totals. Rounds that have not ended
// are ignored.
func (s *SessionStats) Record(r *Round) {
	if r == nil || r.Phase != PhaseEnded {
		return
	}
	s.Rounds++
	s.TotalScore += r.Score
	s.TotalFails += r.Fails
	if r.Score > s.BestScore {
		s.BestScore = r.Score
	}
	switch r.Reason {
	case EndFailLimit:
		s.Losses++
	case EndTimeout:
		s.Timeouts++
	case EndCleared:
		s.Clears++
	}
}

// AverageScore returns the mean score per round, 0 with no rounds.
func (s SessionStats) AverageScore() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Rounds)
}

// AverageFails returns the mean fails per round, 0 with no rounds.
func (s SessionStats) AverageFails() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.TotalFails) / float64(s.Rounds)
}

// Merge adds other's totals into s.
func (s *SessionStats) Merge(other SessionStats) {
	s.Rounds += other.Rounds
	s.Losses += other.Losses
	s.Timeouts += other.Timeouts
	s.Clears += other.Clears
	s.TotalScore += other.TotalScore
	s.TotalFails += other.TotalFails
	if other.BestScore > s.BestScore {
		s.BestScore = other.BestScore
	}
}

// Summary formats the totals for the intermission screen and the clipboard.
func (s SessionStats) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rounds=%d best=%d avg_score=%.2f avg_fails=%.2f\n",
		s.Rounds, s.BestScore, s.AverageScore(), s.AverageFails())
	fmt.Fprintf(&b, "losses=%d timeouts=%d clears=%d", s.Losses, s.Timeouts, s.Clears)
	return b.String()
}
