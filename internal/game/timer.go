package game

import (
	"math"
	"time"
)

// Clock supplies the current time. time.Now carries a monotonic reading, so
// deadlines computed from systemClock are immune to wall-clock jumps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the real clock.
var SystemClock Clock = systemClock{}

// FakeClock is a manually advanced clock for tests and headless runs.
type FakeClock struct {
	now time.Time
}

// NewFakeClock returns a clock stopped at start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// RoundTimer holds the two deadlines of a round. It has no notion of phase;
// the state machine decides what an expired deadline means.
type RoundTimer struct {
	InspectionDeadline time.Time
	PlayDeadline       time.Time
	play               time.Duration
}

// NewRoundTimer sets both deadlines from now.
func NewRoundTimer(now time.Time, inspect, play time.Duration) RoundTimer {
	inspection := now.Add(inspect)
	return RoundTimer{
		InspectionDeadline: inspection,
		PlayDeadline:       inspection.Add(play),
		play:               play,
	}
}

// RestartPlay moves the play deadline to now + the play duration.
func (t *RoundTimer) RestartPlay(now time.Time) {
	t.PlayDeadline = now.Add(t.play)
}

// Remaining is deadline - now.
func Remaining(deadline, now time.Time) time.Duration {
	return deadline.Sub(now)
}

// Expired reports remaining <= 0.
func Expired(deadline, now time.Time) bool {
	return Remaining(deadline, now) <= 0
}

// DisplaySeconds is the whole-second countdown shown on the HUD. Nothing is
// shown once the remaining time reaches zero.
func DisplaySeconds(remaining time.Duration) (int, bool) {
	if remaining <= 0 {
		return 0, false
	}
	return int(math.Ceil(remaining.Seconds())), true
}
