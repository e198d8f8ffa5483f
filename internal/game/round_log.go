package game

import (
	"fmt"
	"strings"
)

// Event kinds recorded by the state machine.
const (
	EventRoundStart = "round_start"
	EventPhase      = "phase"
	EventPick       = "pick"
	EventMatch      = "match"
	EventMismatch   = "mismatch"
	EventIgnored    = "ignored"
	EventMiss       = "miss"
	EventRoundEnd   = "round_end"
	EventShutdown   = "shutdown"
)

// RoundEvent is one thing that happened during a session.
type RoundEvent struct {
	Frame int
	Round int    // 1-based round number, 0 before the first round
	Phase string // phase of the round when the event was recorded
	Kind  string
	Slot  int // -1 when no slot is involved
	Value string
}

// String formats the event as a fixed-width log line.
//
//	[F=0212] R01 play     mismatch     slot=7 pair 3 vs 1
func (e RoundEvent) String() string {
	slot := "--"
	if e.Slot >= 0 {
		slot = fmt.Sprintf("slot=%d", e.Slot)
	}
	return fmt.Sprintf("[F=%04d] R%02d %-8s %-12s %-7s %s",
		e.Frame, e.Round, e.Phase, e.Kind, slot, e.Value)
}

// RoundLog collects events for tests and headless reports. Unlike EventFeed
// it is unbounded.
type RoundLog struct {
	entries []RoundEvent
	verbose bool
}

// NewRoundLog creates a log. When verbose is false, clicks that hit nothing
// or were ignored are not recorded.
func NewRoundLog(verbose bool) *RoundLog {
	return &RoundLog{verbose: verbose}
}

// Add records an event.
func (rl *RoundLog) Add(e RoundEvent) {
	rl.entries = append(rl.entries, e)
}

// AddVerbose records an event only in verbose mode.
func (rl *RoundLog) AddVerbose(e RoundEvent) {
	if !rl.verbose {
		return
	}
	rl.Add(e)
}

// Entries returns a copy of all recorded events.
func (rl *RoundLog) Entries() []RoundEvent {
	return append([]RoundEvent(nil), rl.entries...)
}

// Filter returns events of the given kind; "" matches every kind.
func (rl *RoundLog) Filter(kind string) []RoundEvent {
	var out []RoundEvent
	for _, e := range rl.entries {
		if kind != "" && e.Kind != kind {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterRound returns the events of one round.
func (rl *RoundLog) FilterRound(round int) []RoundEvent {
	var out []RoundEvent
	for _, e := range rl.entries {
		if e.Round == round {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events have the given kind.
func (rl *RoundLog) Count(kind string) int {
	return len(rl.Filter(kind))
}

// LastOf returns the most recent event of a kind.
func (rl *RoundLog) LastOf(kind string) (RoundEvent, bool) {
	for i := len(rl.entries) - 1; i >= 0; i-- {
		if rl.entries[i].Kind == kind {
			return rl.entries[i], true
		}
	}
	return RoundEvent{}, false
}

// HasEntry reports whether an event of kind has a value containing substr.
func (rl *RoundLog) HasEntry(kind, substr string) bool {
	for _, e := range rl.entries {
		if e.Kind == kind && strings.Contains(e.Value, substr) {
			return true
		}
	}
	return false
}

// Format renders every event, one per line.
func (rl *RoundLog) Format() string {
	var b strings.Builder
	for _, e := range rl.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
