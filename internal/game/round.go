package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Phase is where a round is in its lifecycle.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseInspect
	PhasePlay
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseInspect:
		return "inspect"
	case PhasePlay:
		return "play"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason records why a round stopped.
type EndReason int

const (
	EndNone EndReason = iota
	EndFailLimit
	EndTimeout
	EndCleared
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndFailLimit:
		return "fail_limit"
	case EndTimeout:
		return "timeout"
	case EndCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// CardSlot is one grid position. Bounds and PairID never change after setup.
type CardSlot struct {
	Index   int
	Bounds  Rect
	PairID  int
	FaceUp  bool
	Matched bool
}

// Outcome classifies what a click did to the round.
type Outcome int

const (
	ClickIgnored Outcome = iota // not in play, or a guarded slot
	ClickMissed                 // no slot under the pointer
	ClickPicked                 // first card of a candidate pair
	ClickMatched
	ClickMismatched
)

func (o Outcome) String() string {
	switch o {
	case ClickIgnored:
		return "ignored"
	case ClickMissed:
		return "miss"
	case ClickPicked:
		return "pick"
	case ClickMatched:
		return "match"
	case ClickMismatched:
		return "mismatch"
	default:
		return "unknown"
	}
}

// ClickResult is the resolver's verdict for one click. Other is the
// previously selected slot when the click completed a pair, else -1.
type ClickResult struct {
	Outcome Outcome
	Slot    int
	Other   int
}

// Round is one play-through. It is owned by a single Machine and discarded
// whole when the next round starts.
type Round struct {
	ID     string
	Number int
	Slots  []CardSlot // Slots[i].Index == i, in layout order
	Score  int
	Fails  int
	Phase  Phase
	Timer  RoundTimer
	Reason EndReason

	rules     Rules
	selection int // -1 when nothing is picked

	hidePending bool
	hideSlots   [2]int
}

// NewRound builds a round in PhaseSetup with every card face-up and both
// deadlines measured from now.
func NewRound(id string, number int, cfg Config, rng *rand.Rand, now time.Time) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pairs, err := GeneratePairs(rng, cfg.CardKinds, cfg.CardCount)
	if err != nil {
		return nil, err
	}
	mustValidPairs(pairs)
	rects, err := LayoutGrid(cfg.Grid())
	if err != nil {
		return nil, err
	}
	return newRoundFromPairs(id, number, cfg, pairs, rects, now), nil
}

func newRoundFromPairs(id string, number int, cfg Config, pairs []int, rects []Rect, now time.Time) *Round {
	r := &Round{
		ID:        id,
		Number:    number,
		Slots:     make([]CardSlot, len(pairs)),
		Phase:     PhaseSetup,
		Timer:     NewRoundTimer(now, cfg.InspectDuration(), cfg.PlayDuration()),
		rules:     cfg.Rules,
		selection: -1,
	}
	for i := range r.Slots {
		r.Slots[i] = CardSlot{Index: i, Bounds: rects[i], PairID: pairs[i], FaceUp: true}
	}
	return r
}

// Selection returns the pending first pick, if any.
func (r *Round) Selection() (int, bool) {
	return r.selection, r.selection >= 0
}

// SlotAt returns the first slot, by index, whose bounds contain the point.
func (r *Round) SlotAt(px, py float64) (int, bool) {
	for i := range r.Slots {
		if r.Slots[i].Bounds.Contains(px, py) {
			return i, true
		}
	}
	return -1, false
}

// Pairs returns the pair id of every slot in layout order.
func (r *Round) Pairs() []int {
	out := make([]int, len(r.Slots))
	for i := range r.Slots {
		out[i] = r.Slots[i].PairID
	}
	return out
}

// SetFaceUp sets every slot's face_up flag.
func (r *Round) SetFaceUp(up bool) {
	for i := range r.Slots {
		r.Slots[i].FaceUp = up
	}
}

// Cleared reports whether every slot has been matched.
func (r *Round) Cleared() bool {
	for i := range r.Slots {
		if !r.Slots[i].Matched {
			return false
		}
	}
	return true
}

// Resolve routes one click at (px,py). Only rounds in PhasePlay are mutated.
func (r *Round) Resolve(px, py float64) ClickResult {
	if r.Phase != PhasePlay {
		return ClickResult{Outcome: ClickIgnored, Slot: -1, Other: -1}
	}
	r.flushHide()
	idx, ok := r.SlotAt(px, py)
	if !ok {
		return ClickResult{Outcome: ClickMissed, Slot: -1, Other: -1}
	}
	return r.pick(idx)
}

func (r *Round) pick(idx int) ClickResult {
	slot := &r.Slots[idx]
	if r.rules.GuardRevealed && (slot.Matched || idx == r.selection) {
		return ClickResult{Outcome: ClickIgnored, Slot: idx, Other: -1}
	}
	slot.FaceUp = true

	if r.selection < 0 {
		r.selection = idx
		return ClickResult{Outcome: ClickPicked, Slot: idx, Other: -1}
	}

	prev := r.selection
	r.selection = -1
	if r.Slots[prev].PairID == slot.PairID {
		r.Score++
		r.Slots[prev].Matched = true
		slot.Matched = true
		return ClickResult{Outcome: ClickMatched, Slot: idx, Other: prev}
	}
	r.Fails++
	if r.rules.RehideMismatch {
		r.hidePending = true
		r.hideSlots = [2]int{prev, idx}
	}
	return ClickResult{Outcome: ClickMismatched, Slot: idx, Other: prev}
}

// flushHide turns the last mismatched pair face-down again. Matched slots
// stay up.
func (r *Round) flushHide() {
	if !r.hidePending {
		return
	}
	r.hidePending = false
	for _, i := range r.hideSlots {
		if !r.Slots[i].Matched {
			r.Slots[i].FaceUp = false
		}
	}
}

// SlotView is what a player can see of a slot. PairID is -1 while the card is
// face-down.
type SlotView struct {
	Index   int
	Center  Point
	FaceUp  bool
	Matched bool
	PairID  int
}

// BoardView is the player-visible state of a round.
type BoardView struct {
	Phase     Phase
	Slots     []SlotView
	Selection int
}

// View returns the player-visible board.
func (r *Round) View() BoardView {
	v := BoardView{Phase: r.Phase, Slots: make([]SlotView, len(r.Slots)), Selection: r.selection}
	for i, s := range r.Slots {
		pid := -1
		if s.FaceUp {
			pid = s.PairID
		}
		v.Slots[i] = SlotView{Index: i, Center: s.Bounds.Center(), FaceUp: s.FaceUp, Matched: s.Matched, PairID: pid}
	}
	return v
}

// Summary is a one-line description of the round's result.
func (r *Round) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "round %d: score=%d fails=%d", r.Number, r.Score, r.Fails)
	if r.Phase == PhaseEnded {
		fmt.Fprintf(&b, " ended=%s", r.Reason)
	}
	return b.String()
}
