package game

import (
	"math/rand"
	"testing"
	"time"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// playRound builds a round in PhasePlay with fixed pairs laid out in a
// single row of cards with no gaps, all face-down.
func playRound(t *testing.T, pairs []int, rules Rules) *Round {
	t.Helper()
	cfg := DefaultConfig()
	cfg.CardCount = len(pairs)
	cfg.Columns = len(pairs)
	cfg.OriginX, cfg.OriginY = 0, 0
	cfg.CardWidth, cfg.CardHeight = 100, 100
	cfg.GapH, cfg.GapV = 0, 0
	cfg.Rules = rules
	rects, err := LayoutGrid(cfg.Grid())
	if err != nil {
		t.Fatalf("LayoutGrid: %v", err)
	}
	r := newRoundFromPairs("test", 1, cfg, pairs, rects, testEpoch)
	r.SetFaceUp(false)
	r.Phase = PhasePlay
	return r
}

func clickSlot(r *Round, idx int) ClickResult {
	c := r.Slots[idx].Bounds.Center()
	return r.Resolve(c.X, c.Y)
}

func TestNewRound_AllFaceUpInSetup(t *testing.T) {
	r, err := NewRound("id", 1, DefaultConfig(), rand.New(rand.NewSource(5)), testEpoch)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	if r.Phase != PhaseSetup {
		t.Fatalf("expected setup phase, got %s", r.Phase)
	}
	if r.Score != 0 || r.Fails != 0 {
		t.Fatalf("expected zero counters, got score=%d fails=%d", r.Score, r.Fails)
	}
	if _, ok := r.Selection(); ok {
		t.Fatal("expected no selection")
	}
	for i, s := range r.Slots {
		if s.Index != i {
			t.Fatalf("slot %d has index %d", i, s.Index)
		}
		if !s.FaceUp {
			t.Fatalf("slot %d should start face-up", i)
		}
	}
}

func TestNewRound_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CardCount = 7
	if _, err := NewRound("id", 1, cfg, rand.New(rand.NewSource(1)), testEpoch); err == nil {
		t.Fatal("expected an error for an odd card count")
	}
}

func TestResolve_FirstClickOnlySelects(t *testing.T) {
	r := playRound(t, []int{0, 1, 0, 1}, Rules{})
	res := clickSlot(r, 1)
	if res.Outcome != ClickPicked || res.Slot != 1 {
		t.Fatalf("expected pick of slot 1, got %+v", res)
	}
	if r.Score != 0 || r.Fails != 0 {
		t.Fatalf("first click changed counters: score=%d fails=%d", r.Score, r.Fails)
	}
	if sel, ok := r.Selection(); !ok || sel != 1 {
		t.Fatalf("expected selection 1, got %d,%v", sel, ok)
	}
	if !r.Slots[1].FaceUp {
		t.Fatal("picked slot should be revealed")
	}
}

func TestResolve_MatchIncrementsScoreOnly(t *testing.T) {
	r := playRound(t, []int{0, 1, 0, 1}, Rules{})
	clickSlot(r, 0)
	res := clickSlot(r, 2)
	if res.Outcome != ClickMatched || res.Other != 0 {
		t.Fatalf("expected match with slot 0, got %+v", res)
	}
	if r.Score != 1 || r.Fails != 0 {
		t.Fatalf("expected score=1 fails=0, got score=%d fails=%d", r.Score, r.Fails)
	}
	if _, ok := r.Selection(); ok {
		t.Fatal("selection should be cleared after a match")
	}
	if !r.Slots[0].Matched || !r.Slots[2].Matched || !r.Slots[0].FaceUp || !r.Slots[2].FaceUp {
		t.Fatal("matched slots should be marked and stay face-up")
	}
}

func TestResolve_MismatchIncrementsFailsOnly(t *testing.T) {
	r := playRound(t, []int{0, 1, 0, 1}, Rules{})
	clickSlot(r, 0)
	res := clickSlot(r, 1)
	if res.Outcome != ClickMismatched {
		t.Fatalf("expected mismatch, got %+v", res)
	}
	if r.Score != 0 || r.Fails != 1 {
		t.Fatalf("expected score=0 fails=1, got score=%d fails=%d", r.Score, r.Fails)
	}
	if _, ok := r.Selection(); ok {
		t.Fatal("selection should be cleared after a mismatch")
	}
	// Observed behaviour: mismatched cards are not turned back over.
	if !r.Slots[0].FaceUp || !r.Slots[1].FaceUp {
		t.Fatal("mismatched cards should stay face-up without RehideMismatch")
	}
	clickSlot(r, 3)
	if !r.Slots[0].FaceUp || !r.Slots[1].FaceUp {
		t.Fatal("mismatched cards should stay face-up after later clicks")
	}
}

func TestResolve_MissIsNotAnError(t *testing.T) {
	r := playRound(t, []int{0, 0}, Rules{})
	res := r.Resolve(-50, -50)
	if res.Outcome != ClickMissed {
		t.Fatalf("expected miss, got %+v", res)
	}
	if r.Slots[0].FaceUp || r.Slots[1].FaceUp {
		t.Fatal("a miss should not reveal anything")
	}
}

func TestResolve_SharedEdgePicksLowestIndex(t *testing.T) {
	r := playRound(t, []int{0, 1, 0, 1}, Rules{})
	// Slots 0 and 1 share the edge x=100.
	res := r.Resolve(100, 50)
	if res.Slot != 0 {
		t.Fatalf("expected slot 0 on the shared edge, got %d", res.Slot)
	}
}

func TestResolve_IgnoredOutsidePlay(t *testing.T) {
	r := playRound(t, []int{0, 0}, Rules{})
	for _, p := range []Phase{PhaseSetup, PhaseInspect, PhaseEnded} {
		r.Phase = p
		res := clickSlot(r, 0)
		if res.Outcome != ClickIgnored {
			t.Fatalf("phase %s: expected ignored, got %+v", p, res)
		}
	}
	if r.Score != 0 || r.Fails != 0 || r.Slots[0].FaceUp {
		t.Fatal("clicks outside play must not mutate the round")
	}
}

func TestResolve_ReclickSelfMatches_Observed(t *testing.T) {
	r := playRound(t, []int{0, 1, 0, 1}, Rules{})
	clickSlot(r, 3)
	res := clickSlot(r, 3)
	if res.Outcome != ClickMatched || r.Score != 1 {
		t.Fatalf("expected the re-click to self-match, got %+v score=%d", res, r.Score)
	}
}

func TestResolve_ReclickIgnored_Guarded(t *testing.T) {
	r := playRound(t, []int{0, 1, 0, 1}, Rules{GuardRevealed: true})
	clickSlot(r, 3)
	res := clickSlot(r, 3)
	if res.Outcome != ClickIgnored {
		t.Fatalf("expected the re-click to be ignored, got %+v", res)
	}
	if r.Score != 0 || r.Fails != 0 {
		t.Fatalf("guarded re-click changed counters: score=%d fails=%d", r.Score, r.Fails)
	}
	if sel, ok := r.Selection(); !ok || sel != 3 {
		t.Fatalf("selection should still be 3, got %d,%v", sel, ok)
	}
}

// Scenario D: clicking an already matched pair again.
func TestResolve_MatchedPairRescores_Observed(t *testing.T) {
	r := playRound(t, []int{0, 1, 0, 1}, Rules{})
	clickSlot(r, 0)
	clickSlot(r, 2)
	clickSlot(r, 0)
	res := clickSlot(r, 2)
	if res.Outcome != ClickMatched || r.Score != 2 {
		t.Fatalf("expected matched pair to score again, got %+v score=%d", res, r.Score)
	}
}

func TestResolve_MatchedPairIgnored_Guarded(t *testing.T) {
	r := playRound(t, []int{0, 1, 0, 1}, Rules{GuardRevealed: true})
	clickSlot(r, 0)
	clickSlot(r, 2)
	if r.Score != 1 {
		t.Fatalf("expected first match to score, got %d", r.Score)
	}
	if res := clickSlot(r, 0); res.Outcome != ClickIgnored {
		t.Fatalf("expected matched slot click to be ignored, got %+v", res)
	}
	if res := clickSlot(r, 2); res.Outcome != ClickIgnored {
		t.Fatalf("expected matched partner click to be ignored, got %+v", res)
	}
	if r.Score != 1 || r.Fails != 0 {
		t.Fatalf("expected score=1 fails=0, got score=%d fails=%d", r.Score, r.Fails)
	}
}

func TestResolve_RehideMismatchOnNextClick(t *testing.T) {
	r := playRound(t, []int{0, 1, 0, 1}, Rules{RehideMismatch: true})
	clickSlot(r, 0)
	clickSlot(r, 1)
	if !r.Slots[0].FaceUp || !r.Slots[1].FaceUp {
		t.Fatal("mismatched pair should stay visible until the next click")
	}
	// Even a click that hits nothing turns them back.
	r.Resolve(-1, -1)
	if r.Slots[0].FaceUp || r.Slots[1].FaceUp {
		t.Fatal("mismatched pair should be face-down after the next click")
	}
}

func TestResolve_RehideKeepsMatchedAndNewPick(t *testing.T) {
	r := playRound(t, []int{0, 1, 0, 1, 2, 2}, Rules{RehideMismatch: true})
	clickSlot(r, 0)
	clickSlot(r, 2) // match
	clickSlot(r, 1)
	clickSlot(r, 4) // mismatch 1 vs 2
	res := clickSlot(r, 1)
	if res.Outcome != ClickPicked {
		t.Fatalf("expected a fresh pick, got %+v", res)
	}
	if !r.Slots[1].FaceUp {
		t.Fatal("the clicked slot is revealed again after the re-hide")
	}
	if r.Slots[4].FaceUp {
		t.Fatal("slot 4 should be hidden again")
	}
	if !r.Slots[0].FaceUp || !r.Slots[2].FaceUp {
		t.Fatal("matched slots never hide")
	}
}

func TestRound_Cleared(t *testing.T) {
	r := playRound(t, []int{0, 0, 1, 1}, Rules{GuardRevealed: true})
	clickSlot(r, 0)
	clickSlot(r, 1)
	if r.Cleared() {
		t.Fatal("one pair left, round is not cleared")
	}
	clickSlot(r, 2)
	clickSlot(r, 3)
	if !r.Cleared() {
		t.Fatal("every pair matched, round should be cleared")
	}
}

func TestRound_ViewHidesFaceDownPairs(t *testing.T) {
	r := playRound(t, []int{0, 1, 0, 1}, Rules{})
	clickSlot(r, 1)
	v := r.View()
	if v.Selection != 1 {
		t.Fatalf("expected selection 1 in view, got %d", v.Selection)
	}
	for _, s := range v.Slots {
		if s.Index == 1 {
			if s.PairID != 1 {
				t.Fatalf("face-up slot should expose its pair, got %d", s.PairID)
			}
			continue
		}
		if s.PairID != -1 {
			t.Fatalf("face-down slot %d leaked pair %d", s.Index, s.PairID)
		}
	}
}
