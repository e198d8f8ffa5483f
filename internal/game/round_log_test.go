package game

import (
	"strings"
	"testing"
)

func TestRoundLog_FilterAndCount(t *testing.T) {
	rl := NewRoundLog(false)
	rl.Add(RoundEvent{Frame: 1, Round: 1, Kind: EventPick, Slot: 2})
	rl.Add(RoundEvent{Frame: 2, Round: 1, Kind: EventMismatch, Slot: 3, Value: "pair 1 vs 0 fails=1"})
	rl.Add(RoundEvent{Frame: 9, Round: 2, Kind: EventPick, Slot: 0})
	rl.AddVerbose(RoundEvent{Frame: 10, Round: 2, Kind: EventMiss, Slot: -1})

	if rl.Count(EventPick) != 2 {
		t.Fatalf("expected 2 picks, got %d", rl.Count(EventPick))
	}
	if rl.Count(EventMiss) != 0 {
		t.Fatal("verbose entries must be dropped when verbose is off")
	}
	if got := len(rl.FilterRound(2)); got != 1 {
		t.Fatalf("expected 1 event in round 2, got %d", got)
	}
	if got := len(rl.Filter("")); got != 3 {
		t.Fatalf("empty kind should match everything, got %d", got)
	}
	last, ok := rl.LastOf(EventPick)
	if !ok || last.Frame != 9 {
		t.Fatalf("unexpected last pick: %+v", last)
	}
	if !rl.HasEntry(EventMismatch, "fails=1") {
		t.Fatal("expected mismatch entry with fails=1")
	}
	if _, ok := rl.LastOf(EventRoundEnd); ok {
		t.Fatal("no round_end was recorded")
	}
}

func TestRoundEvent_String(t *testing.T) {
	e := RoundEvent{Frame: 42, Round: 3, Phase: "play", Kind: EventMatch, Slot: 7, Value: "with slot 1 score=2"}
	s := e.String()
	for _, want := range []string{"[F=0042]", "R03", "play", "match", "slot=7", "score=2"} {
		if !strings.Contains(s, want) {
			t.Fatalf("%q missing %q", s, want)
		}
	}
	if !strings.Contains(RoundEvent{Slot: -1}.String(), "--") {
		t.Fatal("events without a slot should print --")
	}
}

func TestRoundLog_EntriesIsACopy(t *testing.T) {
	rl := NewRoundLog(false)
	rl.Add(RoundEvent{Frame: 1, Round: 1, Kind: EventPick, Slot: 2})

	got := rl.Entries()
	got[0].Kind = EventMatch
	_ = append(got[:0], RoundEvent{Kind: EventShutdown})

	if e := rl.Entries()[0]; e.Kind != EventPick || e.Slot != 2 {
		t.Fatalf("recorded history changed through Entries: %+v", e)
	}
}
