package game

import "math/rand"

// Player picks the next slot to click from what is visible on the board.
type Player interface {
	// Observe is called every frame with the visible board.
	Observe(v BoardView)
	// Next returns the slot to click, or false to not click this frame.
	Next(v BoardView, rng *rand.Rand) (int, bool)
	// Reset forgets everything before a new round.
	Reset()
}

// RandomPlayer clicks random unmatched slots and remembers nothing.
type RandomPlayer struct{}

func (RandomPlayer) Observe(BoardView) {}
func (RandomPlayer) Reset()            {}

func (RandomPlayer) Next(v BoardView, rng *rand.Rand) (int, bool) {
	return randomSlot(v, rng, func(s SlotView) bool { return !s.FaceUp })
}

// MemoryPlayer memorises face-up cards and clicks known pairs. Each newly
// seen card is forgotten with probability Forget.
type MemoryPlayer struct {
	Forget float64

	rng    *rand.Rand
	memory map[int]int // slot -> pair id
	seen   map[int]bool
}

// NewMemoryPlayer creates a player whose forgetting is driven by rng.
func NewMemoryPlayer(forget float64, rng *rand.Rand) *MemoryPlayer {
	p := &MemoryPlayer{Forget: forget, rng: rng}
	p.Reset()
	return p
}

func (p *MemoryPlayer) Reset() {
	p.memory = make(map[int]int)
	p.seen = make(map[int]bool)
}

func (p *MemoryPlayer) Observe(v BoardView) {
	for _, s := range v.Slots {
		if !s.FaceUp || p.seen[s.Index] {
			continue
		}
		p.seen[s.Index] = true
		if p.rng != nil && p.rng.Float64() < p.Forget {
			continue
		}
		p.memory[s.Index] = s.PairID
	}
}

func (p *MemoryPlayer) Next(v BoardView, rng *rand.Rand) (int, bool) {
	if v.Selection >= 0 {
		want := v.Slots[v.Selection].PairID
		for _, s := range v.Slots {
			if s.Index == v.Selection || s.Matched {
				continue
			}
			if pid, ok := p.memory[s.Index]; ok && pid == want {
				return s.Index, true
			}
		}
		return p.unknownSlot(v, rng)
	}

	byPair := map[int]int{}
	for _, s := range v.Slots {
		if s.Matched {
			continue
		}
		pid, ok := p.memory[s.Index]
		if !ok {
			continue
		}
		if _, dup := byPair[pid]; dup {
			return byPair[pid], true
		}
		byPair[pid] = s.Index
	}
	return p.unknownSlot(v, rng)
}

// unknownSlot prefers a slot the player has no memory of.
func (p *MemoryPlayer) unknownSlot(v BoardView, rng *rand.Rand) (int, bool) {
	if i, ok := randomSlot(v, rng, func(s SlotView) bool {
		_, known := p.memory[s.Index]
		return !known && s.Index != v.Selection
	}); ok {
		return i, true
	}
	return randomSlot(v, rng, func(s SlotView) bool { return s.Index != v.Selection })
}

// randomSlot picks uniformly among unmatched slots accepted by keep.
func randomSlot(v BoardView, rng *rand.Rand, keep func(SlotView) bool) (int, bool) {
	var candidates []int
	for _, s := range v.Slots {
		if s.Matched || !keep(s) {
			continue
		}
		candidates = append(candidates, s.Index)
	}
	if len(candidates) == 0 {
		return -1, false
	}
	return candidates[rng.Intn(len(candidates))], true
}
