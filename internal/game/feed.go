package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedMaxEntries = 6
	feedLineHeight = 14
	feedPanelWidth = 330
)

// EventFeed is a small ring buffer of recent events shown on the HUD.
type EventFeed struct {
	entries []string
	head    int
	count   int
}

// NewEventFeed creates an empty feed.
func NewEventFeed() *EventFeed {
	return &EventFeed{entries: make([]string, feedMaxEntries)}
}

// Add appends a line, dropping the oldest once full.
func (f *EventFeed) Add(line string) {
	f.entries[f.head] = line
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// AddEvent appends a short form of e. Phase and slot events are the only
// ones worth showing to a player.
func (f *EventFeed) AddEvent(e RoundEvent) {
	switch e.Kind {
	case EventRoundStart, EventPhase, EventMatch, EventMismatch, EventRoundEnd:
		f.Add(e.Kind + " " + e.Value)
	}
}

// Recent returns the lines in chronological order (oldest first).
func (f *EventFeed) Recent() []string {
	out := make([]string, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		out[i] = f.entries[idx]
	}
	return out
}

// Draw renders the feed with its bottom-left corner at (x, bottom).
func (f *EventFeed) Draw(screen *ebiten.Image, x, bottom int) {
	lines := f.Recent()
	if len(lines) == 0 {
		return
	}
	h := len(lines)*feedLineHeight + 6
	top := bottom - h
	vector.FillRect(screen, float32(x), float32(top), feedPanelWidth, float32(h), color.RGBA{R: 6, G: 10, B: 24, A: 170}, false)
	vector.StrokeLine(screen, float32(x), float32(top), float32(x+feedPanelWidth), float32(top), 1.0, color.RGBA{R: 70, G: 90, B: 140, A: 160}, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x+5, top+3+i*feedLineHeight)
	}
}
