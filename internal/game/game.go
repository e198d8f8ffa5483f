package game

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/gofont/goregular"
)

// Game binds a Machine to an Ebitengine window: it samples input once per
// tick and draws the current round.
type Game struct {
	cfg     Config
	machine *Machine
	log     zerolog.Logger

	latch    ButtonLatch // primary button, for card picks
	anyLatch ButtonLatch // any button, to start the next round
	session  SessionStats
	feed     *EventFeed
	status   string // shown in the intermission after a clipboard copy
	closed   bool

	hudFace   *text.GoTextFace
	glyphFace *text.GoTextFace
	bigFace   *text.GoTextFace
}

// New validates cfg and prepares fonts and the round machine.
func New(cfg Config, logger zerolog.Logger) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	g := &Game{
		cfg:       cfg,
		log:       logger,
		feed:      NewEventFeed(),
		hudFace:   &text.GoTextFace{Source: src, Size: 24},
		glyphFace: &text.GoTextFace{Source: src, Size: 56},
		bigFace:   &text.GoTextFace{Source: src, Size: 28},
	}
	g.machine, err = NewMachine(cfg,
		WithLogger(logger),
		WithEventListener(g.feed.AddEvent),
		WithRoundEndHook(g.session.Record),
		WithRoundEndHook(func(*Round) { g.status = "" }),
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Session returns the totals so far.
func (g *Game) Session() SessionStats { return g.session }

func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	anyDown := left ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	in := Input{
		ShouldClose: ebiten.IsWindowBeingClosed(),
		PointerX:    float64(mx),
		PointerY:    float64(my),
		Clicked:     g.latch.Edge(left),
		AnyClicked:  g.anyLatch.Edge(anyDown),
	}

	// C: copy the result while waiting between rounds.
	if g.machine.State() == StateIntermission && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.status = copySummary(g.machine.Round(), g.session)
	}

	if err := g.machine.Step(in); err != nil {
		if errors.Is(err, ErrWindowClosed) {
			g.Close()
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Close logs the session totals. Only the first call has any effect.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	s := g.session
	g.log.Info().Int("rounds", s.Rounds).Int("best", s.BestScore).
		Float64("avg_score", s.AverageScore()).Int("losses", s.Losses).
		Int("timeouts", s.Timeouts).Int("clears", s.Clears).Msg("session closed")
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
