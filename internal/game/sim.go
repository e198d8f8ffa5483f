package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Sim is a headless session harness used by tests and the headless report.
// It steps a Machine against a FakeClock and clicks on behalf of a Player,
// pressing and releasing the button on consecutive frames.
type Sim struct {
	Machine *Machine
	Clock   *FakeClock
	Log     *RoundLog
	Stats   SessionStats
	Results []*Round

	cfg        Config
	rng        *rand.Rand
	player     Player
	frameStep  time.Duration
	clickEvery int
	verbose    bool

	latch    ButtonLatch
	held     bool
	cooldown int
}

// SimOption is a builder function applied to a Sim during construction.
type SimOption func(*Sim)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) SimOption {
	return func(s *Sim) { s.cfg = cfg }
}

// WithRules sets the rule switches on top of the current config.
func WithRules(r Rules) SimOption {
	return func(s *Sim) { s.cfg.Rules = r }
}

// WithSeed makes the run deterministic.
func WithSeed(seed int64) SimOption {
	return func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}
}

// WithPlayer sets who clicks. The default is RandomPlayer.
func WithPlayer(p Player) SimOption {
	return func(s *Sim) { s.player = p }
}

// WithFrameStep sets how far the clock moves per frame.
func WithFrameStep(d time.Duration) SimOption {
	return func(s *Sim) { s.frameStep = d }
}

// WithClickEvery sets the number of frames between clicks.
func WithClickEvery(frames int) SimOption {
	return func(s *Sim) { s.clickEvery = frames }
}

// WithVerbose also logs ignored and missed clicks.
func WithVerbose(v bool) SimOption {
	return func(s *Sim) { s.verbose = v }
}

// NewSim builds a harness. Frames default to the configured TPS.
func NewSim(opts ...SimOption) (*Sim, error) {
	s := &Sim{
		cfg:        DefaultConfig(),
		player:     RandomPlayer{},
		clickEvery: 10,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1)) // #nosec G404 -- test harness
	}
	if s.frameStep <= 0 && s.cfg.TPS > 0 {
		s.frameStep = time.Second / time.Duration(s.cfg.TPS)
	}
	if s.clickEvery < 2 {
		s.clickEvery = 2
	}
	s.Clock = NewFakeClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.Log = NewRoundLog(s.verbose)

	ids := 0
	m, err := NewMachine(s.cfg,
		WithClock(s.Clock),
		WithRand(s.rng),
		WithRoundLog(s.Log),
		WithIDSource(func() string {
			ids++
			return fmt.Sprintf("sim-%04d", ids)
		}),
		WithRoundEndHook(func(r *Round) {
			s.Stats.Record(r)
			s.Results = append(s.Results, r)
		}),
	)
	if err != nil {
		return nil, err
	}
	s.Machine = m
	return s, nil
}

// Frame advances the clock one step and steps the machine with a button
// level chosen by the player.
func (s *Sim) Frame() error {
	s.Clock.Advance(s.frameStep)
	return s.Machine.Step(s.input())
}

func (s *Sim) input() Input {
	in := Input{}
	// Release the button the frame after a press.
	if s.held {
		s.held = false
		in.Clicked = s.latch.Edge(false)
		return in
	}
	if s.cooldown > 0 {
		s.cooldown--
		s.latch.Edge(false)
		return in
	}

	switch s.Machine.State() {
	case StateEnded, StateIntermission:
		s.press(&in, Point{})
	case StatePlay:
		r := s.Machine.Round()
		v := r.View()
		s.player.Observe(v)
		if idx, ok := s.player.Next(v, s.rng); ok {
			s.press(&in, r.Slots[idx].Bounds.Center())
		}
	case StateInspect:
		s.player.Observe(s.Machine.Round().View())
		s.latch.Edge(false)
	default:
		s.latch.Edge(false)
	}
	return in
}

func (s *Sim) press(in *Input, at Point) {
	in.PointerX, in.PointerY = at.X, at.Y
	in.Clicked = s.latch.Edge(true)
	s.held = true
	s.cooldown = s.clickEvery - 2
}

// RunRounds steps until n more rounds have ended, or maxFrames elapse.
func (s *Sim) RunRounds(n, maxFrames int) error {
	target := len(s.Results) + n
	started := s.Machine.Rounds()
	for f := 0; f < maxFrames; f++ {
		if len(s.Results) >= target {
			return nil
		}
		if s.Machine.Rounds() != started {
			started = s.Machine.Rounds()
			s.player.Reset()
		}
		if err := s.Frame(); err != nil {
			return err
		}
	}
	return fmt.Errorf("sim: %d of %d rounds finished within %d frames", len(s.Results)-(target-n), n, maxFrames)
}

// RunFrames steps exactly n frames.
func (s *Sim) RunFrames(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Frame(); err != nil {
			return err
		}
	}
	return nil
}
