package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrWindowClosed is returned by Step once the window has been asked to close.
var ErrWindowClosed = errors.New("window closed")

// State is the state of the round loop.
type State int

const (
	StateSetup State = iota
	StateInspect
	StatePlay
	StateEnded
	StateIntermission
	StateShutdown
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateInspect:
		return "inspect"
	case StatePlay:
		return "play"
	case StateEnded:
		return "ended"
	case StateIntermission:
		return "intermission"
	case StateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Input is everything the loop reads from the window in one frame.
type Input struct {
	ShouldClose bool
	PointerX    float64
	PointerY    float64
	Clicked     bool // primary button went down this frame
	AnyClicked  bool // any pointer button went down this frame
}

// ButtonLatch turns a button level into a one-frame press edge.
type ButtonLatch struct {
	prev bool
}

// Edge reports whether the button is down now and was up last frame.
func (l *ButtonLatch) Edge(down bool) bool {
	edge := down && !l.prev
	l.prev = down
	return edge
}

// Machine drives rounds frame by frame:
// setup → inspect → play → ended → intermission → setup.
type Machine struct {
	cfg    Config
	clock  Clock
	rng    *rand.Rand
	seeded bool // rng was injected; otherwise it is reseeded every round
	log    zerolog.Logger
	events *RoundLog
	newID  func() string

	listeners []func(RoundEvent)
	onEnd     []func(*Round)

	state  State
	round  *Round
	rounds int
	frame  int
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithClock replaces the system clock.
func WithClock(c Clock) MachineOption {
	return func(m *Machine) { m.clock = c }
}

// WithRand injects the random source used for pairing.
func WithRand(rng *rand.Rand) MachineOption {
	return func(m *Machine) {
		m.rng = rng
		m.seeded = true
	}
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) MachineOption {
	return func(m *Machine) { m.log = l }
}

// WithRoundLog records every event into rl.
func WithRoundLog(rl *RoundLog) MachineOption {
	return func(m *Machine) { m.events = rl }
}

// WithIDSource replaces uuid round ids.
func WithIDSource(fn func() string) MachineOption {
	return func(m *Machine) { m.newID = fn }
}

// WithEventListener calls fn for every recorded event.
func WithEventListener(fn func(RoundEvent)) MachineOption {
	return func(m *Machine) { m.listeners = append(m.listeners, fn) }
}

// WithRoundEndHook calls fn once per finished round.
func WithRoundEndHook(fn func(*Round)) MachineOption {
	return func(m *Machine) { m.onEnd = append(m.onEnd, fn) }
}

// NewMachine validates cfg and returns a machine waiting in StateSetup.
func NewMachine(cfg Config, opts ...MachineOption) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Machine{
		cfg:   cfg,
		clock: SystemClock,
		log:   zerolog.Nop(),
		newID: uuid.NewString,
		state: StateSetup,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	}
	return m, nil
}

// State returns the current loop state.
func (m *Machine) State() State { return m.state }

// Round returns the current round, nil before the first setup.
func (m *Machine) Round() *Round { return m.round }

// Rounds returns how many rounds have been started.
func (m *Machine) Rounds() int { return m.rounds }

// Frame returns the number of frames stepped.
func (m *Machine) Frame() int { return m.frame }

// Config returns the configuration the machine was built with.
func (m *Machine) Config() Config { return m.cfg }

// TimeLeft is the HUD countdown for the running phase.
func (m *Machine) TimeLeft() (int, bool) {
	if m.round == nil {
		return 0, false
	}
	now := m.clock.Now()
	switch m.state {
	case StateInspect:
		return DisplaySeconds(Remaining(m.round.Timer.InspectionDeadline, now))
	case StatePlay:
		return DisplaySeconds(Remaining(m.round.Timer.PlayDeadline, now))
	}
	return 0, false
}

// Step advances one frame. It returns ErrWindowClosed once in.ShouldClose
// has been seen, and on every call after that.
func (m *Machine) Step(in Input) error {
	if m.state == StateShutdown {
		return ErrWindowClosed
	}
	m.frame++
	if in.ShouldClose {
		m.shutdown()
		return ErrWindowClosed
	}

	now := m.clock.Now()
	switch m.state {
	case StateSetup:
		return m.setup(now)
	case StateInspect:
		m.inspect(now)
	case StatePlay:
		m.play(now, in)
	case StateEnded:
		m.state = StateIntermission
		fallthrough
	case StateIntermission:
		if in.Clicked || in.AnyClicked {
			m.state = StateSetup
			return m.setup(now)
		}
	}
	return nil
}

func (m *Machine) setup(now time.Time) error {
	if !m.seeded {
		m.rng = rand.New(rand.NewSource(now.UnixNano())) // #nosec G404 -- game only
	}
	m.rounds++
	r, err := NewRound(m.newID(), m.rounds, m.cfg, m.rng, now)
	if err != nil {
		m.rounds--
		return fmt.Errorf("setup round %d: %w", m.rounds+1, err)
	}
	m.round = r
	m.log.Info().Str("round", r.ID).Int("number", r.Number).Int("cards", len(r.Slots)).Msg("round start")
	m.log.Debug().Str("round", r.ID).Ints("pairs", r.Pairs()).Msg("pairing")
	m.record(EventRoundStart, -1, fmt.Sprintf("cards=%d id=%s", len(r.Slots), r.ID))

	r.Phase = PhaseInspect
	m.state = StateInspect
	m.record(EventPhase, -1, "setup → inspect")
	return nil
}

func (m *Machine) inspect(now time.Time) {
	r := m.round
	if !Expired(r.Timer.InspectionDeadline, now) {
		return
	}
	r.SetFaceUp(false)
	r.Timer.RestartPlay(now)
	r.Phase = PhasePlay
	m.state = StatePlay
	m.log.Debug().Str("round", r.ID).Time("play_deadline", r.Timer.PlayDeadline).Msg("cards hidden")
	m.record(EventPhase, -1, "inspect → play")
}

func (m *Machine) play(now time.Time, in Input) {
	r := m.round
	if in.Clicked {
		m.recordClick(r.Resolve(in.PointerX, in.PointerY))
	}
	switch {
	case r.Fails > m.cfg.FailLimit:
		m.end(EndFailLimit)
	case Expired(r.Timer.PlayDeadline, now):
		m.end(EndTimeout)
	case m.cfg.Rules.EndOnClear && r.Cleared():
		m.end(EndCleared)
	}
}

func (m *Machine) recordClick(res ClickResult) {
	r := m.round
	switch res.Outcome {
	case ClickPicked:
		m.record(EventPick, res.Slot, fmt.Sprintf("pair %d", r.Slots[res.Slot].PairID))
	case ClickMatched:
		m.record(EventMatch, res.Slot, fmt.Sprintf("with slot %d score=%d", res.Other, r.Score))
	case ClickMismatched:
		m.record(EventMismatch, res.Slot, fmt.Sprintf("pair %d vs %d fails=%d",
			r.Slots[res.Slot].PairID, r.Slots[res.Other].PairID, r.Fails))
	case ClickIgnored:
		m.recordVerbose(EventIgnored, res.Slot, "guarded")
	case ClickMissed:
		m.recordVerbose(EventMiss, -1, "no slot")
	}
}

func (m *Machine) end(reason EndReason) {
	r := m.round
	r.Phase = PhaseEnded
	r.Reason = reason
	m.state = StateEnded
	m.log.Info().Str("round", r.ID).Int("number", r.Number).Str("reason", reason.String()).
		Int("score", r.Score).Int("fails", r.Fails).Msg("round end")
	m.record(EventRoundEnd, -1, fmt.Sprintf("%s score=%d fails=%d", reason, r.Score, r.Fails))
	for _, fn := range m.onEnd {
		fn(r)
	}
}

func (m *Machine) shutdown() {
	m.log.Info().Str("state", m.state.String()).Int("rounds", m.rounds).Msg("shutdown")
	m.state = StateShutdown
	m.record(EventShutdown, -1, fmt.Sprintf("after %d rounds", m.rounds))
}

func (m *Machine) event(kind string, slot int, value string) RoundEvent {
	e := RoundEvent{Frame: m.frame, Kind: kind, Slot: slot, Value: value, Phase: "--"}
	if m.round != nil {
		e.Round = m.round.Number
		e.Phase = m.round.Phase.String()
	}
	return e
}

func (m *Machine) record(kind string, slot int, value string) {
	e := m.event(kind, slot, value)
	if m.events != nil {
		m.events.Add(e)
	}
	for _, fn := range m.listeners {
		fn(e)
	}
}

func (m *Machine) recordVerbose(kind string, slot int, value string) {
	if m.events != nil {
		m.events.AddVerbose(m.event(kind, slot, value))
	}
}
