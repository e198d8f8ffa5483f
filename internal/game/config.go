package game

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Rules are optional rule changes. All are off by default.
// The zero value reproduces the observed behaviour.
type Rules struct {
	// RehideMismatch flips a mismatched pair face-down on the next click.
	RehideMismatch bool `env:"CARDS_REHIDE_MISMATCH,default=false"`
	// GuardRevealed ignores clicks on matched slots and on the pending selection.
	GuardRevealed bool `env:"CARDS_GUARD_REVEALED,default=false"`
	// EndOnClear ends the round once every slot has been matched.
	EndOnClear bool `env:"CARDS_END_ON_CLEAR,default=false"`
}

// Config is the fixed set of named options a session is started with.
type Config struct {
	CardCount      int     `env:"CARDS_COUNT,default=10"`
	Columns        int     `env:"CARDS_COLUMNS,default=5"`
	CardKinds      int     `env:"CARDS_KINDS,default=5"`
	InspectSeconds float64 `env:"CARDS_INSPECT_SECONDS,default=6"`
	PlaySeconds    float64 `env:"CARDS_PLAY_SECONDS,default=21"`
	FailLimit      int     `env:"CARDS_FAIL_LIMIT,default=2"`

	// Presentation.
	ScreenWidth  int     `env:"CARDS_SCREEN_WIDTH,default=1000"`
	ScreenHeight int     `env:"CARDS_SCREEN_HEIGHT,default=500"`
	TPS          int     `env:"CARDS_TPS,default=30"`
	CardWidth    float64 `env:"CARDS_CARD_WIDTH,default=110"`
	CardHeight   float64 `env:"CARDS_CARD_HEIGHT,default=188"`
	OriginX      float64 `env:"CARDS_ORIGIN_X,default=60"`
	OriginY      float64 `env:"CARDS_ORIGIN_Y,default=60"`
	GapH         float64 `env:"CARDS_GAP_H,default=80"`
	GapV         float64 `env:"CARDS_GAP_V,default=40"`

	LogLevel string `env:"CARDS_LOG_LEVEL,default=info"`

	Rules Rules
}

// DefaultConfig returns the stock board: ten cards over two rows.
func DefaultConfig() Config {
	return Config{
		CardCount:      10,
		Columns:        5,
		CardKinds:      5,
		InspectSeconds: 6,
		PlaySeconds:    21,
		FailLimit:      2,
		ScreenWidth:    1000,
		ScreenHeight:   500,
		TPS:            30,
		CardWidth:      110,
		CardHeight:     188,
		OriginX:        60,
		OriginY:        60,
		GapH:           80,
		GapV:           40,
		LogLevel:       "info",
	}
}

// LoadConfig reads an optional .env file, overlays CARDS_* environment
// variables on the defaults and validates the result.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	cfg := DefaultConfig()
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first violated constraint, wrapped in ErrInvalidConfig.
// A round is never constructed from a config that fails here.
func (c Config) Validate() error {
	switch {
	case c.CardCount < 2 || c.CardCount%2 != 0:
		return fmt.Errorf("%w: card count %d must be an even number >= 2", ErrInvalidConfig, c.CardCount)
	case c.Columns < 1:
		return fmt.Errorf("%w: columns %d must be >= 1", ErrInvalidConfig, c.Columns)
	case c.CardKinds < 1 || c.CardKinds > len(facePalette):
		return fmt.Errorf("%w: card kinds %d must be within 1..%d", ErrInvalidConfig, c.CardKinds, len(facePalette))
	case c.CardCount > 2*c.CardKinds:
		return fmt.Errorf("%w: card count %d exceeds twice the card kinds (%d)", ErrInvalidConfig, c.CardCount, c.CardKinds)
	case !validSeconds(c.InspectSeconds):
		return fmt.Errorf("%w: inspect seconds %v must be > 0 and below %.0f", ErrInvalidConfig, c.InspectSeconds, maxSeconds)
	case !validSeconds(c.PlaySeconds):
		return fmt.Errorf("%w: play seconds %v must be > 0 and below %.0f", ErrInvalidConfig, c.PlaySeconds, maxSeconds)
	case c.FailLimit < 0:
		return fmt.Errorf("%w: fail limit %d must be >= 0", ErrInvalidConfig, c.FailLimit)
	case !(c.CardWidth > 0) || !(c.CardHeight > 0):
		return fmt.Errorf("%w: card size %vx%v must be positive", ErrInvalidConfig, c.CardWidth, c.CardHeight)
	case c.GapH < 0 || c.GapV < 0:
		return fmt.Errorf("%w: gaps %v/%v must not be negative", ErrInvalidConfig, c.GapH, c.GapV)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d must be > 0", ErrInvalidConfig, c.TPS)
	}
	return nil
}

// InspectDuration is InspectSeconds as a time.Duration.
func (c Config) InspectDuration() time.Duration {
	return secondsToDuration(c.InspectSeconds)
}

// PlayDuration is PlaySeconds as a time.Duration.
func (c Config) PlayDuration() time.Duration {
	return secondsToDuration(c.PlaySeconds)
}

// Grid returns the layout parameters for one round.
func (c Config) Grid() GridSpec {
	return GridSpec{
		Origin:  Point{X: c.OriginX, Y: c.OriginY},
		CardW:   c.CardWidth,
		CardH:   c.CardHeight,
		Count:   c.CardCount,
		Columns: c.Columns,
		GapH:    c.GapH,
		GapV:    c.GapV,
	}
}

// maxSeconds is the longest phase a time.Duration can hold.
const maxSeconds = float64(math.MaxInt64) / float64(time.Second)

// validSeconds rejects NaN, infinities and anything that overflows a Duration.
func validSeconds(s float64) bool {
	return s > 0 && s*float64(time.Second) < float64(math.MaxInt64)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
