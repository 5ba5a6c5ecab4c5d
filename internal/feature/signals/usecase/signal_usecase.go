// Package usecase produces trading signals.
package usecase

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/signals/domain/entity"
)

const (
	// MockCount is the number of signals in a mock series.
	MockCount = 10
	// MockStep is the spacing between mock signals.
	MockStep = time.Minute
)

// DefaultSymbols are the pairs signals are drawn for.
var DefaultSymbols = []string{"BTC/USDT", "ETH/USDT", "BNB/USDT"}

// SignalUsecase draws placeholder signals until a model is plugged in.
type SignalUsecase struct {
	symbols []string
	now     func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// Option configures a SignalUsecase.
type Option func(*SignalUsecase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(su *SignalUsecase) { su.now = now }
}

// WithRand replaces the random source.
func WithRand(r *rand.Rand) Option {
	return func(su *SignalUsecase) { su.rnd = r }
}

// WithSymbols replaces DefaultSymbols. An empty list is ignored.
func WithSymbols(symbols []string) Option {
	return func(su *SignalUsecase) {
		if len(symbols) > 0 {
			su.symbols = symbols
		}
	}
}

// NewSignalUsecase creates a SignalUsecase.
func NewSignalUsecase(opts ...Option) *SignalUsecase {
	su := &SignalUsecase{
		symbols: DefaultSymbols,
		now:     time.Now,
		rnd:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(su)
	}
	return su
}

// Latest returns one signal stamped now.
func (su *SignalUsecase) Latest() entity.Signal {
	su.mu.Lock()
	defer su.mu.Unlock()
	return su.drawLocked(su.now().UTC())
}

// Mock returns MockCount signals, newest first, MockStep apart.
func (su *SignalUsecase) Mock() []entity.Signal {
	su.mu.Lock()
	defer su.mu.Unlock()

	now := su.now().UTC()
	out := make([]entity.Signal, 0, MockCount)
	for i := range MockCount {
		out = append(out, su.drawLocked(now.Add(-time.Duration(i)*MockStep)))
	}
	return out
}

func (su *SignalUsecase) drawLocked(ts time.Time) entity.Signal {
	return entity.Signal{
		Symbol:     su.symbols[su.rnd.IntN(len(su.symbols))],
		Direction:  entity.Directions[su.rnd.IntN(len(entity.Directions))],
		Confidence: math.Round(su.rnd.Float64()*100) / 100,
		Timestamp:  ts,
	}
}
