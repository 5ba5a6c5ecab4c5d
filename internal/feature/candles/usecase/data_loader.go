package usecase

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
)

// DataLoader fetches one batch of historical candles per instance and keeps
// the result as render state. The fetch runs once, on the first Mount.
type DataLoader struct {
	source HistoricalSource
	query  Query
	onLoad func([]entity.Candle)

	once sync.Once
	done chan struct{}

	mu        sync.RWMutex
	candles   []entity.Candle
	loaded    bool
	err       error
	cancel    context.CancelFunc
	unmounted bool
}

// Option configures a DataLoader.
type Option func(*DataLoader)

// WithOnLoad registers fn to receive the candles after a successful load.
// It is not called for failed or discarded loads.
func WithOnLoad(fn func([]entity.Candle)) Option {
	return func(l *DataLoader) { l.onLoad = fn }
}

// NewDataLoader creates a DataLoader for q. Empty query fields take the defaults.
func NewDataLoader(source HistoricalSource, q Query, opts ...Option) *DataLoader {
	l := &DataLoader{
		source: source,
		query:  q.withDefaults(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Mount starts the asynchronous fetch. Only the first call has any effect,
// and a loader that was already unmounted never fetches.
func (l *DataLoader) Mount(ctx context.Context) {
	l.once.Do(func() {
		l.mu.Lock()
		if l.unmounted {
			l.mu.Unlock()
			close(l.done)
			return
		}
		fetchCtx, cancel := context.WithCancel(ctx)
		l.cancel = cancel
		l.mu.Unlock()

		go l.fetch(fetchCtx, cancel)
	})
}

// Unmount cancels an in-flight fetch and discards any response that arrives later.
// It is safe to call more than once.
func (l *DataLoader) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.unmounted {
		return
	}
	l.unmounted = true
	if l.cancel != nil {
		l.cancel()
	}
}

func (l *DataLoader) fetch(ctx context.Context, cancel context.CancelFunc) {
	defer close(l.done)
	defer cancel()

	q := l.query
	candles, err := LoadHistoricalCandles(ctx, l.source, q.Symbol, q.Timeframe, q.Limit)

	l.mu.Lock()
	if l.unmounted {
		l.mu.Unlock()
		slog.Debug("discarding historical candles after unmount", "symbol", q.Symbol, "timeframe", q.Timeframe)
		return
	}
	if err != nil {
		l.err = err
		l.mu.Unlock()
		slog.Error("failed to load historical candles", "symbol", q.Symbol, "timeframe", q.Timeframe, "limit", q.Limit, "error", err)
		return
	}
	l.candles = candles
	l.loaded = true
	onLoad := l.onLoad
	l.mu.Unlock()

	slog.Info("historical candles loaded", "symbol", q.Symbol, "timeframe", q.Timeframe, "count", len(candles))
	if onLoad != nil {
		onLoad(slices.Clone(candles))
	}
}

// Candles returns a copy of the render state. It is empty until a load succeeds.
func (l *DataLoader) Candles() []entity.Candle {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.candles)
}

// Loaded reports whether the fetch completed and its result was kept.
func (l *DataLoader) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Err returns the failure of the fetch, if any. It is diagnostic only;
// a failed load leaves the render state empty.
func (l *DataLoader) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// Query returns the effective query, defaults applied.
func (l *DataLoader) Query() Query {
	return l.query
}

// Done is closed once the fetch goroutine has finished. It stays open for a
// loader that was never mounted.
func (l *DataLoader) Done() <-chan struct{} {
	return l.done
}
