// Package usecase implements the candle loading and historical data use cases.
package usecase

import (
	"context"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
)

const (
	// DefaultSymbol is the pair loaded when no symbol is given.
	DefaultSymbol = "BTC/USDT"
	// DefaultTimeframe is the candle interval loaded when none is given.
	DefaultTimeframe = "15m"
	// DefaultLimit is the number of candles requested when no positive limit is given.
	DefaultLimit = 200
)

// HistoricalSource abstracts the historical candle API.
// Following Go convention, the interface is defined by its consumer.
type HistoricalSource interface {
	GetHistorical(ctx context.Context, symbol, timeframe string, limit int) ([]entity.RawCandle, error)
}

// Query identifies one batch of historical candles.
type Query struct {
	Symbol    string
	Timeframe string
	Limit     int
}

// withDefaults fills empty fields with the defaults.
func (q Query) withDefaults() Query {
	if q.Symbol == "" {
		q.Symbol = DefaultSymbol
	}
	if q.Timeframe == "" {
		q.Timeframe = DefaultTimeframe
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	return q
}

// LoadHistoricalCandles issues a single request to source and returns the
// normalized candles in the order the API returned them.
func LoadHistoricalCandles(ctx context.Context, source HistoricalSource, symbol, timeframe string, limit int) ([]entity.Candle, error) {
	q := Query{Symbol: symbol, Timeframe: timeframe, Limit: limit}.withDefaults()

	raw, err := source.GetHistorical(ctx, q.Symbol, q.Timeframe, q.Limit)
	if err != nil {
		return nil, err
	}
	return NormalizeAll(raw)
}
