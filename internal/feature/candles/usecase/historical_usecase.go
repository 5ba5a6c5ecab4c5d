package usecase

import (
	"context"
	"fmt"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
	"github.com/harshal31718/enma-quant-trading-platform/internal/shared/ratelimiter"
)

const (
	// ServiceDefaultTimeframe is the interval served when the caller omits it.
	ServiceDefaultTimeframe = "15m"
	// ServiceDefaultLimit is the number of candles served when the caller omits it.
	ServiceDefaultLimit = 500
	// ServiceMaxLimit is the largest page the exchange returns in one call.
	ServiceMaxLimit = 1500
)

// MarketRepository fetches OHLCV data from an exchange.
type MarketRepository interface {
	GetOHLCV(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error)
}

// SnapshotRepository keeps the latest fetched candles per symbol and timeframe.
type SnapshotRepository interface {
	ReplaceSnapshot(ctx context.Context, symbol, timeframe string, candles []entity.OHLCV) error
}

// HistoricalUsecase serves historical candles from the exchange and records
// each response as the current snapshot.
type HistoricalUsecase struct {
	market      MarketRepository
	snapshots   SnapshotRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewHistoricalUsecase creates a HistoricalUsecase.
func NewHistoricalUsecase(market MarketRepository, snapshots SnapshotRepository, rateLimiter ratelimiter.RateLimiterInterface) *HistoricalUsecase {
	return &HistoricalUsecase{market: market, snapshots: snapshots, rateLimiter: rateLimiter}
}

// GetHistorical fetches up to limit candles for symbol and stores them as the snapshot.
// Storage failures are wrapped with domain.ErrSnapshot.
func (hu *HistoricalUsecase) GetHistorical(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error) {
	if timeframe == "" {
		timeframe = ServiceDefaultTimeframe
	}
	if limit <= 0 {
		limit = ServiceDefaultLimit
	}
	if limit > ServiceMaxLimit {
		limit = ServiceMaxLimit
	}

	if err := hu.rateLimiter.WaitIfNeeded(ctx); err != nil {
		return nil, err
	}
	cs, err := hu.market.GetOHLCV(ctx, symbol, timeframe, limit)
	if err != nil {
		return nil, err
	}

	if err := hu.snapshots.ReplaceSnapshot(ctx, symbol, timeframe, cs); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSnapshot, err)
	}
	return cs, nil
}
