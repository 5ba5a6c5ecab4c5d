package usecase

import (
	"context"
	"fmt"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
)

// SnapshotReader reads the stored snapshot for a symbol and timeframe.
type SnapshotReader interface {
	Find(ctx context.Context, symbol, timeframe string) ([]entity.OHLCV, error)
}

// SnapshotUsecase serves the last stored snapshot without calling the exchange.
type SnapshotUsecase struct {
	reader SnapshotReader
}

// NewSnapshotUsecase creates a SnapshotUsecase.
func NewSnapshotUsecase(reader SnapshotReader) *SnapshotUsecase {
	return &SnapshotUsecase{reader: reader}
}

// GetSnapshot returns the stored candles, oldest first. An empty snapshot is
// domain.ErrSnapshotNotFound; read failures wrap domain.ErrSnapshot.
func (su *SnapshotUsecase) GetSnapshot(ctx context.Context, symbol, timeframe string) ([]entity.OHLCV, error) {
	if timeframe == "" {
		timeframe = ServiceDefaultTimeframe
	}
	cs, err := su.reader.Find(ctx, symbol, timeframe)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSnapshot, err)
	}
	if len(cs) == 0 {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrSnapshotNotFound, symbol, timeframe)
	}
	return cs, nil
}
