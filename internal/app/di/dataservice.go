package di

import (
	"gorm.io/gorm"

	candleadapters "github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/adapters"
	candleshandler "github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/transport/handler"
	candleusecase "github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/usecase"
)

// NewHistoricalHandler wires the exchange client, the snapshot store and the
// historical usecase behind the data-service handler.
func NewHistoricalHandler(db *gorm.DB) (*candleshandler.HistoricalHandler, error) {
	market, limiter, err := NewMarket()
	if err != nil {
		return nil, err
	}
	snapshots := candleadapters.NewSnapshotRepository(db)
	uc := candleusecase.NewHistoricalUsecase(market, snapshots, limiter)
	return candleshandler.NewHistoricalHandler(uc), nil
}

// NewSnapshotHandler wires the snapshot read path.
func NewSnapshotHandler(db *gorm.DB) *candleshandler.SnapshotHandler {
	uc := candleusecase.NewSnapshotUsecase(candleadapters.NewSnapshotRepository(db))
	return candleshandler.NewSnapshotHandler(uc)
}
