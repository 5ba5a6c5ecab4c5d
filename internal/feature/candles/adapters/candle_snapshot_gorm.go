// Package adapters implements the candle repositories on top of gorm.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/usecase"
)

const snapshotBatchSize = 500

type snapshotGorm struct {
	db *gorm.DB
}

var (
	_ usecase.SnapshotRepository = (*snapshotGorm)(nil)
	_ usecase.SnapshotReader     = (*snapshotGorm)(nil)
)

// NewSnapshotRepository creates the gorm-backed snapshot store.
func NewSnapshotRepository(db *gorm.DB) *snapshotGorm {
	return &snapshotGorm{db: db}
}

// SnapshotModel is one stored candle of the latest snapshot for a symbol and timeframe.
type SnapshotModel struct {
	ID        uint      `gorm:"primaryKey"`
	Symbol    string    `gorm:"size:32;not null;uniqueIndex:snapshot_sym_tf_time,priority:1"`
	Timeframe string    `gorm:"size:16;not null;uniqueIndex:snapshot_sym_tf_time,priority:2"`
	Time      time.Time `gorm:"not null;uniqueIndex:snapshot_sym_tf_time,priority:3"`

	Open   float64 `gorm:"not null"`
	High   float64 `gorm:"not null"`
	Low    float64 `gorm:"not null"`
	Close  float64 `gorm:"not null"`
	Volume float64 `gorm:"not null;default:0"`
}

func (SnapshotModel) TableName() string {
	return "candle_snapshots"
}

func toModel(symbol, timeframe string, e entity.OHLCV) SnapshotModel {
	return SnapshotModel{
		Symbol:    symbol,
		Timeframe: timeframe,
		Time:      e.Time.UTC(),
		Open:      e.Open,
		High:      e.High,
		Low:       e.Low,
		Close:     e.Close,
		Volume:    e.Volume,
	}
}

// ReplaceSnapshot swaps the stored candles for symbol and timeframe in one transaction.
func (r *snapshotGorm) ReplaceSnapshot(ctx context.Context, symbol, timeframe string, candles []entity.OHLCV) error {
	ms := make([]SnapshotModel, 0, len(candles))
	for _, e := range candles {
		ms = append(ms, toModel(symbol, timeframe, e))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("symbol = ? AND timeframe = ?", symbol, timeframe).Delete(&SnapshotModel{}).Error; err != nil {
			return err
		}
		if len(ms) == 0 {
			return nil
		}
		return tx.CreateInBatches(&ms, snapshotBatchSize).Error
	})
}

// Find returns the stored snapshot for symbol and timeframe, oldest first.
func (r *snapshotGorm) Find(ctx context.Context, symbol, timeframe string) ([]entity.OHLCV, error) {
	var rows []SnapshotModel
	if err := r.db.WithContext(ctx).
		Where("symbol = ? AND timeframe = ?", symbol, timeframe).
		Order("time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.OHLCV, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.OHLCV{
			Time:   m.Time.UTC(),
			Open:   m.Open,
			High:   m.High,
			Low:    m.Low,
			Close:  m.Close,
			Volume: m.Volume,
		})
	}
	return out, nil
}
