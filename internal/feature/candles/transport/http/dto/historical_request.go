package dto

// HistoricalRequest is the query of GET /api/data/historical.
type HistoricalRequest struct {
	Symbol    string `form:"symbol" validate:"required"`
	Timeframe string `form:"timeframe" default:"15m" validate:"oneof=1m 3m 5m 15m 30m 1h 2h 4h 6h 8h 12h 1d 3d 1w 1M"`
	Limit     int    `form:"limit" default:"500" validate:"min=1,max=1500"`
}

// SnapshotRequest is the query of GET /api/data/snapshot.
type SnapshotRequest struct {
	Symbol    string `form:"symbol" validate:"required"`
	Timeframe string `form:"timeframe" default:"15m" validate:"oneof=1m 3m 5m 15m 30m 1h 2h 4h 6h 8h 12h 1d 3d 1w 1M"`
}
