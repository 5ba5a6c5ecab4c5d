// Package dto defines the request and response bodies of the data service.
package dto

// HistoricalResponse is the body of GET /api/data/historical.
type HistoricalResponse struct {
	Symbol    string           `json:"symbol"`
	Timeframe string           `json:"timeframe"`
	Rows      int              `json:"rows"`
	Candles   []CandleResponse `json:"candles"`
}

// CandleResponse is one OHLCV row.
type CandleResponse struct {
	Timestamp string  `json:"timestamp"` // RFC 3339, UTC
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
