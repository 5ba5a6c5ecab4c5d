// Package dto defines the wire format of the data service historical endpoint.
package dto

import "encoding/json"

// HistoricalResponse is the JSON body of GET /api/data/historical.
// Candles is a pointer so that a missing field can be told apart from an empty list.
type HistoricalResponse struct {
	Symbol    string        `json:"symbol"`
	Timeframe string        `json:"timeframe"`
	Rows      int           `json:"rows"`
	Candles   *[]CandleItem `json:"candles"`
}

// CandleItem is one candle. Timestamp is either a JSON string or an epoch-millisecond number.
type CandleItem struct {
	Timestamp json.RawMessage `json:"timestamp"`
	Open      float64         `json:"open"`
	High      float64         `json:"high"`
	Low       float64         `json:"low"`
	Close     float64         `json:"close"`
}
