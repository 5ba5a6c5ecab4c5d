// Package entity defines the domain models for the candles feature.
package entity

import "time"

// RawCandle is one OHLC record as received from the historical data API.
// Timestamp is kept as text: either an ISO-8601 time or decimal epoch milliseconds.
type RawCandle struct {
	Timestamp string
	Open      float64
	High      float64
	Low       float64
	Close     float64
}

// Candle is the normalized render model fed to the chart.
type Candle struct {
	Time  int64   `json:"time"` // Unix seconds
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// OHLCV is a candlestick as fetched from the exchange by the data service.
type OHLCV struct {
	Time   time.Time // Open time of the interval
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64 // Base asset volume
}
