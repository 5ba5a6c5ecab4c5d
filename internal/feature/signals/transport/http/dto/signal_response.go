// Package dto defines the response bodies of the ml service.
package dto

// SignalResponse is one signal.
type SignalResponse struct {
	Symbol     string  `json:"symbol"`
	Signal     string  `json:"signal"` // LONG, SHORT or HOLD
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"` // RFC 3339, UTC
}
