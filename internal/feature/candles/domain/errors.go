// Package domain defines domain-level errors for the candles feature.
package domain

import "errors"

// Errors raised at the historical data fetch boundary.
// Every failure is wrapped around one of these so callers can use errors.Is.
var (
	// ErrNetwork indicates that the request failed or the server answered with a non-success status.
	ErrNetwork = errors.New("historical data request failed")

	// ErrParse indicates that the response body is not valid JSON, lacks the candles field,
	// or carries a timestamp that cannot be interpreted.
	ErrParse = errors.New("historical data response is malformed")
)

// ErrSnapshot indicates that fetched candles could not be stored by the data service.
var ErrSnapshot = errors.New("failed to store candle snapshot")

// ErrSnapshotNotFound indicates that no snapshot has been stored for a symbol and timeframe.
var ErrSnapshotNotFound = errors.New("candle snapshot not found")
