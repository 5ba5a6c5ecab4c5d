// Package entity defines the domain models for the signals feature.
package entity

import "time"

// Direction is the suggested position.
type Direction string

const (
	Long  Direction = "LONG"
	Short Direction = "SHORT"
	Hold  Direction = "HOLD"
)

// Directions lists every valid Direction.
var Directions = []Direction{Long, Short, Hold}

// Signal is one trading signal for a symbol.
type Signal struct {
	Symbol     string
	Direction  Direction
	Confidence float64 // 0..1, two decimals
	Timestamp  time.Time
}
