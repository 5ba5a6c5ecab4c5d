package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
)

// maxEpochMillis bounds epoch inputs to 100,000,000 days either side of 1970.
const maxEpochMillis = 8.64e15

// timestampLayouts are tried in order after the epoch-millisecond form.
// Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp interprets a raw candle timestamp, either ISO-8601 text or
// decimal epoch milliseconds.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty timestamp", domain.ErrParse)
	}

	if ms, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(ms) || math.IsInf(ms, 0) {
			return time.Time{}, fmt.Errorf("%w: timestamp %q is not finite", domain.ErrParse, s)
		}
		if math.Abs(ms) > maxEpochMillis {
			return time.Time{}, fmt.Errorf("%w: timestamp %q out of range", domain.ErrParse, s)
		}
		return time.UnixMilli(int64(math.Floor(ms))).UTC(), nil
	}

	for _, layout := range timestampLayouts {
		if tm, err := time.Parse(layout, s); err == nil {
			return tm, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: parse time %q", domain.ErrParse, s)
}

// Normalize converts one RawCandle into the render model.
// Time is floor(epochMillis / 1000); OHLC values pass through unchanged.
func Normalize(raw entity.RawCandle) (entity.Candle, error) {
	tm, err := ParseTimestamp(raw.Timestamp)
	if err != nil {
		return entity.Candle{}, err
	}
	return entity.Candle{
		Time:  floorDiv(tm.UnixMilli(), 1000),
		Open:  raw.Open,
		High:  raw.High,
		Low:   raw.Low,
		Close: raw.Close,
	}, nil
}

// NormalizeAll maps every raw candle eagerly, keeping the input order.
func NormalizeAll(raw []entity.RawCandle) ([]entity.Candle, error) {
	out := make([]entity.Candle, 0, len(raw))
	for i, r := range raw {
		c, err := Normalize(r)
		if err != nil {
			return nil, fmt.Errorf("candle[%d]: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
