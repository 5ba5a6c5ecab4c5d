package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/usecase"
)

const klinesPath = "/fapi/v1/klines"

// Market is a MarketRepository backed by Binance futures klines.
type Market struct {
	cfg    Config
	client *http.Client
}

var _ usecase.MarketRepository = (*Market)(nil)

// NewMarket creates a Market.
func NewMarket(cfg Config, client *http.Client) *Market {
	return &Market{cfg: cfg, client: client}
}

// MarketSymbol converts a unified pair such as "BTC/USDT" or "BTC/USDT:USDT" to "BTCUSDT".
func MarketSymbol(symbol string) string {
	if i := strings.IndexByte(symbol, ':'); i >= 0 {
		symbol = symbol[:i]
	}
	return strings.ToUpper(strings.ReplaceAll(symbol, "/", ""))
}

// GetOHLCV fetches the most recent limit klines for symbol, oldest first.
func (m *Market) GetOHLCV(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error) {
	q := url.Values{}
	q.Set("symbol", MarketSymbol(symbol))
	q.Set("interval", timeframe)
	q.Set("limit", strconv.Itoa(limit))

	u := fmt.Sprintf("%s%s?%s", strings.TrimRight(m.cfg.BaseURL, "/"), klinesPath, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: binance: build request: %w", domain.ErrNetwork, err)
	}

	res, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: binance: %w", domain.ErrNetwork, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: binance http %d", domain.ErrNetwork, res.StatusCode)
	}

	// Each kline is a JSON array of mixed numbers and strings.
	var raw [][]json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: binance: decode response: %w", domain.ErrParse, err)
	}

	candles, err := parseKlines(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: binance: %w", domain.ErrParse, err)
	}
	return candles, nil
}

// parseKlines converts the Binance wire format.
//
// Kline array layout:
//
//	[0] Open time (int64, Unix ms)
//	[1] Open      (string)
//	[2] High      (string)
//	[3] Low       (string)
//	[4] Close     (string)
//	[5] Volume    (string, base asset)
//	[6] Close time and the remaining fields are unused.
func parseKlines(raw [][]json.RawMessage) ([]entity.OHLCV, error) {
	out := make([]entity.OHLCV, 0, len(raw))
	for i, r := range raw {
		if len(r) < 6 {
			return nil, fmt.Errorf("kline[%d] has %d fields, want at least 6", i, len(r))
		}

		var openTime int64
		if err := json.Unmarshal(r[0], &openTime); err != nil {
			return nil, fmt.Errorf("kline[%d] parse open time %s: %w", i, r[0], err)
		}

		var vals [5]float64
		for j, name := range []string{"open", "high", "low", "close", "volume"} {
			v, err := parseDecimal(r[j+1])
			if err != nil {
				return nil, fmt.Errorf("kline[%d] parse %s %s: %w", i, name, r[j+1], err)
			}
			vals[j] = v
		}

		out = append(out, entity.OHLCV{
			Time:   time.UnixMilli(openTime).UTC(),
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
		})
	}
	return out, nil
}

// parseDecimal reads a price field, sent by Binance as a quoted decimal.
func parseDecimal(raw json.RawMessage) (float64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// Fallback: some mirrors send bare numbers.
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return 0, err
		}
		return f, nil
	}
	return strconv.ParseFloat(s, 64)
}
