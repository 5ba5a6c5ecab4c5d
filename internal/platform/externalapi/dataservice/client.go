package dataservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/usecase"
	"github.com/harshal31718/enma-quant-trading-platform/internal/platform/externalapi/dataservice/dto"
)

// HistoricalPath is the path of the historical candle endpoint.
const HistoricalPath = "/api/data/historical"

// Client calls the data service over HTTP.
type Client struct {
	cfg    Config
	client *http.Client
}

var _ usecase.HistoricalSource = (*Client)(nil)

// NewClient creates a Client with the given settings and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// GetHistorical issues one GET request and returns the raw candles in response order.
// Transport failures and non-2xx statuses wrap domain.ErrNetwork; bodies that are not
// JSON or lack the candles field wrap domain.ErrParse.
func (c *Client) GetHistorical(ctx context.Context, symbol, timeframe string, limit int) ([]entity.RawCandle, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("timeframe", timeframe)
	q.Set("limit", strconv.Itoa(limit))

	u := fmt.Sprintf("%s%s?%s", strings.TrimRight(c.cfg.BaseURL, "/"), HistoricalPath, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", domain.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: data service http %d", domain.ErrNetwork, res.StatusCode)
	}

	var body dto.HistoricalResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrParse, err)
	}
	if body.Candles == nil {
		return nil, fmt.Errorf("%w: response has no candles", domain.ErrParse)
	}

	items := *body.Candles
	candles := make([]entity.RawCandle, 0, len(items))
	for i, it := range items {
		ts, err := timestampText(it.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: candle[%d]: %w", domain.ErrParse, i, err)
		}
		candles = append(candles, entity.RawCandle{
			Timestamp: ts,
			Open:      it.Open,
			High:      it.High,
			Low:       it.Low,
			Close:     it.Close,
		})
	}
	return candles, nil
}

// timestampText turns a JSON string or number token into the RawCandle timestamp text.
func timestampText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", errors.New("missing timestamp")
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("timestamp %s: %w", raw, err)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("timestamp %s is neither string nor number", raw)
	}
	return n.String(), nil
}
