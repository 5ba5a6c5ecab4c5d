package dataservice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL + "/", Timeout: time.Second}, server.Client())
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestClient_GetHistorical_Success(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, HistoricalPath, r.URL.Path)
		assert.Equal(t, "BTC/USDT", r.URL.Query().Get("symbol"))
		assert.Equal(t, "15m", r.URL.Query().Get("timeframe"))
		assert.Equal(t, "200", r.URL.Query().Get("limit"))

		jsonHandler(http.StatusOK, `{
			"symbol": "BTC/USDT",
			"timeframe": "15m",
			"rows": 2,
			"candles": [
				{"timestamp": "2024-01-01T00:00:00Z", "open": 42000.5, "high": 42100, "low": 41900, "close": 42050, "volume": 12.5},
				{"timestamp": 1704068100000, "open": 42050, "high": 42200, "low": 42000, "close": 42150}
			]
		}`)(w, r)
	})

	candles, err := client.GetHistorical(context.Background(), "BTC/USDT", "15m", 200)
	require.NoError(t, err)

	assert.Equal(t, []entity.RawCandle{
		{Timestamp: "2024-01-01T00:00:00Z", Open: 42000.5, High: 42100, Low: 41900, Close: 42050},
		{Timestamp: "1704068100000", Open: 42050, High: 42200, Low: 42000, Close: 42150},
	}, candles)
}

func TestClient_GetHistorical_EmptyCandles(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, jsonHandler(http.StatusOK, `{"candles": []}`))

	candles, err := client.GetHistorical(context.Background(), "BTC/USDT", "15m", 200)
	require.NoError(t, err)
	assert.Empty(t, candles)
}

func TestClient_GetHistorical_HTTPError(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError, http.StatusBadGateway} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, jsonHandler(status, `{"candles": []}`))

			_, err := client.GetHistorical(context.Background(), "BTC/USDT", "15m", 200)
			assert.ErrorIs(t, err, domain.ErrNetwork)
		})
	}
}

func TestClient_GetHistorical_ParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{invalid json`},
		{"missing candles", `{"symbol": "BTC/USDT", "rows": 0}`},
		{"null candles", `{"candles": null}`},
		{"missing timestamp", `{"candles": [{"open": 1, "high": 1, "low": 1, "close": 1}]}`},
		{"boolean timestamp", `{"candles": [{"timestamp": true, "open": 1, "high": 1, "low": 1, "close": 1}]}`},
		{"string price", `{"candles": [{"timestamp": "2024-01-01T00:00:00Z", "open": "1"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, jsonHandler(http.StatusOK, tt.body))

			_, err := client.GetHistorical(context.Background(), "BTC/USDT", "15m", 200)
			assert.ErrorIs(t, err, domain.ErrParse)
		})
	}
}

func TestClient_GetHistorical_NetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(Config{BaseURL: url}, &http.Client{Timeout: time.Second})
	_, err := client.GetHistorical(context.Background(), "BTC/USDT", "15m", 200)
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestClient_GetHistorical_ContextCancellation(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.GetHistorical(ctx, "BTC/USDT", "15m", 200)
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

// TestLoadHistoricalCandles_EndToEnd drives the loader through the HTTP client.
func TestLoadHistoricalCandles_EndToEnd(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "BTC/USDT", q.Get("symbol"))
		assert.Equal(t, "15m", q.Get("timeframe"))
		assert.Equal(t, "200", q.Get("limit"))
		jsonHandler(http.StatusOK, `{"candles": [
			{"timestamp": "2024-01-01T00:00:00Z", "open": 1, "high": 2, "low": 0.5, "close": 1.5},
			{"timestamp": "2024-01-01T00:15:00Z", "open": 1.5, "high": 2.5, "low": 1, "close": 2},
			{"timestamp": "2024-01-01T00:30:00Z", "open": 2, "high": 3, "low": 1.5, "close": 2.5}
		]}`)(w, r)
	})

	candles, err := usecase.LoadHistoricalCandles(context.Background(), client, "BTC/USDT", "15m", 200)
	require.NoError(t, err)

	times := make([]int64, 0, len(candles))
	for _, c := range candles {
		times = append(times, c.Time)
	}
	assert.Equal(t, []int64{1704067200, 1704068100, 1704069000}, times)
	assert.Equal(t, entity.Candle{Time: 1704069000, Open: 2, High: 3, Low: 1.5, Close: 2.5}, candles[2])
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("DATA_SERVICE_BASE_URL", "")
	t.Setenv("DATA_SERVICE_TIMEOUT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DATA_SERVICE_BASE_URL", "http://data-service:8000")
	t.Setenv("DATA_SERVICE_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://data-service:8000", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("DATA_SERVICE_BASE_URL", "not a url")
	t.Setenv("DATA_SERVICE_TIMEOUT", "")

	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("DATA_SERVICE_BASE_URL", "")
	t.Setenv("DATA_SERVICE_TIMEOUT", "soon")

	_, err = LoadConfig()
	assert.Error(t, err)
}
