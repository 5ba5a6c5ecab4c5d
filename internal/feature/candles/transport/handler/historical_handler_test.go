package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/transport/handler"
)

// mockHistoricalUsecase is a mock of the HistoricalUsecase interface.
type mockHistoricalUsecase struct {
	GetHistoricalFunc func(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error)
}

func (m *mockHistoricalUsecase) GetHistorical(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error) {
	return m.GetHistoricalFunc(ctx, symbol, timeframe, limit)
}

func TestHistoricalHandler_GetHistorical(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	noCall := func(t *testing.T) func(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error) {
		return func(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error) {
			t.Error("usecase must not be called")
			return nil, nil
		}
	}

	tests := []struct {
		name           string
		url            string
		mock           func(t *testing.T) func(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error)
		expectedStatus int
		expectedBody   string
		errorContains  string
	}{
		{
			name: "success: all parameters specified",
			url:  "/api/data/historical?symbol=BTC/USDT&timeframe=1h&limit=2",
			mock: func(t *testing.T) func(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error) {
				return func(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error) {
					assert.Equal(t, "BTC/USDT", symbol)
					assert.Equal(t, "1h", timeframe)
					assert.Equal(t, 2, limit)
					return []entity.OHLCV{
						{Time: testTime, Open: 42000, High: 42100, Low: 41900, Close: 42050, Volume: 12.5},
						{Time: testTime.Add(time.Hour), Open: 42050, High: 42200, Low: 42000, Close: 42150, Volume: 8},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"symbol":"BTC/USDT","timeframe":"1h","rows":2,"candles":[
				{"timestamp":"2024-01-01T00:00:00Z","open":42000,"high":42100,"low":41900,"close":42050,"volume":12.5},
				{"timestamp":"2024-01-01T01:00:00Z","open":42050,"high":42200,"low":42000,"close":42150,"volume":8}]}`,
		},
		{
			name: "success: default parameter values",
			url:  "/api/data/historical?symbol=ETH/USDT",
			mock: func(t *testing.T) func(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error) {
				return func(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error) {
					assert.Equal(t, "15m", timeframe)
					assert.Equal(t, 500, limit)
					return []entity.OHLCV{}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"symbol":"ETH/USDT","timeframe":"15m","rows":0,"candles":[]}`,
		},
		{
			name:           "validation: missing symbol",
			url:            "/api/data/historical?timeframe=15m",
			mock:           noCall,
			expectedStatus: http.StatusUnprocessableEntity,
			errorContains:  "Symbol",
		},
		{
			name:           "validation: unknown timeframe",
			url:            "/api/data/historical?symbol=BTC/USDT&timeframe=7m",
			mock:           noCall,
			expectedStatus: http.StatusUnprocessableEntity,
			errorContains:  "Timeframe",
		},
		{
			name:           "validation: limit above maximum",
			url:            "/api/data/historical?symbol=BTC/USDT&limit=1501",
			mock:           noCall,
			expectedStatus: http.StatusUnprocessableEntity,
			errorContains:  "Limit",
		},
		{
			name:           "validation: negative limit",
			url:            "/api/data/historical?symbol=BTC/USDT&limit=-1",
			mock:           noCall,
			expectedStatus: http.StatusUnprocessableEntity,
			errorContains:  "Limit",
		},
		{
			name:           "validation: non-numeric limit",
			url:            "/api/data/historical?symbol=BTC/USDT&limit=abc",
			mock:           noCall,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "error: exchange failure",
			url:  "/api/data/historical?symbol=BTC/USDT",
			mock: func(t *testing.T) func(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error) {
				return func(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error) {
					return nil, fmt.Errorf("%w: GET https://fapi.binance.com/fapi/v1/klines: status 503", domain.ErrNetwork)
				}
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"failed to fetch candles from exchange"}`,
		},
		{
			name: "error: snapshot failure",
			url:  "/api/data/historical?symbol=BTC/USDT",
			mock: func(t *testing.T) func(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error) {
				return func(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error) {
					return nil, fmt.Errorf("%w: %w", domain.ErrSnapshot, errors.New("disk full"))
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to access candle snapshot"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewHistoricalHandler(&mockHistoricalUsecase{GetHistoricalFunc: tt.mock(t)})

			router := gin.New()
			router.GET("/api/data/historical", h.GetHistorical)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedStatus != http.StatusOK {
				assert.True(t, strings.HasPrefix(w.Body.String(), `{"error":`), w.Body.String())
				if tt.errorContains != "" {
					assert.Contains(t, w.Body.String(), tt.errorContains)
				}
			}
		})
	}
}
