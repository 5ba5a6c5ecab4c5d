// Package handler provides the HTTP handlers of the data service.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/transport/http/dto"
	"github.com/harshal31718/enma-quant-trading-platform/internal/shared/validation"
)

// HistoricalUsecase defines the usecase used by the handler.
type HistoricalUsecase interface {
	GetHistorical(ctx context.Context, symbol, timeframe string, limit int) ([]entity.OHLCV, error)
}

// HistoricalHandler serves historical candles.
type HistoricalHandler struct {
	uc HistoricalUsecase
}

// NewHistoricalHandler creates a HistoricalHandler.
func NewHistoricalHandler(uc HistoricalUsecase) *HistoricalHandler {
	return &HistoricalHandler{uc: uc}
}

// GetHistorical fetches candles from the exchange, stores the snapshot and returns it.
//
// Example:
// GET /api/data/historical?symbol=BTC/USDT&timeframe=15m&limit=500
func (h *HistoricalHandler) GetHistorical(c *gin.Context) {
	var req dto.HistoricalRequest
	if !bindQuery(c, &req) {
		return
	}

	candles, err := h.uc.GetHistorical(c.Request.Context(), req.Symbol, req.Timeframe, req.Limit)
	if err != nil {
		status, msg := errorStatus(err)
		slog.Error("historical request failed", "symbol", req.Symbol, "timeframe", req.Timeframe, "status", status, "error", err)
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, toHistoricalResponse(req.Symbol, req.Timeframe, candles))
}

// bindQuery binds the query string into req and applies its defaults and validation.
// On failure it writes a 422 response and returns false.
func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	if err := validation.Apply(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func toHistoricalResponse(symbol, timeframe string, candles []entity.OHLCV) dto.HistoricalResponse {
	out := make([]dto.CandleResponse, 0, len(candles))
	for _, x := range candles {
		out = append(out, dto.CandleResponse{
			Timestamp: x.Time.UTC().Format(time.RFC3339),
			Open:      x.Open,
			High:      x.High,
			Low:       x.Low,
			Close:     x.Close,
			Volume:    x.Volume,
		})
	}
	return dto.HistoricalResponse{
		Symbol:    symbol,
		Timeframe: timeframe,
		Rows:      len(out),
		Candles:   out,
	}
}

// errorStatus maps a usecase error to a status and a client-facing message.
// Details stay in the log.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrSnapshotNotFound):
		return http.StatusNotFound, "snapshot not found"
	case errors.Is(err, domain.ErrSnapshot):
		return http.StatusInternalServerError, "failed to access candle snapshot"
	default:
		return http.StatusBadGateway, "failed to fetch candles from exchange"
	}
}
