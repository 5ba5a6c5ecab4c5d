package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/transport/http/dto"
)

// SnapshotUsecase defines the snapshot read used by the handler.
type SnapshotUsecase interface {
	GetSnapshot(ctx context.Context, symbol, timeframe string) ([]entity.OHLCV, error)
}

// SnapshotHandler serves stored snapshots.
type SnapshotHandler struct {
	uc SnapshotUsecase
}

// NewSnapshotHandler creates a SnapshotHandler.
func NewSnapshotHandler(uc SnapshotUsecase) *SnapshotHandler {
	return &SnapshotHandler{uc: uc}
}

// GetSnapshot returns the candles stored by the last historical request.
//
// Example:
// GET /api/data/snapshot?symbol=BTC/USDT&timeframe=15m
func (h *SnapshotHandler) GetSnapshot(c *gin.Context) {
	var req dto.SnapshotRequest
	if !bindQuery(c, &req) {
		return
	}

	candles, err := h.uc.GetSnapshot(c.Request.Context(), req.Symbol, req.Timeframe)
	if err != nil {
		status, msg := errorStatus(err)
		slog.Warn("snapshot request failed", "symbol", req.Symbol, "timeframe", req.Timeframe, "status", status, "error", err)
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, toHistoricalResponse(req.Symbol, req.Timeframe, candles))
}
