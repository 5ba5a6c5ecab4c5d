// Package handler provides the HTTP handlers of the ml service.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/signals/domain/entity"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/signals/transport/http/dto"
)

// SignalUsecase defines the signal source used by the handler.
type SignalUsecase interface {
	Latest() entity.Signal
	Mock() []entity.Signal
}

// SignalHandler serves trading signals.
type SignalHandler struct {
	uc SignalUsecase
}

// NewSignalHandler creates a SignalHandler.
func NewSignalHandler(uc SignalUsecase) *SignalHandler {
	return &SignalHandler{uc: uc}
}

// GetSignal returns the current signal.
//
// GET /api/ml/signal
func (h *SignalHandler) GetSignal(c *gin.Context) {
	c.JSON(http.StatusOK, toResponse(h.uc.Latest()))
}

// GetMockSignals returns a series of signals one minute apart, newest first.
//
// GET /api/ml/signals/mock
func (h *SignalHandler) GetMockSignals(c *gin.Context) {
	signals := h.uc.Mock()
	out := make([]dto.SignalResponse, 0, len(signals))
	for _, s := range signals {
		out = append(out, toResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

func toResponse(s entity.Signal) dto.SignalResponse {
	return dto.SignalResponse{
		Symbol:     s.Symbol,
		Signal:     string(s.Direction),
		Confidence: s.Confidence,
		Timestamp:  s.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}
