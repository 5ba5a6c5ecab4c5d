// Package router builds the gin engines of the dashboard, the data service and the ml service.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	candleshandler "github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/transport/handler"
	dashboardhandler "github.com/harshal31718/enma-quant-trading-platform/internal/feature/dashboard/transport/handler"
	signalshandler "github.com/harshal31718/enma-quant-trading-platform/internal/feature/signals/transport/handler"
	"github.com/harshal31718/enma-quant-trading-platform/internal/platform/http/handler"
)

// DefaultAllowedOrigins are the dashboard dev-server origins.
var DefaultAllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}

// NewDashboardRouter serves the dashboard page.
func NewDashboardRouter(dashboard *dashboardhandler.DashboardHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	health := handler.Health("")
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.GET("/", dashboard.Index)
	r.GET("/state", dashboard.State)

	return r
}

// NewDataServiceRouter serves the historical data API.
func NewDataServiceRouter(historical *candleshandler.HistoricalHandler, snapshot *candleshandler.SnapshotHandler,
	allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(allowedOrigins))

	api := r.Group("/api/data")
	{
		health := handler.Health("data-service")
		api.GET("/health", health)
		api.HEAD("/health", health)
		api.GET("/historical", historical.GetHistorical)
		api.GET("/snapshot", snapshot.GetSnapshot)
	}

	return r
}

// NewMLServiceRouter serves the signal API.
func NewMLServiceRouter(signals *signalshandler.SignalHandler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(allowedOrigins))

	api := r.Group("/api/ml")
	{
		health := handler.Health("ml-service")
		api.GET("/health", health)
		api.HEAD("/health", health)
		api.GET("/signal", signals.GetSignal)
		api.GET("/signals/mock", signals.GetMockSignals)
	}

	return r
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
