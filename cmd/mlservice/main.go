package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/harshal31718/enma-quant-trading-platform/internal/app/di"
	"github.com/harshal31718/enma-quant-trading-platform/internal/app/router"
	infrahttp "github.com/harshal31718/enma-quant-trading-platform/internal/platform/http"
	"github.com/harshal31718/enma-quant-trading-platform/internal/platform/logger"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
	logger.Setup(os.Stdout, os.Getenv("LOG_LEVEL"), "ml-service")
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	origins := router.DefaultAllowedOrigins
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}
	r := router.NewMLServiceRouter(di.NewSignalHandler(di.MLSymbolsFromEnv()), origins)

	addr := os.Getenv("ML_SERVICE_ADDR")
	if addr == "" {
		addr = ":8001"
	}
	if err := infrahttp.ListenAndServe(ctx, addr, r); err != nil {
		stop()
		slog.Error("ml service stopped", "error", err)
		os.Exit(1)
	}
}
