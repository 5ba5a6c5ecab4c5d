package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/harshal31718/enma-quant-trading-platform/internal/app/di"
	"github.com/harshal31718/enma-quant-trading-platform/internal/app/router"
	"github.com/harshal31718/enma-quant-trading-platform/internal/platform/db"
	infrahttp "github.com/harshal31718/enma-quant-trading-platform/internal/platform/http"
	"github.com/harshal31718/enma-quant-trading-platform/internal/platform/logger"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
	logger.Setup(os.Stdout, os.Getenv("LOG_LEVEL"), "data-service")
	gin.SetMode(gin.ReleaseMode)

	if err := run(); err != nil {
		slog.Error("data service stopped", "error", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup always happens.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.OpenDB(db.LoadConfigFromEnv())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Handlers
	historicalH, err := di.NewHistoricalHandler(gdb)
	if err != nil {
		return fmt.Errorf("build data service: %w", err)
	}
	snapshotH := di.NewSnapshotHandler(gdb)

	origins := router.DefaultAllowedOrigins
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}
	r := router.NewDataServiceRouter(historicalH, snapshotH, origins)

	addr := os.Getenv("DATA_SERVICE_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	return infrahttp.ListenAndServe(ctx, addr, r)
}
