package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/harshal31718/enma-quant-trading-platform/internal/app/di"
	"github.com/harshal31718/enma-quant-trading-platform/internal/app/router"
	infrahttp "github.com/harshal31718/enma-quant-trading-platform/internal/platform/http"
	"github.com/harshal31718/enma-quant-trading-platform/internal/platform/logger"
)

// unmountTimeout bounds the wait for an abandoned load to return.
const unmountTimeout = 5 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
	logger.Setup(os.Stdout, os.Getenv("LOG_LEVEL"), "dashboard")
	gin.SetMode(gin.ReleaseMode)

	if err := run(); err != nil {
		slog.Error("dashboard stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := di.LoadDashboardConfig()
	if err != nil {
		return fmt.Errorf("dashboard config: %w", err)
	}
	client, err := di.NewDataServiceClient()
	if err != nil {
		return fmt.Errorf("data service config: %w", err)
	}

	dashboard, dashboardH := di.NewDashboard(cfg, client)
	dashboard.Mount(ctx)
	defer func() {
		dashboard.Unmount()
		select {
		case <-dashboard.Done():
		case <-time.After(unmountTimeout):
			slog.Warn("historical load did not stop before exit")
		}
	}()

	r := router.NewDashboardRouter(dashboardH)

	addr := os.Getenv("DASHBOARD_ADDR")
	if addr == "" {
		addr = ":5173"
	}
	return infrahttp.ListenAndServe(ctx, addr, r)
}
