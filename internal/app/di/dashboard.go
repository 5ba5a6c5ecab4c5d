package di

import (
	"context"
	"fmt"
	"os"
	"strconv"

	candleusecase "github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/usecase"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/dashboard/chart"
	dashboardhandler "github.com/harshal31718/enma-quant-trading-platform/internal/feature/dashboard/transport/handler"
	dashboardusecase "github.com/harshal31718/enma-quant-trading-platform/internal/feature/dashboard/usecase"
	"github.com/harshal31718/enma-quant-trading-platform/internal/platform/echarts"
	"github.com/harshal31718/enma-quant-trading-platform/internal/shared/validation"
)

// DashboardConfig holds the dashboard settings.
type DashboardConfig struct {
	Symbol     string `default:"BTC/USDT"`
	Timeframe  string `default:"15m"`
	Limit      int    `default:"200" validate:"gt=0"`
	ChartWidth int    `default:"1200" validate:"gt=0"` // Container width in pixels
}

// LoadDashboardConfig reads DASHBOARD_* environment variables.
func LoadDashboardConfig() (DashboardConfig, error) {
	cfg := DashboardConfig{
		Symbol:    os.Getenv("DASHBOARD_SYMBOL"),
		Timeframe: os.Getenv("DASHBOARD_TIMEFRAME"),
	}
	var err error
	if cfg.Limit, err = atoiEnv("DASHBOARD_LIMIT"); err != nil {
		return cfg, err
	}
	if cfg.ChartWidth, err = atoiEnv("DASHBOARD_CHART_WIDTH"); err != nil {
		return cfg, err
	}
	if err := validation.Apply(context.Background(), &cfg); err != nil {
		return cfg, fmt.Errorf("dashboard config: %w", err)
	}
	return cfg, nil
}

func atoiEnv(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// NewDashboard builds the root component and its page handler. The chart
// container is attached; the caller mounts the component.
func NewDashboard(cfg DashboardConfig, source candleusecase.HistoricalSource) (*dashboardusecase.Dashboard, *dashboardhandler.DashboardHandler) {
	q := candleusecase.Query{Symbol: cfg.Symbol, Timeframe: cfg.Timeframe, Limit: cfg.Limit}
	factory := echarts.NewFactory(cfg.Symbol + " " + cfg.Timeframe)
	d := dashboardusecase.NewDashboard(source, q, chart.NewRenderer(factory))
	d.AttachContainer(dashboardusecase.NewViewport(cfg.ChartWidth))
	return d, dashboardhandler.NewDashboardHandler(d)
}
