package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDashboardConfig_Defaults(t *testing.T) {
	t.Setenv("DASHBOARD_SYMBOL", "")
	t.Setenv("DASHBOARD_TIMEFRAME", "")
	t.Setenv("DASHBOARD_LIMIT", "")
	t.Setenv("DASHBOARD_CHART_WIDTH", "")

	cfg, err := LoadDashboardConfig()

	require.NoError(t, err)
	assert.Equal(t, DashboardConfig{Symbol: "BTC/USDT", Timeframe: "15m", Limit: 200, ChartWidth: 1200}, cfg)
}

func TestLoadDashboardConfig_FromEnv(t *testing.T) {
	t.Setenv("DASHBOARD_SYMBOL", "ETH/USDT")
	t.Setenv("DASHBOARD_TIMEFRAME", "1h")
	t.Setenv("DASHBOARD_LIMIT", "50")
	t.Setenv("DASHBOARD_CHART_WIDTH", "640")

	cfg, err := LoadDashboardConfig()

	require.NoError(t, err)
	assert.Equal(t, DashboardConfig{Symbol: "ETH/USDT", Timeframe: "1h", Limit: 50, ChartWidth: 640}, cfg)
}

func TestLoadDashboardConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric limit", key: "DASHBOARD_LIMIT", value: "many"},
		{name: "negative width", key: "DASHBOARD_CHART_WIDTH", value: "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DASHBOARD_LIMIT", "")
			t.Setenv("DASHBOARD_CHART_WIDTH", "")
			t.Setenv(tt.key, tt.value)

			_, err := LoadDashboardConfig()
			assert.Error(t, err)
		})
	}
}
