// Package binance fetches historical klines from the Binance USD-M futures REST API.
package binance

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/harshal31718/enma-quant-trading-platform/internal/shared/validation"
)

// Config holds the Binance client settings.
type Config struct {
	BaseURL           string        `default:"https://fapi.binance.com" validate:"required,url"`
	Timeout           time.Duration `default:"10s" validate:"gt=0"`
	RequestsPerMinute int           `default:"1200" validate:"gt=0"` // client-side request budget
}

// LoadConfig reads BINANCE_BASE_URL, BINANCE_TIMEOUT and BINANCE_REQUESTS_PER_MINUTE.
func LoadConfig() (Config, error) {
	cfg := Config{BaseURL: os.Getenv("BINANCE_BASE_URL")}
	if v := os.Getenv("BINANCE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse BINANCE_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("BINANCE_REQUESTS_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse BINANCE_REQUESTS_PER_MINUTE %q: %w", v, err)
		}
		cfg.RequestsPerMinute = n
	}
	if err := validation.Apply(context.Background(), &cfg); err != nil {
		return Config{}, fmt.Errorf("binance config: %w", err)
	}
	return cfg, nil
}
