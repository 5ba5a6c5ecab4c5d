// Package dataservice provides a client for the historical candle API of the data service.
package dataservice

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/harshal31718/enma-quant-trading-platform/internal/shared/validation"
)

// Config holds the data service client settings.
type Config struct {
	BaseURL string        `default:"http://localhost:8000" validate:"required,url"` // scheme and host of the API, without /api/data
	Timeout time.Duration `default:"10s" validate:"gt=0"`                           // whole-request timeout
}

// LoadConfig reads DATA_SERVICE_BASE_URL and DATA_SERVICE_TIMEOUT, falling back to the defaults.
func LoadConfig() (Config, error) {
	cfg := Config{BaseURL: os.Getenv("DATA_SERVICE_BASE_URL")}
	if v := os.Getenv("DATA_SERVICE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse DATA_SERVICE_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}
	if err := validation.Apply(context.Background(), &cfg); err != nil {
		return Config{}, fmt.Errorf("data service config: %w", err)
	}
	return cfg, nil
}
