// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/harshal31718/enma-quant-trading-platform/internal/platform/externalapi/binance"
	"github.com/harshal31718/enma-quant-trading-platform/internal/platform/externalapi/dataservice"
	infrahttp "github.com/harshal31718/enma-quant-trading-platform/internal/platform/http"
	"github.com/harshal31718/enma-quant-trading-platform/internal/shared/ratelimiter"
)

// NewMarket creates a Binance market client and the rate limiter that guards it.
func NewMarket() (*binance.Market, *ratelimiter.RateLimiter, error) {
	cfg, err := binance.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return binance.NewMarket(cfg, httpClient), ratelimiter.NewRateLimiter(cfg.RequestsPerMinute, time.Minute), nil
}

// NewDataServiceClient creates the dashboard's client for the data service.
func NewDataServiceClient() (*dataservice.Client, error) {
	cfg, err := dataservice.LoadConfig()
	if err != nil {
		return nil, err
	}
	return dataservice.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout)), nil
}
