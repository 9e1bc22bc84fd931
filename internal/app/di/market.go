// Package di provides dependency injection factories for creating application components.
package di

import (
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/analysestock/bond-analysis/internal/app/config"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/adapters"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/synth"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/usecase"
	"github.com/analysestock/bond-analysis/internal/platform/cache"
)

// NewGenerator creates the synthetic market data generator from config.
func NewGenerator(cfg config.Market) *synth.Generator {
	return synth.NewGenerator(cfg.Seed)
}

// NewSeriesSource wires the generator-backed series source, wrapped in the
// Redis caching decorator when a client is available. A nil client yields
// a pass-through decorator, so callers never need to branch.
func NewSeriesSource(gen *synth.Generator, rdb *redisv9.Client, cfg config.Market) usecase.SeriesSource {
	return cache.NewCachingSeriesSource(rdb, cfg.CacheTTL, adapters.NewSynthSource(gen), "history")
}
