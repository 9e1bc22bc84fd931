// Command seed generates one bond snapshot batch and writes it to the
// database, separating "seed/refresh" from "read" for deployments that
// prefer a stable stored snapshot over refresh-on-read.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/analysestock/bond-analysis/internal/app/config"
	"github.com/analysestock/bond-analysis/internal/app/di"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/adapters"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/usecase"
	platformdb "github.com/analysestock/bond-analysis/internal/platform/db"
)

func main() {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := platformdb.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	if err := platformdb.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	gen := di.NewGenerator(cfg.Market)
	source := adapters.NewSynthSource(gen)
	bondRepo := adapters.NewBondRepository(db)
	uc := usecase.NewRefreshUsecase(source, bondRepo, cfg.Market.BondCount)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := uc.Refresh(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("seed ok")
}
