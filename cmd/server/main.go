package main

import (
	"context"
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/analysestock/bond-analysis/internal/app/config"
	"github.com/analysestock/bond-analysis/internal/app/di"
	"github.com/analysestock/bond-analysis/internal/app/router"
	marketadapters "github.com/analysestock/bond-analysis/internal/feature/marketdata/adapters"
	markethandler "github.com/analysestock/bond-analysis/internal/feature/marketdata/transport/handler"
	marketusecase "github.com/analysestock/bond-analysis/internal/feature/marketdata/usecase"
	prefadapters "github.com/analysestock/bond-analysis/internal/feature/preferences/adapters"
	prefhandler "github.com/analysestock/bond-analysis/internal/feature/preferences/transport/handler"
	prefusecase "github.com/analysestock/bond-analysis/internal/feature/preferences/usecase"
	platformdb "github.com/analysestock/bond-analysis/internal/platform/db"
	platformredis "github.com/analysestock/bond-analysis/internal/platform/redis"
	"github.com/analysestock/bond-analysis/internal/platform/scheduler"
	"github.com/analysestock/bond-analysis/internal/platform/web"
)

func main() {
	// config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	// db
	db, err := platformdb.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	if cfg.Database.RunMigrations {
		if err := platformdb.Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Host == "" {
		log.Println("[WARN] Redis not configured. Running without cache.")
	} else if tmp, err := platformredis.NewRedisClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Generator and sources
	gen := di.NewGenerator(cfg.Market)
	source := marketadapters.NewSynthSource(gen)
	seriesSource := di.NewSeriesSource(gen, rdb, cfg.Market)

	// Repository
	bondRepo := marketadapters.NewBondRepository(db)
	historyRepo := marketadapters.NewHistoryRepository(db)
	prefRepo := prefadapters.NewPreferenceRepository(db)

	// Usecase
	bondsUC := marketusecase.NewBondsUsecase(source, bondRepo)
	historyUC := marketusecase.NewHistoryUsecase(seriesSource, historyRepo)
	curveUC := marketusecase.NewCurveUsecase(source)
	refreshUC := marketusecase.NewRefreshUsecase(source, bondRepo, cfg.Market.BondCount)
	prefUC := prefusecase.NewPreferencesUsecase(prefRepo)

	// Handler
	handlers := router.Handlers{
		Bonds:       markethandler.NewBondHandler(bondsUC),
		History:     markethandler.NewHistoryHandler(historyUC),
		Curve:       markethandler.NewCurveHandler(curveUC),
		Stream:      markethandler.NewStreamHandler(gen, cfg.Market.StreamInterval),
		Export:      markethandler.NewExportHandler(bondsUC),
		Preferences: prefhandler.NewPreferencesHandler(prefUC),
		Pages:       web.NewPageHandler(),
	}

	// バックグラウンドの定期リフレッシュ（設定時のみ）
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Market.RefreshCron != "" {
		sched := scheduler.NewScheduler(ctx, refreshUC)
		if err := sched.Register(cfg.Market.RefreshCron); err != nil {
			log.Fatalf("register refresh task: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	r := router.NewRouter(handlers, cfg.CORS)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
