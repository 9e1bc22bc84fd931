// Package db provides database connection management.
package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/analysestock/bond-analysis/internal/app/config"
	marketadapters "github.com/analysestock/bond-analysis/internal/feature/marketdata/adapters"
	prefadapters "github.com/analysestock/bond-analysis/internal/feature/preferences/adapters"
)

// Open connects to the configured database. A postgres DSN selects the
// postgres driver; otherwise the sqlite file path is used (the default,
// matching the original single-process deployment).
func Open(cfg config.Database) (*gorm.DB, error) {
	if cfg.DSN != "" {
		return openWithRetry(gpostgres.Open(cfg.DSN))
	}

	path := cfg.SQLitePath
	if path == "" {
		path = "bonds.db"
	}
	return openWithRetry(gsqlite.Open(path))
}

// openWithRetry keeps trying for up to 60s so the server survives a
// database that comes up slightly later (e.g., postgres in compose).
func openWithRetry(dialector gorm.Dialector) (*gorm.DB, error) {
	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err := gorm.Open(dialector, &gorm.Config{})
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after 60s: %w", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// Migrate creates or updates all application tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&marketadapters.BondModel{},
		&marketadapters.HistoryPointModel{},
		&prefadapters.PreferenceModel{},
		&prefadapters.AlertModel{},
		&prefadapters.WatchlistModel{},
	)
}
