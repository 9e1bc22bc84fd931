package adapters

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/analysestock/bond-analysis/internal/feature/preferences/domain/entity"
	"github.com/analysestock/bond-analysis/internal/feature/preferences/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&PreferenceModel{}, &AlertModel{}, &WatchlistModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// TestPreferenceGorm_SavePreferences は設定のJSON保存と上書きをテストします。
func TestPreferenceGorm_SavePreferences(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewPreferenceRepository(db)

	first := entity.Preferences{
		UserID:        "default_user",
		Sectors:       []string{"Energy"},
		DurationRange: []float64{2, 8},
		MinRating:     "BBB",
		Currencies:    []string{"USD"},
	}
	require.NoError(t, repo.SavePreferences(ctx, first))

	// 同一ユーザーの保存は上書きになる
	second := first
	second.MinRating = "A"
	require.NoError(t, repo.SavePreferences(ctx, second))

	var count int64
	require.NoError(t, db.Model(&PreferenceModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "save must replace, not append")

	var row PreferenceModel
	require.NoError(t, db.First(&row, "user_id = ?", "default_user").Error)

	var stored entity.Preferences
	require.NoError(t, json.Unmarshal([]byte(row.Preferences), &stored))
	assert.Equal(t, "A", stored.MinRating)
	assert.Equal(t, []string{"Energy"}, stored.Sectors)
}

// TestPreferenceGorm_SaveAlerts はアラート設定の保存と上書きをテストします。
func TestPreferenceGorm_SaveAlerts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewPreferenceRepository(db)

	alerts := entity.AlertSettings{
		UserID:       "default_user",
		YieldChange:  10,
		SpreadChange: 25,
		PriceChange:  2.0,
		Channels:     entity.AlertChannels{Email: true, Dashboard: true},
	}
	require.NoError(t, repo.SaveAlerts(ctx, alerts))

	alerts.SpreadChange = 40
	alerts.Channels.SMS = true
	require.NoError(t, repo.SaveAlerts(ctx, alerts))

	var count int64
	require.NoError(t, db.Model(&AlertModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "save must replace, not append")

	var row AlertModel
	require.NoError(t, db.First(&row, "user_id = ?", "default_user").Error)
	assert.Equal(t, 40, row.SpreadChange)
	assert.True(t, row.SMS)
	assert.True(t, row.Email)
}

// TestPreferenceGorm_Watchlist はウォッチリストの追加・重複・削除をテストします。
func TestPreferenceGorm_Watchlist(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewPreferenceRepository(db)

	entry := entity.WatchlistEntry{UserID: "default_user", ISIN: "XS0000000001"}

	t.Run("success: add entry", func(t *testing.T) {
		require.NoError(t, repo.AddWatchlistEntry(ctx, entry))

		var count int64
		require.NoError(t, db.Model(&WatchlistModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("success: duplicate add is ignored", func(t *testing.T) {
		require.NoError(t, repo.AddWatchlistEntry(ctx, entry))

		var count int64
		require.NoError(t, db.Model(&WatchlistModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "duplicate insert must not add a row")
	})

	t.Run("success: remove entry", func(t *testing.T) {
		require.NoError(t, repo.RemoveWatchlistEntry(ctx, entry))

		var count int64
		require.NoError(t, db.Model(&WatchlistModel{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("failure: removing missing entry returns not found", func(t *testing.T) {
		err := repo.RemoveWatchlistEntry(ctx, entry)
		assert.ErrorIs(t, err, usecase.ErrWatchlistEntryNotFound)
	})
}
