// Package adapters はpreferencesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/analysestock/bond-analysis/internal/feature/preferences/domain/entity"
	"github.com/analysestock/bond-analysis/internal/feature/preferences/usecase"
)

type preferenceGorm struct {
	db *gorm.DB
}

var _ usecase.PreferenceRepository = (*preferenceGorm)(nil)

// NewPreferenceRepository は指定されたDB接続で設定リポジトリを作成します。
func NewPreferenceRepository(db *gorm.DB) *preferenceGorm {
	return &preferenceGorm{db: db}
}

// PreferenceModel stores the preference payload as a JSON blob keyed by
// user id, mirroring the user_preferences table layout.
type PreferenceModel struct {
	UserID      string    `gorm:"primaryKey;size:64"`
	Preferences string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (PreferenceModel) TableName() string {
	return "user_preferences"
}

// AlertModel stores one alert-settings row per user.
type AlertModel struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       string    `gorm:"size:64;not null;uniqueIndex"`
	YieldChange  int       `gorm:"not null"`
	SpreadChange int       `gorm:"not null"`
	PriceChange  float64   `gorm:"not null"`
	Email        bool      `gorm:"not null;default:false"`
	SMS          bool      `gorm:"column:sms;not null;default:false"`
	Dashboard    bool      `gorm:"not null;default:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (AlertModel) TableName() string {
	return "alerts"
}

// WatchlistModel is one watchlist row per (user, isin).
type WatchlistModel struct {
	UserID string `gorm:"primaryKey;size:64"`
	ISIN   string `gorm:"column:isin;primaryKey;size:12"`
}

func (WatchlistModel) TableName() string {
	return "watchlist"
}

// SavePreferences は設定をJSONにシリアライズして INSERT OR REPLACE で保存します。
func (r *preferenceGorm) SavePreferences(ctx context.Context, prefs entity.Preferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	m := PreferenceModel{UserID: prefs.UserID, Preferences: string(payload)}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"preferences"}),
	}).Create(&m).Error
}

// SaveAlerts はアラート設定を INSERT OR REPLACE で保存します。
func (r *preferenceGorm) SaveAlerts(ctx context.Context, alerts entity.AlertSettings) error {
	m := AlertModel{
		UserID:       alerts.UserID,
		YieldChange:  alerts.YieldChange,
		SpreadChange: alerts.SpreadChange,
		PriceChange:  alerts.PriceChange,
		Email:        alerts.Channels.Email,
		SMS:          alerts.Channels.SMS,
		Dashboard:    alerts.Channels.Dashboard,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"yield_change", "spread_change", "price_change",
			"email", "sms", "dashboard", "updated_at",
		}),
	}).Create(&m).Error
}

// AddWatchlistEntry はウォッチリストに行を追加します。重複は無視されます。
func (r *preferenceGorm) AddWatchlistEntry(ctx context.Context, e entity.WatchlistEntry) error {
	m := WatchlistModel{UserID: e.UserID, ISIN: e.ISIN}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error
}

// RemoveWatchlistEntry はウォッチリストから行を削除します。
// 対象が存在しない場合は ErrWatchlistEntryNotFound を返します。
func (r *preferenceGorm) RemoveWatchlistEntry(ctx context.Context, e entity.WatchlistEntry) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND isin = ?", e.UserID, e.ISIN).
		Delete(&WatchlistModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrWatchlistEntryNotFound
	}
	return nil
}
