// Package usecase はクライアント設定操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"github.com/analysestock/bond-analysis/internal/feature/preferences/domain/entity"
)

// DefaultUserID is used when no session user is identified. The dashboard
// is single-user: multi-user persistence guarantees are out of scope.
const DefaultUserID = "default_user"

var (
	// ErrEmptyISIN is returned when a watchlist operation names no instrument.
	ErrEmptyISIN = errors.New("isin must not be empty")

	// ErrWatchlistEntryNotFound is returned when removing an ISIN that is not on the watchlist.
	ErrWatchlistEntryNotFound = errors.New("watchlist entry not found")
)

// PreferenceRepository abstracts the persistence layer for client settings.
// Saves are insert-or-replace keyed by user id.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PreferenceRepository interface {
	SavePreferences(ctx context.Context, prefs entity.Preferences) error
	SaveAlerts(ctx context.Context, alerts entity.AlertSettings) error
	AddWatchlistEntry(ctx context.Context, e entity.WatchlistEntry) error
	RemoveWatchlistEntry(ctx context.Context, e entity.WatchlistEntry) error
}

// PreferencesUsecase はクライアント設定のユースケースを定義します。
type PreferencesUsecase struct {
	repo PreferenceRepository
}

// NewPreferencesUsecase は新しい PreferencesUsecase を作成します。
func NewPreferencesUsecase(repo PreferenceRepository) *PreferencesUsecase {
	return &PreferencesUsecase{repo: repo}
}

// SavePreferences は設定を保存します（同一ユーザーの既存設定は上書き）。
func (u *PreferencesUsecase) SavePreferences(ctx context.Context, prefs entity.Preferences) error {
	if prefs.UserID == "" {
		prefs.UserID = DefaultUserID
	}
	return u.repo.SavePreferences(ctx, prefs)
}

// SaveAlerts はアラート設定を保存します（既存設定は上書き）。
func (u *PreferencesUsecase) SaveAlerts(ctx context.Context, alerts entity.AlertSettings) error {
	if alerts.UserID == "" {
		alerts.UserID = DefaultUserID
	}
	return u.repo.SaveAlerts(ctx, alerts)
}

// AddToWatchlist はウォッチリストに銘柄を追加します。既に存在する場合は何もしません。
func (u *PreferencesUsecase) AddToWatchlist(ctx context.Context, userID, isin string) error {
	if isin == "" {
		return ErrEmptyISIN
	}
	if userID == "" {
		userID = DefaultUserID
	}
	return u.repo.AddWatchlistEntry(ctx, entity.WatchlistEntry{UserID: userID, ISIN: isin})
}

// RemoveFromWatchlist はウォッチリストから銘柄を削除します。
func (u *PreferencesUsecase) RemoveFromWatchlist(ctx context.Context, userID, isin string) error {
	if isin == "" {
		return ErrEmptyISIN
	}
	if userID == "" {
		userID = DefaultUserID
	}
	return u.repo.RemoveWatchlistEntry(ctx, entity.WatchlistEntry{UserID: userID, ISIN: isin})
}
