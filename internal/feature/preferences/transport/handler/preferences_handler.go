// Package handler はpreferencesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/analysestock/bond-analysis/internal/feature/preferences/domain/entity"
	"github.com/analysestock/bond-analysis/internal/feature/preferences/transport/http/dto"
	"github.com/analysestock/bond-analysis/internal/feature/preferences/usecase"
)

// PreferencesUsecase はクライアント設定操作のユースケースインターフェースを定義します。
type PreferencesUsecase interface {
	SavePreferences(ctx context.Context, prefs entity.Preferences) error
	SaveAlerts(ctx context.Context, alerts entity.AlertSettings) error
	AddToWatchlist(ctx context.Context, userID, isin string) error
	RemoveFromWatchlist(ctx context.Context, userID, isin string) error
}

// PreferencesHandler はクライアント設定のHTTPリクエストを処理します。
type PreferencesHandler struct {
	uc PreferencesUsecase
}

// NewPreferencesHandler は指定されたusecaseでPreferencesHandlerの新しいインスタンスを生成します。
func NewPreferencesHandler(uc PreferencesUsecase) *PreferencesHandler {
	return &PreferencesHandler{uc: uc}
}

// SavePreferences は設定を保存します。
//
// エンドポイント例:
// POST /api/preferences
func (h *PreferencesHandler) SavePreferences(c *gin.Context) {
	var req dto.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	prefs := entity.Preferences{
		UserID:        userID(c),
		Sectors:       req.Sectors,
		DurationRange: req.DurationRange,
		MinRating:     req.MinRating,
		Currencies:    req.Currencies,
	}
	if err := h.uc.SavePreferences(c.Request.Context(), prefs); err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "success"})
}

// SaveAlerts はアラート設定を保存します。
//
// エンドポイント例:
// POST /api/alerts
func (h *PreferencesHandler) SaveAlerts(c *gin.Context) {
	var req dto.AlertsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	alerts := entity.AlertSettings{
		UserID:       userID(c),
		YieldChange:  req.YieldChange,
		SpreadChange: req.SpreadChange,
		PriceChange:  req.PriceChange,
		Channels: entity.AlertChannels{
			Email:     req.Channels.Email,
			SMS:       req.Channels.SMS,
			Dashboard: req.Channels.Dashboard,
		},
	}
	if err := h.uc.SaveAlerts(c.Request.Context(), alerts); err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "success"})
}

// AddWatchlist はウォッチリストに銘柄を追加します。
//
// エンドポイント例:
// POST /api/watchlist/XS0000000001
func (h *PreferencesHandler) AddWatchlist(c *gin.Context) {
	if err := h.uc.AddToWatchlist(c.Request.Context(), userID(c), c.Param("isin")); err != nil {
		c.JSON(watchlistStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "success"})
}

// RemoveWatchlist はウォッチリストから銘柄を削除します。
//
// エンドポイント例:
// DELETE /api/watchlist/XS0000000001
func (h *PreferencesHandler) RemoveWatchlist(c *gin.Context) {
	if err := h.uc.RemoveFromWatchlist(c.Request.Context(), userID(c), c.Param("isin")); err != nil {
		c.JSON(watchlistStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "success"})
}

// userID resolves the acting user. There is no authentication layer,
// so an explicit header is honored and everything else is the single
// default user.
func userID(c *gin.Context) string {
	if v := c.GetHeader("X-User-ID"); v != "" {
		return v
	}
	return usecase.DefaultUserID
}

func watchlistStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrEmptyISIN):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrWatchlistEntryNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
