// Package handler はmarketdataフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/synth"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/transport/http/dto"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/usecase"
)

// BondsUsecase は債券スナップショット操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type BondsUsecase interface {
	GetBonds(ctx context.Context, count int) ([]entity.Bond, error)
	StoredBonds(ctx context.Context, limit int) ([]entity.Bond, error)
}

// BondHandler は債券一覧のHTTPリクエストを処理します。
type BondHandler struct {
	uc BondsUsecase
}

// NewBondHandler は指定されたusecaseでBondHandlerの新しいインスタンスを生成します。
func NewBondHandler(uc BondsUsecase) *BondHandler {
	return &BondHandler{uc: uc}
}

// List は新しい債券スナップショットを生成してJSONで返します。
// 読み取りのたびに保存済みスナップショットを上書きする
// refresh-on-read 方式です。
//
// エンドポイント例:
// GET /api/bonds?count=20
func (h *BondHandler) List(c *gin.Context) {
	countStr := c.DefaultQuery("count", strconv.Itoa(usecase.DefaultBondCount))
	count, err := strconv.Atoi(countStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "count must be an integer"})
		return
	}

	bonds, err := h.uc.GetBonds(c.Request.Context(), count)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, synth.ErrNegativeCount) {
			status = http.StatusBadRequest
		}
		c.JSON(status, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.BondsResponse{Bonds: toBondItems(bonds)})
}

func toBondItems(bonds []entity.Bond) []dto.BondItem {
	out := make([]dto.BondItem, 0, len(bonds))
	for _, b := range bonds {
		out = append(out, dto.BondItem{
			ISIN:       b.ISIN,
			Ticker:     b.Ticker,
			Coupon:     b.Coupon,
			Maturity:   b.Maturity.UTC().Format("2006-01-02"),
			YieldValue: b.YieldValue,
			Spread:     b.Spread,
			Duration:   b.Duration,
			Rating:     b.Rating,
			Sector:     b.Sector,
			Currency:   b.Currency,
			Price:      b.Price,
			IssueSize:  b.IssueSize,
		})
	}
	return out
}
