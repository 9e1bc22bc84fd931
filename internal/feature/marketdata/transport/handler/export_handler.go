package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/transport/http/dto"
)

// ExportHandler は債券スナップショットのCSVダウンロードを処理します。
type ExportHandler struct {
	uc BondsUsecase
}

// NewExportHandler は指定されたusecaseでExportHandlerの新しいインスタンスを生成します。
func NewExportHandler(uc BondsUsecase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Bonds は保存済みの最新スナップショットをCSVとして返します。
// 読み取り時の再生成は行わないため、直前にダッシュボードが表示していた
// テーブルと同じ内容がダウンロードされます。
//
// エンドポイント例:
// GET /api/export/bonds
func (h *ExportHandler) Bonds(c *gin.Context) {
	bonds, err := h.uc.StoredBonds(c.Request.Context(), 0)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename=bonds_export.csv`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"isin", "ticker", "sector", "rating", "maturity", "yield_value", "spread", "duration", "price"})
	for _, b := range bonds {
		_ = w.Write([]string{
			b.ISIN,
			b.Ticker,
			b.Sector,
			b.Rating,
			b.Maturity.UTC().Format("2006-01-02"),
			fmt.Sprintf("%.2f", b.YieldValue),
			strconv.Itoa(b.Spread),
			fmt.Sprintf("%.1f", b.Duration),
			fmt.Sprintf("%.2f", b.Price),
		})
	}
	w.Flush()
}
