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

// HistoryUsecase はヒストリカル系列操作のユースケースインターフェースを定義します。
type HistoryUsecase interface {
	GetSeries(ctx context.Context, isin string, days int) ([]entity.HistoricalPoint, error)
}

// HistoryHandler はヒストリカル系列のHTTPリクエストを処理します。
type HistoryHandler struct {
	uc HistoryUsecase
}

// NewHistoryHandler は指定されたusecaseでHistoryHandlerの新しいインスタンスを生成します。
func NewHistoryHandler(uc HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// Get は指定された銘柄のヒストリカル系列を並行配列のJSONで返します。
//
// エンドポイント例:
// GET /api/historical/XS0000000001?days=30
func (h *HistoryHandler) Get(c *gin.Context) {
	isin := c.Param("isin")
	daysStr := c.DefaultQuery("days", strconv.Itoa(usecase.DefaultHistoryDays))
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "days must be an integer"})
		return
	}

	points, err := h.uc.GetSeries(c.Request.Context(), isin, days)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, synth.ErrInvalidDays) {
			status = http.StatusBadRequest
		}
		c.JSON(status, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := dto.HistoryResponse{
		Dates:   make([]string, 0, len(points)),
		Yields:  make([]float64, 0, len(points)),
		Spreads: make([]int, 0, len(points)),
		Prices:  make([]float64, 0, len(points)),
	}
	for _, p := range points {
		out.Dates = append(out.Dates, p.Date.UTC().Format("2006-01-02"))
		out.Yields = append(out.Yields, p.YieldValue)
		out.Spreads = append(out.Spreads, p.Spread)
		out.Prices = append(out.Prices, p.Price)
	}

	c.JSON(http.StatusOK, out)
}
