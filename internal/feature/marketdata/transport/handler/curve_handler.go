package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/transport/http/dto"
)

// CurveUsecase はイールドカーブ取得のユースケースインターフェースを定義します。
type CurveUsecase interface {
	GetCurves(currencies []string) map[string]entity.YieldCurve
}

// CurveHandler はイールドカーブのHTTPリクエストを処理します。
type CurveHandler struct {
	uc CurveUsecase
}

// NewCurveHandler は指定されたusecaseでCurveHandlerの新しいインスタンスを生成します。
func NewCurveHandler(uc CurveUsecase) *CurveHandler {
	return &CurveHandler{uc: uc}
}

// Get は通貨ごとのイールドカーブをJSONで返します。未知の通貨コードは
// エラーにならず低金利シェイプのカーブが返ります。
//
// エンドポイント例:
// GET /api/yield-curve?currencies=USD,EUR
func (h *CurveHandler) Get(c *gin.Context) {
	var currencies []string
	if raw := c.Query("currencies"); raw != "" {
		for _, cur := range strings.Split(raw, ",") {
			if cur = strings.TrimSpace(cur); cur != "" {
				currencies = append(currencies, cur)
			}
		}
	}

	curves := h.uc.GetCurves(currencies)

	out := make(map[string]dto.CurveResponse, len(curves))
	for cur, curve := range curves {
		out[cur] = dto.CurveResponse{Tenors: curve.Tenors, Yields: curve.Yields}
	}

	c.JSON(http.StatusOK, out)
}
