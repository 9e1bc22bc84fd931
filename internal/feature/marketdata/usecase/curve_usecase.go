package usecase

import (
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
)

// DefaultCurveCurrencies はダッシュボードに表示するカーブのデフォルト通貨です。
var DefaultCurveCurrencies = []string{"USD", "EUR"}

// CurveSource abstracts the synthetic generator for yield curves.
type CurveSource interface {
	GenerateYieldCurve(currency string) entity.YieldCurve
}

// CurveUsecase はイールドカーブ取得のユースケースを定義します。
type CurveUsecase struct {
	source CurveSource
}

// NewCurveUsecase は新しい CurveUsecase を作成します。
func NewCurveUsecase(source CurveSource) *CurveUsecase {
	return &CurveUsecase{source: source}
}

// GetCurves returns one freshly sampled curve per requested currency.
// Unknown currency codes degrade to the low-rate curve shape instead of
// erroring. An empty currency list falls back to DefaultCurveCurrencies.
// Curve sampling is pure computation, so no context is taken.
func (u *CurveUsecase) GetCurves(currencies []string) map[string]entity.YieldCurve {
	if len(currencies) == 0 {
		currencies = DefaultCurveCurrencies
	}

	curves := make(map[string]entity.YieldCurve, len(currencies))
	for _, cur := range currencies {
		curves[cur] = u.source.GenerateYieldCurve(cur)
	}
	return curves
}
