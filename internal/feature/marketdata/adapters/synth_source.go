// Package adapters provides the marketdata feature's concrete sources and
// repository implementations.
package adapters

import (
	"context"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/synth"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/usecase"
)

// synthSource adapts the synthetic generator to the usecase source
// interfaces. The generator is pure computation, so the context is only
// forwarded where decorators (e.g., the Redis series cache) need it.
type synthSource struct {
	gen *synth.Generator
}

var (
	_ usecase.BondSource   = (*synthSource)(nil)
	_ usecase.SeriesSource = (*synthSource)(nil)
	_ usecase.CurveSource  = (*synthSource)(nil)
)

// NewSynthSource は指定されたジェネレーターを usecase から利用するための
// ソースアダプターを作成します。
func NewSynthSource(gen *synth.Generator) *synthSource {
	return &synthSource{gen: gen}
}

func (s *synthSource) GenerateBonds(count int) ([]entity.Bond, error) {
	return s.gen.GenerateBonds(count)
}

func (s *synthSource) Series(_ context.Context, isin string, days int) ([]entity.HistoricalPoint, error) {
	return s.gen.GenerateHistoricalSeries(isin, days)
}

func (s *synthSource) GenerateYieldCurve(currency string) entity.YieldCurve {
	return s.gen.GenerateYieldCurve(currency)
}
