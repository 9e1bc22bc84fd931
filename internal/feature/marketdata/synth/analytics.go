package synth

import "github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"

// TotalReturn approximates the holding-period return of a bond in percent:
// accrued coupon income plus a mock price return drawn from [-2%, +2%].
// This is a display figure, not a real total-return calculation.
func (g *Generator) TotalReturn(bond entity.Bond, holdingDays int) float64 {
	couponIncome := (bond.Coupon / 100) * (float64(holdingDays) / 365)

	g.mu.Lock()
	priceReturn := g.uniform(-0.02, 0.02)
	g.mu.Unlock()

	return round2((couponIncome + priceReturn) * 100)
}

// SpreadChange returns the spread move in basis points between a current
// and a historical observation.
func SpreadChange(current, historical int) int {
	return current - historical
}
