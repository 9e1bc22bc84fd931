package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
)

// TestTotalReturn はクーポン収入にモックの価格リターンを加えた
// 概算リターンがレンジ内に収まることを検証します。
func TestTotalReturn(t *testing.T) {
	t.Parallel()

	g := NewGenerator(17)
	bond := entity.Bond{Coupon: 4.0}

	for i := 0; i < 100; i++ {
		got := g.TotalReturn(bond, 30)

		// クーポン収入: 4/100 * 30/365 ≈ 0.329% に ±2% のノイズ
		couponIncome := (4.0 / 100) * (30.0 / 365) * 100
		assert.GreaterOrEqual(t, got, couponIncome-2.001)
		assert.LessOrEqual(t, got, couponIncome+2.001)
		decimalsAtMost(t, got, 2)
	}
}

// TestTotalReturn_ZeroHolding は保有期間0日でノイズ成分のみに
// なることを検証します。
func TestTotalReturn_ZeroHolding(t *testing.T) {
	t.Parallel()

	g := NewGenerator(17)
	got := g.TotalReturn(entity.Bond{Coupon: 5.0}, 0)

	require.GreaterOrEqual(t, got, -2.001)
	require.LessOrEqual(t, got, 2.001)
}

// TestSpreadChange はスプレッド変化の算術を検証します。
func TestSpreadChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		current    int
		historical int
		want       int
	}{
		{name: "widening", current: 130, historical: 100, want: 30},
		{name: "tightening", current: 80, historical: 100, want: -20},
		{name: "unchanged", current: 50, historical: 50, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SpreadChange(tt.current, tt.historical))
		})
	}
}
