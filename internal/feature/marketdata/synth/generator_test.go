package synth

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decimalsAtMost は値が小数第n位までで表現できることを検証します。
func decimalsAtMost(t *testing.T, v float64, n int) {
	t.Helper()
	scale := math.Pow(10, float64(n))
	assert.InDelta(t, v*scale, math.Round(v*scale), 1e-6, "value %v has more than %d decimals", v, n)
}

// TestGenerator_GenerateBonds_CountAndRanges は件数保証と
// 各フィールドのレンジ不変条件を検証します。
func TestGenerator_GenerateBonds_CountAndRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		count int
	}{
		{name: "zero records", count: 0},
		{name: "single record", count: 1},
		{name: "typical batch", count: 50},
		{name: "large batch", count: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := NewGenerator(42)
			bonds, err := g.GenerateBonds(tt.count)
			require.NoError(t, err)
			require.Len(t, bonds, tt.count)

			now := time.Now()
			for _, b := range bonds {
				assert.GreaterOrEqual(t, b.YieldValue, 0.0)
				assert.GreaterOrEqual(t, b.Spread, 10)
				assert.LessOrEqual(t, b.Spread, 300)
				assert.GreaterOrEqual(t, b.Duration, 0.85*1-1)
				assert.LessOrEqual(t, b.Duration, 0.85*30+1)
				assert.True(t, b.Maturity.After(now), "maturity %v not in the future", b.Maturity)
				assert.Contains(t, Ratings, b.Rating)
				assert.Contains(t, Sectors, b.Sector)
				assert.Contains(t, Currencies, b.Currency)
				assert.Contains(t, []float64{5e8, 1e9, 2e9, 5e9}, b.IssueSize)
				assert.Regexp(t, `^XS\d{10}$`, b.ISIN)
				decimalsAtMost(t, b.YieldValue, 2)
				decimalsAtMost(t, b.Coupon, 2)
				decimalsAtMost(t, b.Duration, 1)
			}
		})
	}
}

// TestGenerator_GenerateBonds_NegativeCount は負の件数が
// バリデーションエラーになることを検証します。
func TestGenerator_GenerateBonds_NegativeCount(t *testing.T) {
	t.Parallel()

	g := NewGenerator(1)
	bonds, err := g.GenerateBonds(-1)

	assert.Nil(t, bonds)
	assert.ErrorIs(t, err, ErrNegativeCount)
}

// TestGenerator_GenerateBonds_SequentialISIN はISINが連番で採番され、
// 呼び出しをまたいで継続することを検証します。
func TestGenerator_GenerateBonds_SequentialISIN(t *testing.T) {
	t.Parallel()

	g := NewGenerator(7)

	first, err := g.GenerateBonds(3)
	require.NoError(t, err)
	second, err := g.GenerateBonds(2)
	require.NoError(t, err)

	assert.Equal(t, "XS0000000000", first[0].ISIN)
	assert.Equal(t, "XS0000000001", first[1].ISIN)
	assert.Equal(t, "XS0000000002", first[2].ISIN)
	assert.Equal(t, "XS0000000003", second[0].ISIN)
	assert.Equal(t, "XS0000000004", second[1].ISIN)
}

// TestGenerator_GenerateBonds_Deterministic は同一シードから同一の
// バッチが得られることを検証します。
func TestGenerator_GenerateBonds_Deterministic(t *testing.T) {
	t.Parallel()

	g1 := NewGenerator(123)
	g2 := NewGenerator(123)
	// 固定クロックで満期日も一致させる
	fixed := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	g1.now = func() time.Time { return fixed }
	g2.now = func() time.Time { return fixed }

	b1, err := g1.GenerateBonds(20)
	require.NoError(t, err)
	b2, err := g2.GenerateBonds(20)
	require.NoError(t, err)

	assert.Equal(t, b1, b2)
}

// TestGenerator_GenerateHistoricalSeries はヒストリカル系列の長さ、
// 日付の連続性、価格の恒等式を検証します。
func TestGenerator_GenerateHistoricalSeries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		days int
	}{
		{name: "single day", days: 1},
		{name: "one month", days: 30},
		{name: "one year", days: 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := NewGenerator(99)
			points, err := g.GenerateHistoricalSeries("XS0000000001", tt.days)
			require.NoError(t, err)
			require.Len(t, points, tt.days)

			for i, p := range points {
				// price = 100 - (yield - 3) * 5 が厳密に成り立つ
				assert.Equal(t, 100-(p.YieldValue-3)*5, p.Price)
				decimalsAtMost(t, p.YieldValue, 3)

				if i > 0 {
					// 日付は厳密に1日刻みで昇順
					assert.Equal(t, points[i-1].Date.AddDate(0, 0, 1), p.Date)
				}
			}
		})
	}
}

// TestGenerator_GenerateHistoricalSeries_InvalidDays は1日未満の
// ウィンドウがバリデーションエラーになることを検証します。
func TestGenerator_GenerateHistoricalSeries_InvalidDays(t *testing.T) {
	t.Parallel()

	g := NewGenerator(1)

	for _, days := range []int{0, -5} {
		points, err := g.GenerateHistoricalSeries("XS0000000001", days)
		assert.Nil(t, points)
		assert.ErrorIs(t, err, ErrInvalidDays)
	}
}

// TestGenerator_GenerateYieldCurve はカーブの形状と丸め、
// USDと他通貨のシェイプ分離を検証します。
func TestGenerator_GenerateYieldCurve(t *testing.T) {
	t.Parallel()

	g := NewGenerator(5)

	usd := g.GenerateYieldCurve("USD")
	require.Len(t, usd.Tenors, 11)
	require.Len(t, usd.Yields, 11)
	assert.True(t, slices.IsSorted(usd.Tenors), "tenors must be ascending")
	assert.Equal(t, []float64{0.25, 0.5, 1, 2, 3, 5, 7, 10, 15, 20, 30}, usd.Tenors)
	for _, y := range usd.Yields {
		decimalsAtMost(t, y, 3)
	}

	// 未知の通貨コードはエラーにならず低金利シェイプへフォールバック
	xyz := g.GenerateYieldCurve("XYZ")
	require.Len(t, xyz.Tenors, 11)
	require.Len(t, xyz.Yields, 11)

	// ノイズ込みでも繰り返しサンプルすれば平均差は正になる
	// （高金利シェイプと低金利シェイプは全年限で1%離れている）
	var usdSum, eurSum float64
	const draws = 200
	for i := 0; i < draws; i++ {
		for _, y := range g.GenerateYieldCurve("USD").Yields {
			usdSum += y
		}
		for _, y := range g.GenerateYieldCurve("EUR").Yields {
			eurSum += y
		}
	}
	assert.Greater(t, usdSum/draws, eurSum/draws, "USD curve mean must exceed non-USD curve mean")
}

// TestGenerator_StreamTick はライブフィードのサンプルイベントを検証します。
func TestGenerator_StreamTick(t *testing.T) {
	t.Parallel()

	g := NewGenerator(11)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	tick := g.StreamTick()

	assert.Equal(t, "price_update", tick.Type)
	assert.Regexp(t, `^XS\d{10}$`, tick.ISIN)
	assert.GreaterOrEqual(t, tick.Yield, 2.0)
	assert.Less(t, tick.Yield, 6.001)
	assert.GreaterOrEqual(t, tick.Spread, 10)
	assert.LessOrEqual(t, tick.Spread, 300)
	assert.Equal(t, fixed.Format(time.RFC3339), tick.Timestamp)
}

// TestGenerator_ConcurrentUse は複数goroutineからの同時呼び出しで
// データレースなく動作することを検証します（-race で検出）。
func TestGenerator_ConcurrentUse(t *testing.T) {
	t.Parallel()

	g := NewGenerator(3)
	done := make(chan struct{})

	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				_, _ = g.GenerateBonds(5)
				_, _ = g.GenerateHistoricalSeries("XS0000000001", 10)
				_ = g.GenerateYieldCurve("USD")
				_ = g.StreamTick()
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}
