// Package synth implements the synthetic market data generator.
// It produces plausible-looking, internally consistent but non-authoritative
// bond market data on demand. There is no external data source: every value
// comes from parametric formulas plus bounded random draws.
package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
)

// Sectors は生成対象となるセクターの固定リストです。
var Sectors = []string{"Government", "Corporate IG", "Corporate HY", "Municipal", "Agency", "Sovereign"}

// Ratings は信用格付けの固定リストです（高格付けから低格付けの順）。
var Ratings = []string{"AAA", "AA+", "AA", "AA-", "A+", "A", "A-", "BBB+", "BBB", "BBB-"}

// Currencies は生成対象となる通貨コードの固定リストです。
var Currencies = []string{"USD", "EUR", "GBP", "JPY", "CHF"}

// issueSizes is the fixed discrete set of round issue amounts.
var issueSizes = []float64{500_000_000, 1_000_000_000, 2_000_000_000, 5_000_000_000}

// curveTenors is the fixed tenor set in years, ascending.
var curveTenors = []float64{0.25, 0.5, 1, 2, 3, 5, 7, 10, 15, 20, 30}

// Base rate tables per curve shape. USD selects the high-rate shape,
// every other currency degrades to the low-rate shape.
var (
	usdBaseRates   = []float64{3.5, 3.7, 3.9, 4.0, 4.1, 4.2, 4.3, 4.4, 4.5, 4.6, 4.7}
	otherBaseRates = []float64{2.5, 2.7, 2.9, 3.0, 3.1, 3.2, 3.3, 3.4, 3.5, 3.6, 3.7}
)

var (
	// ErrNegativeCount is returned when a negative bond count is requested.
	ErrNegativeCount = errors.New("bond count must not be negative")

	// ErrInvalidDays is returned when a historical window of less than one day is requested.
	ErrInvalidDays = errors.New("historical window must be at least one day")
)

// Generator is the synthetic market data source. It owns an explicit,
// seedable random source so tests can fix the seed for deterministic output.
// All methods are safe for concurrent use; the internal rand.Rand and the
// ISIN sequence counter are guarded by a mutex.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	seq int // next sequential ISIN index, restarts at zero per Generator

	now func() time.Time // injectable clock for tests
}

// NewGenerator creates a Generator seeded with the given value.
// A seed of 0 falls back to the current time, giving stochastic output.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// GenerateBonds は count 件の債券スナップショットを生成します。
// count が負の場合は ErrNegativeCount を返します。生成は常に成功し、
// 各レコードの全フィールドは1パスで確定します（部分生成はありません）。
func (g *Generator) GenerateBonds(count int) ([]entity.Bond, error) {
	if count < 0 {
		return nil, fmt.Errorf("generate bonds: %w", ErrNegativeCount)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	base := g.now()
	bonds := make([]entity.Bond, 0, count)

	for i := 0; i < count; i++ {
		maturityYears := 1 + g.rng.Intn(30)
		maturity := base.AddDate(0, 0, 365*maturityYears)

		sector := Sectors[g.rng.Intn(len(Sectors))]
		rating := Ratings[g.rng.Intn(len(Ratings))]

		// Base yield rises with maturity, plus a rating-dependent premium.
		baseYield := 2.0 + float64(maturityYears)*0.1
		if strings.Contains(rating, "BBB") {
			baseYield += 1.5
		} else if strings.Contains(rating, "A") {
			baseYield += 0.5
		}
		yieldValue := round2(baseYield + g.uniform(-0.5, 0.5))

		coupon := round2(g.uniform(1, 6))

		bonds = append(bonds, entity.Bond{
			ISIN:       fmt.Sprintf("XS%010d", g.seq),
			Ticker:     fmt.Sprintf("%s %.2f%% %d", strings.ToUpper(sector[:3]), coupon, maturity.Year()),
			Coupon:     coupon,
			Maturity:   maturity,
			YieldValue: yieldValue,
			Spread:     10 + g.rng.Intn(291),
			Duration:   round1(float64(maturityYears)*0.85 + g.uniform(-1, 1)),
			Rating:     rating,
			Sector:     sector,
			Currency:   Currencies[g.rng.Intn(len(Currencies))],
			Price:      100 - (yieldValue-3)*5 + g.uniform(-2, 2),
			IssueSize:  issueSizes[g.rng.Intn(len(issueSizes))],
		})
		g.seq++
	}

	return bonds, nil
}

// GenerateHistoricalSeries は指定した銘柄の日次ヒストリカル系列を生成します。
// 系列は本日を終端とする連続した days 日分で、利回りとスプレッドは
// 上下限のないランダムウォークです（長期では任意にドリフトし得ます）。
// isin は不透明なラベルとして扱われ、レジストリとの照合はされません。
func (g *Generator) GenerateHistoricalSeries(isin string, days int) ([]entity.HistoricalPoint, error) {
	if days < 1 {
		return nil, fmt.Errorf("generate historical series for %q: %w", isin, ErrInvalidDays)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	end := g.now().Truncate(24 * time.Hour)
	yieldValue := 3.5
	spreadBp := 50

	points := make([]entity.HistoricalPoint, 0, days)
	for i := 0; i < days; i++ {
		yieldValue += g.uniform(-0.05, 0.05)
		spreadBp += g.rng.Intn(5) - 2

		y := round3(yieldValue)
		points = append(points, entity.HistoricalPoint{
			Date:       end.AddDate(0, 0, i-days+1),
			YieldValue: y,
			Spread:     spreadBp,
			Price:      100 - (y-3)*5,
		})
	}

	return points, nil
}

// GenerateYieldCurve はひとつの通貨のイールドカーブを生成します。
// USD は高金利シェイプ、それ以外の通貨（未知の通貨コードを含む）は
// 低金利シェイプにフォールバックします。エラーにはなりません。
func (g *Generator) GenerateYieldCurve(currency string) entity.YieldCurve {
	base := otherBaseRates
	if currency == "USD" {
		base = usdBaseRates
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	tenors := make([]float64, len(curveTenors))
	copy(tenors, curveTenors)

	yields := make([]float64, len(base))
	for i, rate := range base {
		yields[i] = round3(rate + g.uniform(-0.1, 0.1))
	}

	return entity.YieldCurve{Currency: currency, Tenors: tenors, Yields: yields}
}

// StreamTick samples one push-update event for the live feed: a random
// instrument reference with a freshly drawn yield and spread.
func (g *Generator) StreamTick() entity.StreamTick {
	g.mu.Lock()
	defer g.mu.Unlock()

	return entity.StreamTick{
		Type:      "price_update",
		ISIN:      fmt.Sprintf("XS%010d", g.rng.Intn(50)),
		Yield:     round3(g.uniform(2, 6)),
		Spread:    10 + g.rng.Intn(291),
		Timestamp: g.now().Format(time.RFC3339),
	}
}

// uniform returns a random float64 in [lo, hi). Callers must hold g.mu.
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
