package entity

import "time"

// HistoricalPoint is one day's observation for a single instrument.
// Price is a deterministic function of yield (100 - (yield-3)*5),
// there is no independent price noise in the historical walk.
type HistoricalPoint struct {
	Date       time.Time // Observation date (calendar day granularity)
	YieldValue float64   // Yield in percent, rounded to 3 decimals
	Spread     int       // Spread in basis points
	Price      float64   // Derived price quote
}
