package entity

// YieldCurve is an ordered set of (tenor, yield) pairs for one currency.
// Tenors and Yields are parallel slices of equal length. Adjacent tenors
// carry independent noise, so the curve is not guaranteed monotonic.
type YieldCurve struct {
	Currency string    // Currency code the curve was requested for
	Tenors   []float64 // Tenors in years, ascending
	Yields   []float64 // Yields in percent, rounded to 3 decimals
}

// StreamTick is one push-update sample for the live feed.
// It references a random instrument and freshly sampled quote values;
// delivery is best effort, most recent sample wins.
type StreamTick struct {
	Type      string  `json:"type"`
	ISIN      string  `json:"isin"`
	Yield     float64 `json:"yield"`
	Spread    int     `json:"spread"`
	Timestamp string  `json:"timestamp"`
}
