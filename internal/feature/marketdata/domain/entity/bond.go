// Package entity defines the domain models for the marketdata feature.
package entity

import "time"

// Bond represents one fixed-income instrument snapshot.
// All values are synthetic: they are produced by the in-process generator
// and carry no relation to real market instruments.
type Bond struct {
	ISIN       string    // Synthetic ISIN (e.g., "XS0000000042")
	Ticker     string    // Display label (e.g., "GOV 2.50% 2031")
	Coupon     float64   // Coupon in percent
	Maturity   time.Time // Maturity date, always in the future at generation time
	YieldValue float64   // Yield in percent, rounded to 2 decimals
	Spread     int       // Spread over benchmark in basis points
	Duration   float64   // Approximate duration in years, rounded to 1 decimal
	Rating     string    // Credit rating from the fixed set (AAA .. BBB-)
	Sector     string    // Sector from the fixed set
	Currency   string    // Currency code from the fixed set
	Price      float64   // Price quote, nominally near 100
	IssueSize  float64   // Issue size in currency units (round amounts)
}
