// Package entity defines the domain models for the preferences feature.
package entity

// Preferences holds a client's bond screening preferences.
type Preferences struct {
	UserID        string
	Sectors       []string  // Preferred sectors
	DurationRange []float64 // [min, max] duration in years
	MinRating     string    // Minimum acceptable credit rating
	Currencies    []string  // Preferred currencies
}

// AlertSettings holds a client's alert thresholds and delivery channels.
type AlertSettings struct {
	UserID       string
	YieldChange  int     // Threshold in basis points
	SpreadChange int     // Threshold in basis points
	PriceChange  float64 // Threshold in percent
	Channels     AlertChannels
}

// AlertChannels selects where triggered alerts are delivered.
type AlertChannels struct {
	Email     bool
	SMS       bool
	Dashboard bool
}

// WatchlistEntry is one bond on a user's watchlist.
type WatchlistEntry struct {
	UserID string
	ISIN   string
}
