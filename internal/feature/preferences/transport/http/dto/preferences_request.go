// Package dto defines data transfer objects for the preferences HTTP API.
package dto

// PreferencesRequest はクライアント設定保存のリクエストDTOです。
type PreferencesRequest struct {
	Sectors       []string  `json:"sectors"`
	DurationRange []float64 `json:"duration_range"`
	MinRating     string    `json:"min_rating"`
	Currencies    []string  `json:"currencies"`
}

// AlertsRequest はアラート設定保存のリクエストDTOです。
type AlertsRequest struct {
	YieldChange  int           `json:"yield_change"`
	SpreadChange int           `json:"spread_change"`
	PriceChange  float64       `json:"price_change"`
	Channels     AlertChannels `json:"channels"`
}

// AlertChannels は通知チャネルの選択です。
type AlertChannels struct {
	Email     bool `json:"email"`
	SMS       bool `json:"sms"`
	Dashboard bool `json:"dashboard"`
}

// StatusResponse is the common success payload.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the common error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
