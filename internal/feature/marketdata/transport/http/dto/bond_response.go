// Package dto defines data transfer objects for the marketdata HTTP API.
package dto

// BondItem は債券1件のレスポンスDTOです。フィールド名は
// ダッシュボードのJavaScriptが期待する snake_case に合わせています。
type BondItem struct {
	ISIN       string  `json:"isin"`        // 銘柄コード
	Ticker     string  `json:"ticker"`      // 表示用ラベル
	Coupon     float64 `json:"coupon"`      // クーポン（%）
	Maturity   string  `json:"maturity"`    // 償還日（YYYY-MM-DD）
	YieldValue float64 `json:"yield_value"` // 利回り（%）
	Spread     int     `json:"spread"`      // スプレッド（bps）
	Duration   float64 `json:"duration"`    // デュレーション（年）
	Rating     string  `json:"rating"`      // 格付け
	Sector     string  `json:"sector"`      // セクター
	Currency   string  `json:"currency"`    // 通貨
	Price      float64 `json:"price"`       // 価格
	IssueSize  float64 `json:"issue_size"`  // 発行額
}

// BondsResponse は債券一覧のレスポンスDTOです。
type BondsResponse struct {
	Bonds []BondItem `json:"bonds"`
}

// ErrorResponse is the common error payload for the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
