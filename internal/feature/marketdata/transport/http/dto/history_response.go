package dto

// HistoryResponse はヒストリカル系列のレスポンスDTOです。
// チャートライブラリ向けに並行配列（同じ長さのスライス）で返します。
type HistoryResponse struct {
	Dates   []string  `json:"dates"`   // 日付（YYYY-MM-DD、昇順）
	Yields  []float64 `json:"yields"`  // 利回り（%）
	Spreads []int     `json:"spreads"` // スプレッド（bps）
	Prices  []float64 `json:"prices"`  // 価格
}

// CurveResponse はひとつの通貨のイールドカーブのレスポンスDTOです。
type CurveResponse struct {
	Tenors []float64 `json:"tenors"` // 年限（年、昇順）
	Yields []float64 `json:"yields"` // 利回り（%）
}
