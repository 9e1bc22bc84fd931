package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
)

// TickSource produces one fresh push-update sample per call.
type TickSource interface {
	StreamTick() entity.StreamTick
}

// StreamHandler はSSE形式のライブ更新フィードを処理します。
// 配信はベストエフォートで、キューやバックログは持ちません。
type StreamHandler struct {
	source   TickSource
	interval time.Duration
}

// NewStreamHandler creates a StreamHandler emitting one event per interval.
// A non-positive interval falls back to 5 seconds.
func NewStreamHandler(source TickSource, interval time.Duration) *StreamHandler {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &StreamHandler{source: source, interval: interval}
}

// Stream は一定間隔ごとにランダムな価格更新イベントを1件ずつ送信します。
// クライアントの切断（コンテキストのキャンセル）で停止します。
//
// エンドポイント例:
// GET /api/stream
func (h *StreamHandler) Stream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	// 接続直後に1件送ってからインターバル配信に入る
	c.SSEvent("message", h.source.StreamTick())
	c.Writer.Flush()

	for {
		select {
		case <-ticker.C:
			c.SSEvent("message", h.source.StreamTick())
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
