package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/transport/handler"
)

// mockTickSource はTickSourceインターフェースのモック実装です。
type mockTickSource struct {
	StreamTickFunc func() entity.StreamTick
}

func (m *mockTickSource) StreamTick() entity.StreamTick {
	return m.StreamTickFunc()
}

// TestStreamHandler_Stream はSSEヘッダーとイベント配信、切断時の停止をテストします。
func TestStreamHandler_Stream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	calls := 0
	source := &mockTickSource{
		StreamTickFunc: func() entity.StreamTick {
			calls++
			return entity.StreamTick{
				Type:      "price_update",
				ISIN:      "XS0000000003",
				Yield:     3.72,
				Spread:    140,
				Timestamp: "2026-08-31T12:00:00Z",
			}
		},
	}

	h := handler.NewStreamHandler(source, 10*time.Millisecond)

	router := gin.New()
	router.GET("/api/stream", h.Stream)

	// クライアント切断をコンテキストのキャンセルで再現する
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(80*time.Millisecond, cancel)

	w := httptest.NewRecorder()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/api/stream", nil)
	require.NoError(t, err)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))

	body := w.Body.String()
	// 接続直後の1件に加えてインターバル分のイベントが送信される
	assert.GreaterOrEqual(t, calls, 2)
	assert.GreaterOrEqual(t, strings.Count(body, "data:"), 2)
	assert.Contains(t, body, `"isin":"XS0000000003"`)
	assert.Contains(t, body, `"type":"price_update"`)
}
