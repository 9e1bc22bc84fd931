package handler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/synth"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/transport/handler"
)

// mockHistoryUsecase はHistoryUsecaseインターフェースのモック実装です。
type mockHistoryUsecase struct {
	GetSeriesFunc func(ctx context.Context, isin string, days int) ([]entity.HistoricalPoint, error)
}

func (m *mockHistoryUsecase) GetSeries(ctx context.Context, isin string, days int) ([]entity.HistoricalPoint, error) {
	return m.GetSeriesFunc(ctx, isin, days)
}

// TestHistoryHandler_Get はGetのHTTPリクエスト/レスポンス処理をテストします。
func TestHistoryHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	day1 := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		mockGetSeries  func(ctx context.Context, isin string, days int) ([]entity.HistoricalPoint, error)
		expectedStatus int
		expectedBody   string // JSON文字列として比較
	}{
		{
			name: "success: days specified, parallel arrays returned",
			url:  "/api/historical/XS0000000001?days=2",
			mockGetSeries: func(ctx context.Context, isin string, days int) ([]entity.HistoricalPoint, error) {
				assert.Equal(t, "XS0000000001", isin)
				assert.Equal(t, 2, days)
				return []entity.HistoricalPoint{
					{Date: day1, YieldValue: 3.512, Spread: 51, Price: 97.44},
					{Date: day2, YieldValue: 3.49, Spread: 49, Price: 97.55},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"dates":["2026-08-30","2026-08-31"],"yields":[3.512,3.49],` +
				`"spreads":[51,49],"prices":[97.44,97.55]}`,
		},
		{
			name: "success: default days value",
			url:  "/api/historical/XS0000000001",
			mockGetSeries: func(ctx context.Context, isin string, days int) ([]entity.HistoricalPoint, error) {
				assert.Equal(t, 30, days) // デフォルト値
				return []entity.HistoricalPoint{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"dates":[],"yields":[],"spreads":[],"prices":[]}`,
		},
		{
			name: "failure: non-integer days",
			url:  "/api/historical/XS0000000001?days=week",
			mockGetSeries: func(ctx context.Context, isin string, days int) ([]entity.HistoricalPoint, error) {
				t.Fatal("usecase should not be called")
				return nil, nil
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"days must be an integer"}`,
		},
		{
			name: "failure: zero days maps to 400",
			url:  "/api/historical/XS0000000001?days=0",
			mockGetSeries: func(ctx context.Context, isin string, days int) ([]entity.HistoricalPoint, error) {
				return nil, synth.ErrInvalidDays
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"historical window must be at least one day"}`,
		},
		{
			name: "failure: persistence error maps to 502",
			url:  "/api/historical/XS0000000001",
			mockGetSeries: func(ctx context.Context, isin string, days int) ([]entity.HistoricalPoint, error) {
				return nil, errors.New("store history series: database is locked")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"store history series: database is locked"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockHistoryUsecase{GetSeriesFunc: tt.mockGetSeries}

			h := handler.NewHistoryHandler(mockUC)

			router := gin.New()
			router.GET("/api/historical/:isin", h.Get)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, io.NopCloser(bytes.NewReader(nil)))

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
