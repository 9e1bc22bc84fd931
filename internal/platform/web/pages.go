package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the server-rendered dashboard pages. All market data
// on the pages is loaded client-side from the JSON API.
type PageHandler struct{}

// NewPageHandler creates a PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Dashboard はマーケット概況ページを表示します。
func (h *PageHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"Active": "dashboard"})
}

// Analytics は分析ページを表示します。
func (h *PageHandler) Analytics(c *gin.Context) {
	c.HTML(http.StatusOK, "analytics.html", gin.H{"Active": "analytics"})
}

// Preferences はクライアント設定ページを表示します。
func (h *PageHandler) Preferences(c *gin.Context) {
	c.HTML(http.StatusOK, "preferences.html", gin.H{"Active": "preferences"})
}
