package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/analysestock/bond-analysis/internal/app/config"
	markethandler "github.com/analysestock/bond-analysis/internal/feature/marketdata/transport/handler"
	prefhandler "github.com/analysestock/bond-analysis/internal/feature/preferences/transport/handler"
	"github.com/analysestock/bond-analysis/internal/platform/http/handler"
	"github.com/analysestock/bond-analysis/internal/platform/web"
)

// Handlers bundles everything the router needs. All fields are required.
type Handlers struct {
	Bonds       *markethandler.BondHandler
	History     *markethandler.HistoryHandler
	Curve       *markethandler.CurveHandler
	Stream      *markethandler.StreamHandler
	Export      *markethandler.ExportHandler
	Preferences *prefhandler.PreferencesHandler
	Pages       *web.PageHandler
}

// NewRouter builds the gin engine with all routes, HTML templates and CORS.
func NewRouter(h Handlers, corsCfg config.CORS) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())

	// ブラウザのダッシュボードからのクロスオリジン呼び出しを許可
	if len(corsCfg.AllowOrigins) > 0 {
		c := cors.DefaultConfig()
		c.AllowOrigins = corsCfg.AllowOrigins
		r.Use(cors.New(c))
	} else {
		r.Use(cors.Default())
	}

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// HTMLページ
	r.GET("/", h.Pages.Dashboard)
	r.GET("/dashboard", h.Pages.Dashboard)
	r.GET("/analytics", h.Pages.Analytics)
	r.GET("/preferences", h.Pages.Preferences)

	// JSON API
	api := r.Group("/api")
	{
		api.GET("/bonds", h.Bonds.List)
		api.GET("/yield-curve", h.Curve.Get)
		api.GET("/historical/:isin", h.History.Get)
		api.GET("/export/bonds", h.Export.Bonds)
		api.GET("/stream", h.Stream.Stream)

		api.POST("/preferences", h.Preferences.SavePreferences)
		api.POST("/alerts", h.Preferences.SaveAlerts)
		api.POST("/watchlist/:isin", h.Preferences.AddWatchlist)
		api.DELETE("/watchlist/:isin", h.Preferences.RemoveWatchlist)
	}

	return r
}
