package rest

import (
	"net/http"
	"path/filepath"

	"github.com/Gunvolt24/tma_shop/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const cartPath = "/api/cart"

// NewRouter — маршруты API. otelServiceName пустой — без otelgin.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.FrameOptions())
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	// В NoMethod работают только глобальные middleware: заголовки /api/cart ставим здесь.
	r.NoMethod(func(c *gin.Context) {
		if c.Request.URL.Path == cartPath {
			httpx.SetNoCache(c)
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/storefront", h.storefront)
	r.POST(cartPath, httpx.NoCache(), h.cart)
	api.GET("/products", h.products)

	session := api.Group("/session", h.telegramAuth())
	session.GET("/cart", h.getSessionCart)
	session.PUT("/cart", h.putSessionCart)
	session.DELETE("/cart", h.deleteSessionCart)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}
