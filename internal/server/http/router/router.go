package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/shopzone/checkout/internal/metrics"
	"github.com/shopzone/checkout/internal/server/http/handlers"
	"github.com/shopzone/checkout/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CheckoutFacade, pinger handlers.Pinger, m *metrics.Metrics, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade, m)
	paymentHandler := handlers.NewPaymentHandler(facade, m)
	catalogHandler := handlers.NewCatalogHandler(facade)
	healthHandler := handlers.NewHealthHandler(pinger)

	api := engine.Group("/api")
	api.POST("/create-order", orderHandler.Create)
	api.POST("/verify-payment", paymentHandler.Verify)
	api.GET("/products", catalogHandler.List)
	api.GET("/orders", orderHandler.List)

	engine.GET("/health", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	return engine
}
