package handler

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/safar/storefront/internal/auth"
	"github.com/safar/storefront/internal/config"
	"github.com/safar/storefront/internal/notify"
	"github.com/safar/storefront/pkg/middleware"
	"go.uber.org/zap"
)

// NewRouter wires the full HTTP surface. Catalog reads, login, health and
// order submission are public; everything administrative sits behind the
// session-token middleware.
func NewRouter(db *sql.DB, cfg *config.Config, manager *auth.Manager, notifier *notify.Dispatcher, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	orders := NewOrderHandler(db, notifier, cfg.Server.FrontendURL, logger)
	products := NewProductHandler(db, logger)
	authH := NewAuthHandler(manager, logger)
	health := NewHealthHandler(cfg)
	upload := NewUploadHandler(cfg.Storage.UploadDir, logger)

	router.Static("/uploads", cfg.Storage.UploadDir)

	api := router.Group("/api")
	{
		api.POST("/submitOrder", orders.Submit)
		api.GET("/products", products.List)
		api.POST("/login", authH.Login)
		api.GET("/health", health.Health)

		admin := api.Group("", middleware.RequireAdmin(manager))
		{
			admin.GET("/orders", orders.List)
			admin.PATCH("/orders/:orderNumber/status", orders.UpdateStatus)
			admin.POST("/products", products.Create)
			admin.PUT("/products/:id", products.Update)
			admin.DELETE("/products/:id", products.Delete)
			admin.POST("/upload", upload.Upload)
		}
	}

	return router
}
