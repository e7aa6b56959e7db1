package handler

import (
	"crypto-wallet/internal/adapter/http/middleware"
	"crypto-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (pings the storage backend)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	walletHandler := NewWalletHandler(deps.WalletSvc)

	// API v1 routes
	v1 := r.Group("/api/v1")

	assets := v1.Group("/assets")
	{
		assets.GET("", walletHandler.ListAssets)
		assets.GET("/:id/address", walletHandler.GetAddress)
		assets.PUT("/:id/price", walletHandler.UpdatePrice)
	}

	transfers := v1.Group("/transfers")
	{
		transfers.POST("/send", walletHandler.Send)
		transfers.POST("/receive", walletHandler.Receive)
		transfers.POST("/convert", walletHandler.Convert)
	}

	v1.GET("/portfolio", walletHandler.GetPortfolio)
	v1.GET("/transactions", walletHandler.ListTransactions)

	return r
}
