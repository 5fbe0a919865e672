package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omarj21/solana-actions-backend/config"
	"github.com/omarj21/solana-actions-backend/controllers"
	"github.com/omarj21/solana-actions-backend/marketplace"
	"github.com/omarj21/solana-actions-backend/services"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	config.Init()
	cfg := config.Get()

	client, err := marketplace.NewClient(
		cfg.Marketplace.Url,
		cfg.Marketplace.ApiKey,
		cfg.Marketplace.Timeout,
		cfg.Marketplace.RetryMax,
		cfg.Marketplace.Debug,
	)
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Unable to create marketplace client")
	}

	service := services.NewActionService(client, client, cfg.ProductLabel, cfg.BasePath)
	controller := controllers.NewActionController(service)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	group := router.Group(cfg.BasePath)
	group.GET("/:mint", controller.GetNft)
	group.GET("/:mint/:amount", controller.GetNftWithAmount)
	group.POST("/:mint", controller.PostBuy)
	group.POST("/:mint/:amount", controller.PostBid)

	// Action clients are browser wallets on other origins.
	handler := cors.AllowAll().Handler(router)

	zap.L().With(zap.String("port", cfg.Port)).Info("Starting actions server")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		zap.L().With(zap.Error(err)).Fatal("Server stopped")
	}
}
