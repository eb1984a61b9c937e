package server

import (
	handler "slot-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	productService handler.ProductServiceInterface,
	slotService handler.SlotServiceInterface,
	bidService handler.BidServiceInterface,
	resultService handler.ResultServiceInterface,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	productHandler := handler.NewProductHandler(productService)
	slotHandler := handler.NewSlotHandler(slotService)
	bidHandler := handler.NewBidHandler(bidService)
	resultHandler := handler.NewResultHandler(resultService)

	products := router.Group("/products")
	{
		products.POST("", productHandler.CreateProductHandler)
		products.GET("", productHandler.ListProductsHandler)
		products.GET("/:product_id", productHandler.GetProductHandler)
		products.PATCH("/:product_id", productHandler.UpdateProductHandler)
		products.DELETE("/:product_id", productHandler.DeleteProductHandler)
	}

	slots := router.Group("/slots")
	{
		slots.POST("/:product_id", slotHandler.CreateSlotsHandler)
		slots.GET("/:product_id", slotHandler.GetProductSlotsHandler)
		slots.PUT("/:product_id", slotHandler.UpdateSlotsHandler)
		slots.DELETE("/:product_id", slotHandler.DeleteSlotsHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", bidHandler.PlaceBidHandler)
		bids.POST("/withdraw", bidHandler.WithdrawBidHandler)
		bids.GET("/leaderboard/:product_id", bidHandler.GetLeaderboardHandler)
		bids.GET("/slots/:product_id", bidHandler.GetSlotStatusHandler)
	}

	results := router.Group("/results")
	{
		results.POST("", resultHandler.DeclareResultHandler)
		results.GET("/:product_id", resultHandler.GetResultHandler)
	}

	return router
}
