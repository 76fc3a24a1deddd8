package storefront_routes

import (
	"github.com/Leafline-Dispensary/leafline-storefront-backend/controllers/storefront/cart_controller"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/controllers/storefront/filter_controller"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/controllers/storefront/product_controller"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/controllers/storefront/search_controller"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/controllers/storefront/store_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", product_controller.GetProducts) // List with filters
		products.GET("/:id", product_controller.GetProductByID)
	}

	store.GET("/filters/metadata", filter_controller.GetFilterMetadata)

	// Natural-language search
	store.POST("/search", search_controller.Search)

	// Cart handoff to the POS
	store.POST("/carts", cart_controller.CreateCart)

	// Store locations
	store.GET("/locations", store_controller.GetStores)
}
