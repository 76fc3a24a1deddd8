// @title Leafline Storefront API
// @version 1.0
// @description Leafline Dispensary Storefront Backend API Documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/config"
	_ "github.com/Leafline-Dispensary/leafline-storefront-backend/docs"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/middleware"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/routes/learn_routes"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/routes/storefront_routes"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to the content DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// ✅ Initialize the Dispense POS client
	dispenseCfg := config.LoadDispenseConfig()
	if dispenseCfg.APIKey == "" {
		log.Fatal("❌ DISPENSE_API_KEY environment variable not set")
	}
	services.InitDispense(dispenseCfg)
	log.Println("✅ Dispense client initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(120, time.Minute))

	storefront_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	learn_routes.SetupLearnRoutes(api)
	log.Println("✅ Learn routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
