package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/i-iangurazov/roksosh/cartstore"
	"github.com/i-iangurazov/roksosh/catalog"
	"github.com/i-iangurazov/roksosh/config"
	"github.com/i-iangurazov/roksosh/middleware"
	"github.com/i-iangurazov/roksosh/routes/storefront_routes"
	"github.com/i-iangurazov/roksosh/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	config.LoadEnv()

	// Cart snapshots live in Redis when available, otherwise in a local file.
	var storage cartstore.SnapshotStorage
	if config.ConnectRedis() {
		storage = cartstore.NewRedisStorage(config.RedisClient, config.CartStoreKey)
	} else {
		storage = cartstore.NewFileStorage(config.CartFilePath)
	}

	store := cartstore.NewStore(storage, cartstore.WithNotifier(func(e cartstore.Event) {
		// the UI renders these as toasts; the engine just reports them
		log.Printf("[cart] %s %s", e.Kind, e.CartItemID)
	}))
	coordinator := catalog.NewCoordinator(config.APIBaseURL)
	orders := services.NewOrderService(config.APIBaseURL)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(120, time.Minute))
	storefront_routes.SetupStorefrontRoutes(api, coordinator, store, orders)

	log.Printf("🚀 Storefront engine listening on :%s (backend: %s)", config.Port, config.APIBaseURL)
	if err := router.Run(":" + config.Port); err != nil {
		log.Fatalf("❌ server stopped: %v", err)
	}
}
