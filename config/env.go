package config

import (
	"context"
	"log"
	"os"
	"time"
)

var (
	// APIBaseURL is the root of the backend storefront API, e.g.
	// https://api.example.com/api/v1/store. The engine only ever consumes
	// this API; it owns no catalog data itself.
	APIBaseURL string

	// Port the storefront engine listens on.
	Port string

	// CartFilePath holds the on-device cart snapshot when Redis is not
	// configured.
	CartFilePath string

	// CartStoreKey is the Redis key (or logical record name) for the cart
	// snapshot.
	CartStoreKey string
)

func LoadEnv() {
	APIBaseURL = getEnv("API_URL", "http://localhost:8081/api/v1/store")
	Port = getEnv("PORT", "8080")
	CartFilePath = getEnv("CART_FILE", "data/cart-store.json")
	CartStoreKey = getEnv("CART_STORE_KEY", "cart-store")

	if os.Getenv("API_URL") == "" {
		log.Println("⚠️  API_URL not set, using local backend:", APIBaseURL)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// WithTimeout returns a context with a 10s timeout for outbound calls
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
