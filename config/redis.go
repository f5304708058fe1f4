package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis wires the optional Redis connection used for cart snapshots
// and rate limiting. Persistence is best-effort for the storefront, so a
// missing or unreachable Redis is a warning, not a startup failure — callers
// fall back to file storage when this returns false.
func ConnectRedis() bool {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, cart snapshots use local file storage")
		return false
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL, falling back to file storage: %v", err)
		return false
	}

	RedisClient = redis.NewClient(opt)

	// test connection
	res, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		log.Printf("❌ failed to connect to Redis, falling back to file storage: %v", err)
		RedisClient = nil
		return false
	}

	log.Println("✅ Connected to Redis:", res)
	return true
}
