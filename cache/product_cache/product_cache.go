package product_cache

import (
	"sync"
	"time"

	"github.com/i-iangurazov/roksosh/models"
)

const TTL = 5 * time.Minute

// maxEntries bounds the cache; when it fills up the whole map is dropped
// rather than tracking per-entry recency.
const maxEntries = 256

// ── Product list cache ───────────────────────────────────────────────────────
// Keyed by the encoded filter query. Serves the non-interactive catalog pass;
// interactive search always goes to the coordinator.

type entry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	cache = map[string]entry{}
)

func Get(key string) ([]models.Product, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if e, ok := cache[key]; ok && time.Since(e.fetchedAt) < TTL {
		return e.products, true
	}
	return nil, false
}

func Set(key string, products []models.Product) {
	mu.Lock()
	defer mu.Unlock()
	if len(cache) >= maxEntries {
		cache = map[string]entry{}
	}
	cache[key] = entry{products: products, fetchedAt: time.Now()}
}

// ── Invalidate everything ────────────────────────────────────────────────────

func Invalidate() {
	mu.Lock()
	cache = map[string]entry{}
	mu.Unlock()
}
