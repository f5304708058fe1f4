// Package catalog issues product queries against the backend storefront API.
// The coordinator never returns an error to its callers: every failure mode
// (network, bad payload, cancellation) normalizes to an empty list plus a
// low-severity log line.
package catalog

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/i-iangurazov/roksosh/filterquery"
	"github.com/i-iangurazov/roksosh/models"
)

// maxResponseBytes caps how much of a product response is read.
const maxResponseBytes = 8 << 20

// Coordinator fetches product lists. In interactive use at most one request
// is logically current: issuing a new one cancels the previous in-flight
// request, and a generation counter decides whose result may be applied —
// last-issued wins, regardless of wire completion order.
type Coordinator struct {
	baseURL string
	client  *http.Client

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

type Option func(*Coordinator)

// WithHTTPClient overrides the underlying client (tests, custom transports).
func WithHTTPClient(client *http.Client) Option {
	return func(c *Coordinator) { c.client = client }
}

// NewCoordinator targets the backend API root, e.g.
// https://api.example.com/api/v1/store.
func NewCoordinator(baseURL string, opts ...Option) *Coordinator {
	c := &Coordinator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues an interactive product query, cancelling any previous one
// still in flight. current reports whether this request was still the latest
// when it settled; stale results must be discarded by the caller.
func (c *Coordinator) Fetch(ctx context.Context, q models.FilterQuery) (products []models.Product, current bool) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	gen := c.gen
	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	products = c.do(reqCtx, q)

	c.mu.Lock()
	current = gen == c.gen
	if current {
		c.cancel = nil
	}
	c.mu.Unlock()
	cancel()

	if !current {
		return nil, false
	}
	return products, true
}

// FetchOnce issues a standalone query with no single-flight bookkeeping (the
// server-rendered pass, ops tooling).
func (c *Coordinator) FetchOnce(ctx context.Context, q models.FilterQuery) []models.Product {
	return c.do(ctx, q)
}

// CancelCurrent aborts the in-flight request, if any, and invalidates its
// generation so a late settlement reports stale.
func (c *Coordinator) CancelCurrent() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
}

func (c *Coordinator) do(ctx context.Context, q models.FilterQuery) []models.Product {
	target := c.baseURL + "/products"
	if encoded := filterquery.WireValues(q).Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		log.Printf("[catalog] bad request for %s: %v", target, err)
		return []models.Product{}
	}

	res, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// superseded by a newer request, not an error
			return []models.Product{}
		}
		log.Printf("[catalog] products fetch failed: %v", err)
		return []models.Product{}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Printf("[catalog] products fetch returned %d", res.StatusCode)
		return []models.Product{}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		log.Printf("[catalog] reading products response failed: %v", err)
		return []models.Product{}
	}

	return normalizeProducts(body)
}
