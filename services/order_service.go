package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/i-iangurazov/roksosh/models"
)

// OrderService submits manual orders to the backend. The payload is the cart
// snapshot projection plus the validated checkout form.
type OrderService struct {
	baseURL string
	client  *http.Client
}

// NewOrderService creates a new order service targeting the backend API root.
func NewOrderService(baseURL string) *OrderService {
	return &OrderService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// WithHTTPClient overrides the underlying client (tests).
func (s *OrderService) WithHTTPClient(client *http.Client) *OrderService {
	s.client = client
	return s
}

// SubmitOrder posts the order. Unlike catalog reads this is allowed to fail
// loudly — the caller maps the error to a user-facing message.
func (s *OrderService) SubmitOrder(ctx context.Context, form models.CheckoutRequest, items []models.OrderItem) error {
	order := models.ManualOrder{
		FullName: form.FullName,
		Phone:    form.Phone,
		Address:  form.Address,
		Products: items,
	}

	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/manual-order", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit order: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("submit order: backend returned %d", res.StatusCode)
	}

	log.Printf("[orders] submitted order with %d line(s)", len(items))
	return nil
}
