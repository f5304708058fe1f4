package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i-iangurazov/roksosh/models"
)

func TestSubmitOrder_PostsProjection(t *testing.T) {
	var got models.ManualOrder
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/manual-order", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	items := []models.OrderItem{
		{ID: "p1", Count: 2, ColorID: "c1", SizeID: "s1"},
		{ID: "p2", Count: 1},
	}
	form := models.CheckoutRequest{
		FullName: "Aida B",
		Phone:    "+996 555 123 456",
		Address:  "Bishkek",
	}

	err := NewOrderService(server.URL).SubmitOrder(context.Background(), form, items)

	require.NoError(t, err)
	assert.Equal(t, form.FullName, got.FullName)
	assert.Equal(t, form.Phone, got.Phone)
	assert.Equal(t, form.Address, got.Address)
	assert.Equal(t, items, got.Products)
}

func TestSubmitOrder_BackendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewOrderService(server.URL).SubmitOrder(context.Background(), models.CheckoutRequest{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSubmitOrder_BackendUnreachable(t *testing.T) {
	err := NewOrderService("http://127.0.0.1:1").SubmitOrder(context.Background(), models.CheckoutRequest{}, nil)
	assert.Error(t, err)
}
