package catalog

import (
	"encoding/json"
	"log"

	"github.com/i-iangurazov/roksosh/models"
)

// normalizeProducts flattens the shapes the backend is known to answer with:
// a bare array, { products: [...] }, or { data: [...] }. Anything else
// normalizes to an empty list. Element order is preserved.
func normalizeProducts(body []byte) []models.Product {
	var list []models.Product
	if err := json.Unmarshal(body, &list); err == nil {
		if list == nil {
			return []models.Product{}
		}
		return list
	}

	var envelope struct {
		Products json.RawMessage `json:"products"`
		Data     json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Printf("[catalog] unrecognized products payload: %v", err)
		return []models.Product{}
	}

	for _, raw := range []json.RawMessage{envelope.Products, envelope.Data} {
		if len(raw) == 0 {
			continue
		}
		list = nil
		if err := json.Unmarshal(raw, &list); err == nil && list != nil {
			return list
		}
	}

	log.Printf("[catalog] products payload carried no product list")
	return []models.Product{}
}
