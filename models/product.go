package models

import "strings"

// Catalog entities are supplied by the backend storefront API and are never
// mutated here.

type Image struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url"`
}

type Color struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"` // hex swatch
}

type Size struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"` // "S", "M", "XL", ...
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	NameRu     string    `json:"nameRu,omitempty"`
	NameKg     string    `json:"nameKg,omitempty"`
	Brand      string    `json:"brand,omitempty"`
	Price      float64   `json:"price"`
	IsFeatured bool      `json:"isFeatured,omitempty"`
	Images     []Image   `json:"images,omitempty"`
	Colors     []Color   `json:"colors,omitempty"`
	Sizes      []Size    `json:"sizes,omitempty"`
	Category   *Category `json:"category,omitempty"`
}

// canonical apparel size order used for display sorting
var sizeOrder = []string{"XXS", "XS", "S", "M", "L", "XL", "XXL", "XXXL"}

// SizeRank returns the display position of a size value. Unknown values sort
// after the canonical ones.
func SizeRank(value string) int {
	upper := strings.ToUpper(value)
	for i, v := range sizeOrder {
		if v == upper {
			return i
		}
	}
	return len(sizeOrder)
}
