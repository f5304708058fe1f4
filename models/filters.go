// models/filters.go
package models

// FilterQuery is the structured form of the storefront's product filter
// state. Multi-valued fields behave as sets; PriceSort and PriceRange are
// exclusive single selects. Treat values as immutable — the filterquery
// helpers return updated copies.
type FilterQuery struct {
	CategoryID string   `json:"categoryId,omitempty"`
	ColorIDs   []string `json:"colorId,omitempty"`
	SizeIDs    []string `json:"sizeId,omitempty"`
	Brands     []string `json:"brand,omitempty"`

	PriceSort  string   `json:"priceSort,omitempty"`  // "asc" | "desc"
	PriceRange string   `json:"priceRange,omitempty"` // named range id
	MinPrice   *float64 `json:"minPrice,omitempty"`
	MaxPrice   *float64 `json:"maxPrice,omitempty"`

	SearchTerm string `json:"searchTerm,omitempty"`
	IsFeatured bool   `json:"isFeatured,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

// PriceRange is a named price bracket offered by the category page. Selecting
// one pins MinPrice/MaxPrice together with the id.
type PriceRange struct {
	ID  string
	Min *float64
	Max *float64
}

func priceVal(v float64) *float64 { return &v }

// PriceRanges lists the storefront's fixed price brackets.
var PriceRanges = []PriceRange{
	{ID: "under-3k", Max: priceVal(3000)},
	{ID: "3k-6k", Min: priceVal(3000), Max: priceVal(6000)},
	{ID: "6k-10k", Min: priceVal(6000), Max: priceVal(10000)},
	{ID: "10k-plus", Min: priceVal(10000)},
}

func PriceRangeByID(id string) (PriceRange, bool) {
	for _, r := range PriceRanges {
		if r.ID == id {
			return r, true
		}
	}
	return PriceRange{}, false
}
