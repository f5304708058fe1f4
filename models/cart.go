package models

// CartLine is one entry of the cart: a product snapshot plus the resolved
// variant selection. CartItemID is the variant key and the line's identity.
// Lines are owned by the cart store; consumers read copies.
type CartLine struct {
	Product

	CartItemID      string `json:"cartItemId"`
	Count           int    `json:"count"`
	SelectedColorID string `json:"selectedColorId,omitempty"`
	SelectedSizeID  string `json:"selectedSizeId,omitempty"`
}

// CartSnapshot is the persisted unit: every line plus the schema version it
// was written with.
type CartSnapshot struct {
	Version int        `json:"version"`
	Items   []CartLine `json:"items"`
}

// OrderItem is the checkout projection of a cart line, shaped for the
// backend manual-order endpoint.
type OrderItem struct {
	ID      string `json:"id"`
	Count   int    `json:"count"`
	ColorID string `json:"colorId,omitempty"`
	SizeID  string `json:"sizeId,omitempty"`
}
