package models

// CheckoutRequest is the storefront checkout form payload. Validation lives
// in utils; this is the one boundary where user-facing errors are expected.
type CheckoutRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// ManualOrder is the request body posted to the backend manual-order
// endpoint.
type ManualOrder struct {
	FullName string      `json:"fullName"`
	Phone    string      `json:"phone"`
	Address  string      `json:"address"`
	Products []OrderItem `json:"products"`
}
