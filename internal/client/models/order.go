package models

// OrderItem is one line of a placed order, denormalized from the cart
// snapshot at checkout time.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// ShippingAddress is the delivery destination attached to an order.
type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

// OrderCreate is the payload for placing an order. TotalAmount is computed
// client-side from the cart snapshot; the backend clears the cart on success.
type OrderCreate struct {
	Items           []OrderItem     `json:"items"`
	TotalAmount     float64         `json:"total_amount"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
}

// Order is a placed order as returned by the backend.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     float64         `json:"total_amount"`
	Status          string          `json:"status"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
}
