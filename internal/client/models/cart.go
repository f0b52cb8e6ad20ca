package models

import "math"

// CartItem is a single cart line: a product copy embedded by the backend at
// fetch time plus a positive quantity.
type CartItem struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Product  Product `json:"product"`
}

// Cart is the in-memory snapshot of the user's cart, exactly as last fetched.
// It is never treated as a cache with coherency guarantees: every mutation is
// followed by a full re-fetch and the last fetch wins.
type Cart []CartItem

// TotalItems returns the sum of all line quantities.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of (unit price x quantity) over all lines,
// rounded to two decimal places.
func (c Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c {
		total += item.Product.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}
