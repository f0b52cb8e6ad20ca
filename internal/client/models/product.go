package models

// Product is a catalog record. The client holds read-only copies; only the
// admin surface creates or deletes them, and never edits one in place.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// ProductCreate is the payload for creating a new product.
type ProductCreate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// Category is a (label, count) aggregate summarizing catalog composition.
type Category struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
