package cart

import "time"

// Variant captures an optional size/color selection made at add time.
type Variant struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// Line is one product-plus-quantity entry in a cart. Name, Price and Image
// are display snapshots captured when the product was added; later admin
// edits do not rewrite existing lines.
type Line struct {
	ProductID int       `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
	Variant   *Variant  `json:"variant,omitempty"`
}

// TotalItems sums quantities across lines.
func TotalItems(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
