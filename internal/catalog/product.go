package catalog

import (
	"errors"
	"strings"
)

type Review struct {
	Author  string  `json:"author"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Categories    []string `json:"categories"`
	Stock         int      `json:"stock"`
	IsNew         bool     `json:"is_new"`
	InStock       bool     `json:"in_stock"`
	IsOnSale      bool     `json:"is_on_sale"`
	Reviews       []Review `json:"reviews,omitempty"`
}

// Available reports whether the product can be added to a cart.
// InStock is the authoritative flag; Stock is informational and the two
// are allowed to disagree in seed data.
func (p Product) Available() bool { return p.InStock }

// Slug derives the URL fragment used on product detail routes.
func (p Product) Slug() string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(p.Name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

var ErrNotFound = errors.New("product not found")

// Find looks a product up by ID. Unknown IDs return ErrNotFound instead
// of falling back to the first entry.
func Find(products []Product, id int) (Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}
