package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// PriceRange is a single selected price tier. A nil Max means unbounded.
type PriceRange struct {
	Min float64
	Max *float64
}

// Criteria holds one query's filter state. Every dimension is optional;
// the zero value matches all products. Selections within a dimension are
// OR'd, dimensions are AND'd together.
type Criteria struct {
	Query      string
	Categories []string
	Brands     []string
	PriceRange *PriceRange
	MinRating  float64
}

// Search filters and sorts products. It is pure: the input slice is never
// mutated and the result is freshly allocated.
func Search(products []Product, c Criteria, key SortKey) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if Matches(p, c) {
			out = append(out, p)
		}
	}
	sortProducts(out, key)
	return out
}

// Matches reports whether a single product passes every active predicate.
func Matches(p Product, c Criteria) bool {
	if q := strings.TrimSpace(c.Query); q != "" && !matchesText(p, q) {
		return false
	}
	if len(c.Categories) > 0 && !intersects(p.Categories, c.Categories) {
		return false
	}
	if len(c.Brands) > 0 && !containsFold(c.Brands, p.Brand) {
		return false
	}
	if r := c.PriceRange; r != nil {
		if p.Price < r.Min {
			return false
		}
		if r.Max != nil && p.Price > *r.Max {
			return false
		}
	}
	if c.MinRating > 0 && p.Rating < c.MinRating {
		return false
	}
	return true
}

func matchesText(p Product, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Brand), q) {
		return true
	}
	for _, cat := range p.Categories {
		if strings.Contains(strings.ToLower(cat), q) {
			return true
		}
	}
	return false
}

func intersects(have, want []string) bool {
	for _, w := range want {
		if containsFold(have, w) {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// sortProducts sorts in place. All comparisons are stable so that
// ties keep their prior relative order. Unknown keys behave as featured.
func sortProducts(ps []Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price < ps[j].Price })
	case SortPriceHigh:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price > ps[j].Price })
	case SortNameAsc:
		cl := collate.New(language.English)
		sort.SliceStable(ps, func(i, j int) bool { return cl.CompareString(ps[i].Name, ps[j].Name) < 0 })
	case SortNameDesc:
		cl := collate.New(language.English)
		sort.SliceStable(ps, func(i, j int) bool { return cl.CompareString(ps[i].Name, ps[j].Name) > 0 })
	case SortRating:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Rating > ps[j].Rating })
	case SortNewest:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].IsNew && !ps[j].IsNew })
	default: // featured
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].ReviewCount > ps[j].ReviewCount })
	}
}
