package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/malidadi/storefront/internal/cart"
)

var (
	// TaxRate applies to the discounted subtotal.
	TaxRate = decimal.NewFromFloat(0.08)
	// FreeShippingThreshold: orders strictly above it ship free.
	FreeShippingThreshold = decimal.NewFromInt(100)
	// FlatShippingRate for everything below the threshold.
	FlatShippingRate = decimal.NewFromFloat(9.99)
)

// Totals carries full-precision amounts. Rounding happens only in Display.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// DisplayTotals is the 2-decimal presentation of Totals.
type DisplayTotals struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Tax      string `json:"tax"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

func (t Totals) Display() DisplayTotals {
	return DisplayTotals{
		Subtotal: t.Subtotal.StringFixed(2),
		Discount: t.Discount.StringFixed(2),
		Tax:      t.Tax.StringFixed(2),
		Shipping: t.Shipping.StringFixed(2),
		Total:    t.Total.StringFixed(2),
	}
}

// ComputeTotals derives subtotal, discount, tax, shipping and total from
// the cart lines and an optionally applied promo (nil means none).
func ComputeTotals(lines []cart.Line, promo *Promo) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	discount := decimal.Zero
	freeShipping := false
	if promo != nil {
		discount = subtotal.Mul(promo.Rate)
		freeShipping = promo.FreeShipping
	}

	taxed := subtotal.Sub(discount)
	tax := taxed.Mul(TaxRate)

	shipping := FlatShippingRate
	if freeShipping || taxed.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	total := taxed.Add(tax).Add(shipping)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Totals{Subtotal: subtotal, Discount: discount, Tax: tax, Shipping: shipping, Total: total}
}
