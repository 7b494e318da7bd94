package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malidadi/storefront/internal/cart"
)

func lines(prices map[float64]int) []cart.Line {
	out := make([]cart.Line, 0, len(prices))
	id := 1
	for price, qty := range prices {
		out = append(out, cart.Line{ProductID: id, Price: price, Quantity: qty})
		id++
	}
	return out
}

func TestSubtotalSumsLines(t *testing.T) {
	got := ComputeTotals(lines(map[float64]int{10: 2, 5: 1}), nil).Display()
	assert.Equal(t, "25.00", got.Subtotal)
	assert.Equal(t, "0.00", got.Discount)
}

func TestFlatShippingBelowThreshold(t *testing.T) {
	got := ComputeTotals(lines(map[float64]int{80: 1}), nil).Display()
	assert.Equal(t, "9.99", got.Shipping)
	assert.Equal(t, "6.40", got.Tax)
	assert.Equal(t, "96.39", got.Total)
}

func TestFreeShippingAboveThreshold(t *testing.T) {
	got := ComputeTotals(lines(map[float64]int{120: 1}), nil).Display()
	assert.Equal(t, "0.00", got.Shipping)
	assert.Equal(t, "129.60", got.Total)
}

func TestThresholdIsStrict(t *testing.T) {
	// exactly at the threshold still pays flat shipping
	got := ComputeTotals(lines(map[float64]int{100: 1}), nil).Display()
	assert.Equal(t, "9.99", got.Shipping)
	assert.Equal(t, "117.99", got.Total)
}

func TestPercentagePromo(t *testing.T) {
	promo, err := LookupPromo("SAVE10")
	require.NoError(t, err)

	got := ComputeTotals(lines(map[float64]int{100: 1}), &promo).Display()
	assert.Equal(t, "10.00", got.Discount)
	// tax applies after the discount
	assert.Equal(t, "7.20", got.Tax)
	// discount drops the taxed subtotal to 90, so shipping comes back
	assert.Equal(t, "9.99", got.Shipping)
	assert.Equal(t, "107.19", got.Total)
}

func TestFreeShippingPromo(t *testing.T) {
	promo, err := LookupPromo("FREESHIP")
	require.NoError(t, err)

	got := ComputeTotals(lines(map[float64]int{80: 1}), &promo).Display()
	assert.Equal(t, "0.00", got.Discount)
	assert.Equal(t, "0.00", got.Shipping)
	assert.Equal(t, "86.40", got.Total)
}

func TestEmptyCartTotals(t *testing.T) {
	got := ComputeTotals(nil, nil)
	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.Tax.IsZero())
}

func TestLookupPromo(t *testing.T) {
	_, err := LookupPromo("XYZ")
	assert.ErrorIs(t, err, ErrInvalidPromo)

	p, err := LookupPromo("  save10 ")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", p.Code)

	p, err = LookupPromo("welcome20")
	require.NoError(t, err)
	assert.Equal(t, "WELCOME20", p.Code)
}
