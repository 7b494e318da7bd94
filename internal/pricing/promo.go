package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Promo is a discount or free-shipping rule keyed by its code.
type Promo struct {
	Code         string          `json:"code"`
	Rate         decimal.Decimal `json:"-"`
	Description  string          `json:"description"`
	FreeShipping bool            `json:"free_shipping,omitempty"`
}

var promos = map[string]Promo{
	"SAVE10":    {Code: "SAVE10", Rate: decimal.NewFromFloat(0.10), Description: "10% off your order"},
	"WELCOME20": {Code: "WELCOME20", Rate: decimal.NewFromFloat(0.20), Description: "20% off for new customers"},
	"FREESHIP":  {Code: "FREESHIP", Rate: decimal.Zero, Description: "Free shipping", FreeShipping: true},
}

// ErrInvalidPromo names the accepted codes so the rejection message can be
// shown verbatim.
var ErrInvalidPromo = errors.New("invalid promo code, try SAVE10, WELCOME20, or FREESHIP")

// LookupPromo matches case-insensitively. Unknown codes return
// ErrInvalidPromo and change no state.
func LookupPromo(code string) (Promo, error) {
	p, ok := promos[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Promo{}, ErrInvalidPromo
	}
	return p, nil
}
