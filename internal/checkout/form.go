package checkout

// ShippingInfo is the Shipping step's field set.
type ShippingInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

// PaymentMethod is a tagged union: Card carries the full card field set,
// Wallet bypasses card validation entirely.
type PaymentMethod interface {
	Validate() FieldErrors
	method() string
}

type Card struct {
	CardNumber     string `json:"card_number"`
	CardName       string `json:"card_name"`
	ExpiryMonth    string `json:"expiry_month"`
	ExpiryYear     string `json:"expiry_year"`
	CVV            string `json:"cvv"`
	SameAsShipping bool   `json:"same_as_shipping"`
}

func (Card) method() string { return "card" }

type Wallet struct {
	Provider string `json:"provider"`
}

func (Wallet) method() string { return "wallet" }

// Form is the single shared form-state object for all checkout steps.
// Switching steps back and forth never resets it.
type Form struct {
	Shipping        ShippingInfo  `json:"shipping"`
	Payment         PaymentMethod `json:"-"`
	TermsAccepted   bool          `json:"terms_accepted"`
	NewsletterOptIn bool          `json:"newsletter_opt_in"`
}
