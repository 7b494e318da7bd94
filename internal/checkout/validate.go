package checkout

import (
	"regexp"
	"strings"
)

// FieldError is one inline, per-field validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors keeps declaration order so the first invalid field can
// receive focus.
type FieldErrors []FieldError

func (e FieldErrors) OK() bool { return len(e) == 0 }

func (e FieldErrors) First() *FieldError {
	if len(e) == 0 {
		return nil
	}
	return &e[0]
}

func (e *FieldErrors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	zipRe   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	cardRe  = regexp.MustCompile(`^\d{16}$`)
	cvvRe   = regexp.MustCompile(`^\d{3,4}$`)
)

// Enumerated option sets for the shipping selects.
var (
	StateOptions   = []string{"ca", "ny", "tx", "fl"}
	CountryOptions = []string{"us", "ca", "uk", "au"}
)

func isOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

// ValidateShipping checks every Shipping field individually.
func ValidateShipping(in ShippingInfo) FieldErrors {
	var errs FieldErrors
	if strings.TrimSpace(in.FirstName) == "" {
		errs.add("first_name", "First name is required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs.add("last_name", "Last name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		errs.add("email", "Email is required")
	} else if !emailRe.MatchString(in.Email) {
		errs.add("email", "Please enter a valid email address")
	}
	if strings.TrimSpace(in.Address) == "" {
		errs.add("address", "Address is required")
	}
	if strings.TrimSpace(in.City) == "" {
		errs.add("city", "City is required")
	}
	if !isOption(StateOptions, in.State) {
		errs.add("state", "State is required")
	}
	if strings.TrimSpace(in.ZipCode) == "" {
		errs.add("zip_code", "ZIP code is required")
	} else if !zipRe.MatchString(in.ZipCode) {
		errs.add("zip_code", "Please enter a valid ZIP code")
	}
	if !isOption(CountryOptions, in.Country) {
		errs.add("country", "Country is required")
	}
	return errs
}

// Validate checks the card field set. Spaces in the number are visual
// grouping and are stripped first.
func (c Card) Validate() FieldErrors {
	var errs FieldErrors
	number := strings.ReplaceAll(c.CardNumber, " ", "")
	if strings.TrimSpace(c.CardNumber) == "" {
		errs.add("card_number", "Card number is required")
	} else if !cardRe.MatchString(number) {
		errs.add("card_number", "Please enter a valid 16-digit card number")
	}
	if strings.TrimSpace(c.CardName) == "" {
		errs.add("card_name", "Cardholder name is required")
	}
	if c.ExpiryMonth == "" {
		errs.add("expiry_month", "Expiry month is required")
	}
	if c.ExpiryYear == "" {
		errs.add("expiry_year", "Expiry year is required")
	}
	if strings.TrimSpace(c.CVV) == "" {
		errs.add("cvv", "CVV is required")
	} else if !cvvRe.MatchString(c.CVV) {
		errs.add("cvv", "Please enter a valid CVV")
	}
	return errs
}

// Validate on Wallet always passes; alternative methods carry no fields
// worth checking here.
func (Wallet) Validate() FieldErrors { return nil }

// ValidEmail is reused by the newsletter subscription endpoint.
func ValidEmail(s string) bool { return emailRe.MatchString(s) }
