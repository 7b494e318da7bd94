package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/malidadi/storefront/internal/cart"
)

type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepReview
	StepPlaced
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepPlaced:
		return "placed"
	}
	return "unknown"
}

// validNext encodes the linear flow: forward one step at a time, backward
// from Payment and Review, one terminal transition into Placed.
var validNext = map[Step]map[Step]bool{
	StepShipping: {StepPayment: true},
	StepPayment:  {StepShipping: true, StepReview: true},
	StepReview:   {StepPayment: true, StepPlaced: true},
	StepPlaced:   {},
}

func CanTransition(from, to Step) bool {
	return validNext[from][to]
}

var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid checkout transition")
	ErrTermsNotAccepted  = errors.New("terms must be accepted before placing the order")
	ErrEmptyCart         = errors.New("cart is empty")
)

// Session is one checkout in progress. The Form is shared across steps so
// backward navigation never loses entered values. Sessions live in memory
// only; a checkout form is never persisted.
type Session struct {
	ID        string
	Step      Step
	Form      Form
	CreatedAt time.Time
}

// Next validates the current step and, on success, advances one step.
// Failing fields are returned in declaration order and block the move.
func (s *Session) Next() (FieldErrors, error) {
	switch s.Step {
	case StepShipping:
		if errs := ValidateShipping(s.Form.Shipping); !errs.OK() {
			return errs, ErrValidation
		}
		s.Step = StepPayment
	case StepPayment:
		pm := s.Form.Payment
		if pm == nil {
			pm = Card{}
		}
		if errs := pm.Validate(); !errs.OK() {
			return errs, ErrValidation
		}
		s.Step = StepReview
	default:
		return nil, ErrInvalidTransition
	}
	return nil, nil
}

// Back moves one step backward, preserving all form state.
func (s *Session) Back() error {
	switch s.Step {
	case StepPayment:
		s.Step = StepShipping
	case StepReview:
		s.Step = StepPayment
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Machine holds in-flight checkout sessions keyed by the cart session ID.
type Machine struct {
	cart *cart.Store

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewMachine(c *cart.Store) *Machine {
	return &Machine{cart: c, sessions: map[string]*Session{}}
}

// Session returns the checkout in progress for the session ID, creating a
// fresh one at the Shipping step if none exists.
func (m *Machine) Session(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := &Session{ID: id, Step: StepShipping, CreatedAt: time.Now().UTC()}
	m.sessions[id] = s
	return s
}

// Prefill seeds the shipping fields from a stored profile. It only applies
// to sessions that have not typed anything yet.
func (m *Machine) Prefill(id string, sh ShippingInfo) {
	s := m.Session(id)
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.Step == StepShipping && s.Form.Shipping == (ShippingInfo{}) {
		s.Form.Shipping = sh
	}
}

// Place drives the terminal Review -> Placed transition: terms must be
// accepted and the cart non-empty. The cart is cleared on success; a failed
// placement leaves the session in Review with the form untouched.
func (m *Machine) Place(ctx context.Context, id string) ([]cart.Line, error) {
	s := m.Session(id)
	if !CanTransition(s.Step, StepPlaced) {
		return nil, ErrInvalidTransition
	}
	if !s.Form.TermsAccepted {
		return nil, ErrTermsNotAccepted
	}
	lines, err := m.cart.Lines(ctx, id)
	if err != nil && !errors.Is(err, cart.ErrStale) {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	// A failed durable write downgrades to a warning; the order still goes
	// through with the in-memory cart emptied.
	if err := m.cart.Clear(ctx, id); err != nil && !errors.Is(err, cart.ErrNotSaved) {
		return nil, err
	}
	s.Step = StepPlaced
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return lines, nil
}
