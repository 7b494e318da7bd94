package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/malidadi/storefront/internal/catalog"
)

// ErrNotSaved marks a mutation whose durable write failed. The in-memory
// cart is still current; callers surface this as a warning, not a failure.
var ErrNotSaved = errors.New("cart not saved")

// ErrStale marks a read served from the last known in-memory snapshot
// because durable storage could not be read.
var ErrStale = errors.New("cart may be stale")

// Subscriber receives the new total item count after every mutation.
type Subscriber func(sessionID string, count int)

// Store owns all cart state and its persistence. Every mutation writes the
// full snapshot to Storage synchronously, then notifies subscribers, so
// independently mounted surfaces (header badge, checkout summary) agree on
// the count without polling storage themselves.
type Store struct {
	storage Storage

	mu      sync.Mutex
	cache   map[string][]Line
	subs    map[int]Subscriber
	nextSub int
}

func NewStore(s Storage) *Store {
	return &Store{
		storage: s,
		cache:   map[string][]Line{},
		subs:    map[int]Subscriber{},
	}
}

// Subscribe registers a process-wide observer. The returned func removes it.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// AddItem merges into an existing line for the same product (the original
// AddedAt is kept) or appends a new line with AddedAt = now. Quantities
// below 1 count as 1.
func (s *Store) AddItem(ctx context.Context, sessionID string, p catalog.Product, qty int, v *Variant) error {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, _ := s.load(ctx, sessionID)
	merged := false
	for i := range lines {
		if lines[i].ProductID == p.ID {
			lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, Line{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Quantity:  qty,
			AddedAt:   time.Now().UTC(),
			Variant:   v,
		})
	}
	return s.commit(ctx, sessionID, lines)
}

// SetQuantity replaces a line's quantity. Quantities below 1 are rejected
// as a no-op: a line only reaches zero through RemoveItem, never through
// decrement.
func (s *Store) SetQuantity(ctx context.Context, sessionID string, productID, qty int) error {
	if qty < 1 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, _ := s.load(ctx, sessionID)
	for i := range lines {
		if lines[i].ProductID == productID {
			if lines[i].Quantity == qty {
				return nil
			}
			lines[i].Quantity = qty
			return s.commit(ctx, sessionID, lines)
		}
	}
	return nil
}

// RemoveItem deletes the line; no-op if absent.
func (s *Store) RemoveItem(ctx context.Context, sessionID string, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, _ := s.load(ctx, sessionID)
	for i := range lines {
		if lines[i].ProductID == productID {
			lines = append(lines[:i], lines[i+1:]...)
			return s.commit(ctx, sessionID, lines)
		}
	}
	return nil
}

// Clear empties the cart in a single storage write and notifies once.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[sessionID] = nil
	err := s.storage.Delete(ctx, sessionID)
	s.notify(sessionID, 0)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotSaved, err)
	}
	return nil
}

// Lines returns the cart's lines. When storage cannot be read the last
// known in-memory snapshot (possibly empty) is returned along with ErrStale.
func (s *Store) Lines(ctx context.Context, sessionID string) ([]Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines, stale := s.load(ctx, sessionID)
	out := make([]Line, len(lines))
	copy(out, lines)
	if stale {
		return out, ErrStale
	}
	return out, nil
}

// TotalItemCount sums quantities across all lines.
func (s *Store) TotalItemCount(ctx context.Context, sessionID string) (int, error) {
	lines, err := s.Lines(ctx, sessionID)
	return TotalItems(lines), err
}

// load must be called with s.mu held. The bool reports a stale fallback.
func (s *Store) load(ctx context.Context, sessionID string) ([]Line, bool) {
	b, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			// no durable snapshot; the in-memory one (kept current across
			// failed writes) is authoritative
			return s.cache[sessionID], false
		}
		return s.cache[sessionID], true
	}
	var lines []Line
	if err := json.Unmarshal(b, &lines); err != nil {
		// corrupt snapshot reads as an empty cart
		return nil, false
	}
	s.cache[sessionID] = lines
	return lines, false
}

// commit must be called with s.mu held. It keeps the in-memory snapshot
// current even when the durable write fails, then notifies subscribers.
func (s *Store) commit(ctx context.Context, sessionID string, lines []Line) error {
	s.cache[sessionID] = lines
	b, err := json.Marshal(lines)
	if err == nil {
		err = s.storage.Save(ctx, sessionID, b)
	}
	s.notify(sessionID, TotalItems(lines))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotSaved, err)
	}
	return nil
}

func (s *Store) notify(sessionID string, count int) {
	for _, fn := range s.subs {
		fn(sessionID, count)
	}
}
