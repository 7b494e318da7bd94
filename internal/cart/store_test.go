package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malidadi/storefront/internal/catalog"
)

var (
	necklace = catalog.Product{ID: 1, Name: "Beaded Necklace", Price: 10, Image: "n.jpg", InStock: true}
	earrings = catalog.Product{ID: 2, Name: "Brass Earrings", Price: 5, Image: "e.jpg", InStock: true}
)

func TestAddItemMergesDuplicates(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory())

	require.NoError(t, s.AddItem(ctx, "s1", necklace, 1, nil))
	first, err := s.Lines(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, first, 1)

	require.NoError(t, s.AddItem(ctx, "s1", necklace, 1, nil))
	lines, err := s.Lines(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, lines, 1, "duplicate add must merge, not append")
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, first[0].AddedAt, lines[0].AddedAt, "merge keeps the original AddedAt")
	assert.Equal(t, "Beaded Necklace", lines[0].Name)
}

func TestAddItemClampsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory())

	require.NoError(t, s.AddItem(ctx, "s1", necklace, 0, nil))
	count, err := s.TotalItemCount(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSetQuantityBelowOneIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory())
	require.NoError(t, s.AddItem(ctx, "s1", necklace, 2, nil))

	require.NoError(t, s.SetQuantity(ctx, "s1", necklace.ID, 0))
	require.NoError(t, s.SetQuantity(ctx, "s1", necklace.ID, -3))

	lines, err := s.Lines(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, lines, 1, "line must never be removed through SetQuantity")
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory())
	require.NoError(t, s.AddItem(ctx, "s1", necklace, 2, nil))
	require.NoError(t, s.SetQuantity(ctx, "s1", necklace.ID, 7))

	lines, _ := s.Lines(ctx, "s1")
	assert.Equal(t, 7, lines[0].Quantity)

	// unknown product is a no-op
	require.NoError(t, s.SetQuantity(ctx, "s1", 99, 3))
	lines, _ = s.Lines(ctx, "s1")
	require.Len(t, lines, 1)
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory())
	require.NoError(t, s.AddItem(ctx, "s1", necklace, 1, nil))
	require.NoError(t, s.AddItem(ctx, "s1", earrings, 1, nil))

	require.NoError(t, s.RemoveItem(ctx, "s1", necklace.ID))
	lines, _ := s.Lines(ctx, "s1")
	require.Len(t, lines, 1)
	assert.Equal(t, earrings.ID, lines[0].ProductID)

	// absent product is a no-op
	require.NoError(t, s.RemoveItem(ctx, "s1", necklace.ID))
}

func TestClearNotifiesOnce(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory())
	require.NoError(t, s.AddItem(ctx, "s1", necklace, 2, nil))
	require.NoError(t, s.AddItem(ctx, "s1", earrings, 1, nil))

	var calls int
	var last int
	cancel := s.Subscribe(func(sessionID string, count int) {
		calls++
		last = count
	})
	defer cancel()

	require.NoError(t, s.Clear(ctx, "s1"))
	assert.Equal(t, 1, calls, "clear must notify exactly once")
	assert.Equal(t, 0, last)

	count, err := s.TotalItemCount(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSubscriberSeesTotalCount(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory())

	var last int
	cancel := s.Subscribe(func(_ string, count int) { last = count })
	defer cancel()

	require.NoError(t, s.AddItem(ctx, "s1", necklace, 2, nil))
	assert.Equal(t, 2, last)
	require.NoError(t, s.AddItem(ctx, "s1", earrings, 3, nil))
	assert.Equal(t, 5, last)
}

func TestRoundTripThroughStorage(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	s1 := NewStore(mem)
	require.NoError(t, s1.AddItem(ctx, "s1", necklace, 2, &Variant{Color: "red"}))
	require.NoError(t, s1.AddItem(ctx, "s1", earrings, 1, nil))

	// a fresh store over the same storage reproduces the cart
	s2 := NewStore(mem)
	lines, err := s2.Lines(ctx, "s1")
	require.NoError(t, err)

	got := map[int]int{}
	for _, l := range lines {
		got[l.ProductID] = l.Quantity
	}
	assert.Equal(t, map[int]int{1: 2, 2: 1}, got)
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory())
	require.NoError(t, s.AddItem(ctx, "a", necklace, 1, nil))
	require.NoError(t, s.AddItem(ctx, "b", earrings, 4, nil))

	ca, _ := s.TotalItemCount(ctx, "a")
	cb, _ := s.TotalItemCount(ctx, "b")
	assert.Equal(t, 1, ca)
	assert.Equal(t, 4, cb)
}

// brokenStorage fails every operation after it is tripped.
type brokenStorage struct {
	*Memory
	broken bool
}

var errDisk = errors.New("disk full")

func (b *brokenStorage) Save(ctx context.Context, key string, data []byte) error {
	if b.broken {
		return errDisk
	}
	return b.Memory.Save(ctx, key, data)
}

func (b *brokenStorage) Load(ctx context.Context, key string) ([]byte, error) {
	if b.broken {
		return nil, errDisk
	}
	return b.Memory.Load(ctx, key)
}

func TestWriteFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	st := &brokenStorage{Memory: NewMemory(), broken: true}
	s := NewStore(st)

	err := s.AddItem(ctx, "s1", necklace, 1, nil)
	require.ErrorIs(t, err, ErrNotSaved)

	// in-memory cart stays current despite the failed write
	lines, err := s.Lines(ctx, "s1")
	require.ErrorIs(t, err, ErrStale)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestReadFailureFallsBackToLastSnapshot(t *testing.T) {
	ctx := context.Background()
	st := &brokenStorage{Memory: NewMemory()}
	s := NewStore(st)
	require.NoError(t, s.AddItem(ctx, "s1", necklace, 2, nil))

	st.broken = true
	lines, err := s.Lines(ctx, "s1")
	require.ErrorIs(t, err, ErrStale)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}
