package admin

import (
	"context"

	"github.com/malidadi/storefront/internal/catalog"
)

// ProductRepo is what Service needs from the overlay store.
type ProductRepo interface {
	List(ctx context.Context) ([]catalog.Product, error)
	Get(ctx context.Context, id int) (catalog.Product, error)
	Create(ctx context.Context, p catalog.Product) (catalog.Product, error)
	Update(ctx context.Context, p catalog.Product) error
	Delete(ctx context.Context, id int) error
}

// Service reconciles the two product collections: the static catalog seed
// and the admin overlay. Overlay rows win by ID; overlay-only rows are
// appended after the seed. Admin deletes only remove overlay rows, so the
// seed can never be edited away.
type Service struct {
	Seed []catalog.Product
	Repo ProductRepo
}

func NewService(seed []catalog.Product, repo ProductRepo) *Service {
	return &Service{Seed: seed, Repo: repo}
}

// Merged returns the storefront's product view.
func (s *Service) Merged(ctx context.Context) ([]catalog.Product, error) {
	if s.Repo == nil {
		return s.Seed, nil
	}
	overlay, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]catalog.Product, len(overlay))
	for _, p := range overlay {
		byID[p.ID] = p
	}
	out := make([]catalog.Product, 0, len(s.Seed)+len(overlay))
	for _, p := range s.Seed {
		if o, ok := byID[p.ID]; ok {
			out = append(out, o)
			delete(byID, p.ID)
			continue
		}
		out = append(out, p)
	}
	for _, p := range overlay {
		if _, ok := byID[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// Find resolves one product from the merged view.
func (s *Service) Find(ctx context.Context, id int) (catalog.Product, error) {
	merged, err := s.Merged(ctx)
	if err != nil {
		return catalog.Product{}, err
	}
	return catalog.Find(merged, id)
}
