package product

import (
	"context"
	"sync"

	"zipper/validate"
)

// MemoryStore is an in-process Store used by tests and local runs
// without Firestore credentials.
type MemoryStore struct {
	mu       sync.Mutex
	order    []string
	products map[string]Product
}

func NewMemoryStore(seed ...Product) *MemoryStore {
	s := &MemoryStore{products: make(map[string]Product)}
	for _, p := range seed {
		s.order = append(s.order, p.ID)
		s.products[p.ID] = p
	}
	return s
}

func (s *MemoryStore) List(ctx context.Context) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []Product
	for _, id := range s.order {
		products = append(products, Normalize(s.products[id]))
	}
	return products, nil
}

func (s *MemoryStore) Fetch(ctx context.Context, id string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return Normalize(p), nil
}

func (s *MemoryStore) Create(ctx context.Context, p Product) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = validate.GenerateID()
	s.order = append(s.order, p.ID)
	s.products[p.ID] = p
	return p.ID, nil
}

func (s *MemoryStore) Update(ctx context.Context, p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return ErrNotFound
	}
	s.products[p.ID] = p
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
