package order

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"

	"zipper/validate"
)

// Store records completed checkouts in the document store.
type Store interface {
	Create(ctx context.Context, ord Order) (string, error)
}

const collection = "orders"

type FirestoreStore struct {
	fs *firestore.Client
}

func NewFirestoreStore(fs *firestore.Client) *FirestoreStore {
	return &FirestoreStore{fs: fs}
}

func (s *FirestoreStore) Create(ctx context.Context, ord Order) (string, error) {
	ref := s.fs.Collection(collection).NewDoc()
	if _, err := ref.Set(ctx, ord); err != nil {
		return "", fmt.Errorf("creating order: %w", err)
	}
	return ref.ID, nil
}

// MemoryStore is the in-process Store used by tests.
type MemoryStore struct {
	mu     sync.Mutex
	Orders map[string]Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Orders: make(map[string]Order)}
}

func (s *MemoryStore) Create(ctx context.Context, ord Order) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := validate.GenerateID()
	ord.ID = id
	s.Orders[id] = ord
	return id, nil
}
