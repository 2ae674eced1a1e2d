// Package like owns the liked-product records. Liked ids live in the
// document store rather than process memory, so the API stays stateless
// and likes survive restarts.
package like

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"zipper/database"
)

// ErrNotLiked is returned when unliking a product that has no like
// record.
var ErrNotLiked = errors.New("product not in liked list")

type record struct {
	ProductID string    `firestore:"productId"`
	LikedAt   time.Time `firestore:"likedAt"`
}

// Store is the liked-id set, keyed by product id.
type Store interface {
	IDs(ctx context.Context) ([]string, error)
	Add(ctx context.Context, productID string) error
	Remove(ctx context.Context, productID string) error
}

const collection = "likes"

// FirestoreStore keeps one like document per product id.
type FirestoreStore struct {
	fs *firestore.Client
}

func NewFirestoreStore(fs *firestore.Client) *FirestoreStore {
	return &FirestoreStore{fs: fs}
}

func (s *FirestoreStore) IDs(ctx context.Context) ([]string, error) {
	var ids []string

	it := s.fs.Collection(collection).Documents(ctx)
	defer it.Stop()

	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating likes: %w", err)
		}
		ids = append(ids, doc.Ref.ID)
	}

	return ids, nil
}

func (s *FirestoreStore) Add(ctx context.Context, productID string) error {
	rec := record{ProductID: productID, LikedAt: time.Now().UTC()}
	if _, err := s.fs.Collection(collection).Doc(productID).Set(ctx, rec); err != nil {
		return fmt.Errorf("storing like[%s]: %w", productID, err)
	}
	return nil
}

func (s *FirestoreStore) Remove(ctx context.Context, productID string) error {
	ref := s.fs.Collection(collection).Doc(productID)

	if _, err := ref.Get(ctx); err != nil {
		if database.IsNotFound(err) {
			return ErrNotLiked
		}
		return fmt.Errorf("fetching like[%s]: %w", productID, err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("deleting like[%s]: %w", productID, err)
	}
	return nil
}

// MemoryStore is the in-process Store used by tests.
type MemoryStore struct {
	mu  sync.Mutex
	ids map[string]bool
}

func NewMemoryStore(seed ...string) *MemoryStore {
	s := &MemoryStore{ids: make(map[string]bool)}
	for _, id := range seed {
		s.ids[id] = true
	}
	return s
}

func (s *MemoryStore) IDs(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *MemoryStore) Add(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[productID] = true
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ids[productID] {
		return ErrNotLiked
	}
	delete(s.ids, productID)
	return nil
}
