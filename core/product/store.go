package product

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"zipper/database"
)

var ErrNotFound = errors.New("product not found")

// Store is the document-store surface the handlers depend on. The
// Firestore implementation backs production; tests use a memory store.
type Store interface {
	List(ctx context.Context) ([]Product, error)
	Fetch(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) (string, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
}

const collection = "products"

// FirestoreStore keeps products as documents in the products
// collection, keyed by the Firestore document id.
type FirestoreStore struct {
	fs *firestore.Client
}

func NewFirestoreStore(fs *firestore.Client) *FirestoreStore {
	return &FirestoreStore{fs: fs}
}

func (s *FirestoreStore) List(ctx context.Context) ([]Product, error) {
	var products []Product

	it := s.fs.Collection(collection).Documents(ctx)
	defer it.Stop()

	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating products: %w", err)
		}

		var p Product
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decoding product[%s]: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		products = append(products, Normalize(p))
	}

	return products, nil
}

func (s *FirestoreStore) Fetch(ctx context.Context, id string) (Product, error) {
	doc, err := s.fs.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if database.IsNotFound(err) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("fetching product[%s]: %w", id, err)
	}

	var p Product
	if err := doc.DataTo(&p); err != nil {
		return Product{}, fmt.Errorf("decoding product[%s]: %w", id, err)
	}
	p.ID = doc.Ref.ID
	return Normalize(p), nil
}

func (s *FirestoreStore) Create(ctx context.Context, p Product) (string, error) {
	ref := s.fs.Collection(collection).NewDoc()
	if _, err := ref.Set(ctx, p); err != nil {
		return "", fmt.Errorf("creating product: %w", err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Update(ctx context.Context, p Product) error {
	ref := s.fs.Collection(collection).Doc(p.ID)

	// Existence check first: Set would silently create the document.
	if _, err := ref.Get(ctx); err != nil {
		if database.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("fetching product[%s]: %w", p.ID, err)
	}

	if _, err := ref.Set(ctx, p); err != nil {
		return fmt.Errorf("updating product[%s]: %w", p.ID, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	ref := s.fs.Collection(collection).Doc(id)

	if _, err := ref.Get(ctx); err != nil {
		if database.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("fetching product[%s]: %w", id, err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("deleting product[%s]: %w", id, err)
	}
	return nil
}
