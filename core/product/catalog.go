package product

import (
	"context"
	"errors"
)

// Catalog is the read path the storefront renders from: the document
// store first, falling back to the static sample dataset so an empty
// store still serves a browsable shop.
type Catalog struct {
	store    Store
	fallback []Product
}

func NewCatalog(store Store, fallback []Product) *Catalog {
	return &Catalog{store: store, fallback: fallback}
}

func (c *Catalog) List(ctx context.Context) ([]Product, error) {
	products, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return c.fallback, nil
	}
	return products, nil
}

func (c *Catalog) Fetch(ctx context.Context, id string) (Product, error) {
	p, err := c.store.Fetch(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Product{}, err
	}

	for _, f := range c.fallback {
		if f.ID == id {
			return f, nil
		}
	}
	return Product{}, ErrNotFound
}
