package like

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"zipper/api/web"
	"zipper/api/weberr"
	"zipper/core/product"
)

// HandleListLiked returns the full product objects for every liked id.
// This is the hydration source of truth for the client's likes manager.
func HandleListLiked(store Store, cat *product.Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		ids, err := store.IDs(ctx)
		if err != nil {
			return fmt.Errorf("listing liked ids: %w", err)
		}

		liked := make([]product.Product, 0, len(ids))
		for _, id := range ids {
			p, err := cat.Fetch(ctx, id)
			if err != nil {
				if errors.Is(err, product.ErrNotFound) {
					// A like can outlive its product; skip it.
					continue
				}
				return fmt.Errorf("fetching liked product[%s]: %w", id, err)
			}
			liked = append(liked, p)
		}

		return web.Respond(ctx, w, liked, http.StatusOK)
	}
}

// HandleLike records a like for a known product. Liking an already
// liked product is a no-op success.
func HandleLike(store Store, cat *product.Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")

		if _, err := cat.Fetch(ctx, id); err != nil {
			if errors.Is(err, product.ErrNotFound) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("fetching product[%s]: %w", id, err)
		}

		if err := store.Add(ctx, id); err != nil {
			return fmt.Errorf("liking product[%s]: %w", id, err)
		}

		resp := struct {
			Message string `json:"message"`
		}{fmt.Sprintf("Product %s liked successfully.", id)}
		return web.Respond(ctx, w, resp, http.StatusOK)
	}
}

// HandleUnlike removes a like record, failing with 404 when the product
// is not currently liked.
func HandleUnlike(store Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")

		if err := store.Remove(ctx, id); err != nil {
			if errors.Is(err, ErrNotLiked) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("unliking product[%s]: %w", id, err)
		}

		resp := struct {
			Message string `json:"message"`
		}{fmt.Sprintf("Product %s unliked successfully.", id)}
		return web.Respond(ctx, w, resp, http.StatusOK)
	}
}
