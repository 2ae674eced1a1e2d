package product

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"zipper/api/web"
	"zipper/api/weberr"
	"zipper/validate"
)

// HandleList returns every product in the catalog.
func HandleList(cat *Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		products, err := cat.List(ctx)
		if err != nil {
			return fmt.Errorf("listing products: %w", err)
		}

		if products == nil {
			products = []Product{}
		}
		return web.Respond(ctx, w, products, http.StatusOK)
	}
}

// HandleShow returns a single normalized product.
func HandleShow(cat *Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")

		p, err := cat.Fetch(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("fetching product[%s]: %w", id, err)
		}

		return web.Respond(ctx, w, p, http.StatusOK)
	}
}

type createResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}

// HandleCreate stores a new product document.
func HandleCreate(store Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var pn ProductNew
		if err := web.Decode(w, r, &pn); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding product: %w", err))
		}

		if err := validate.Check(pn); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		now := time.Now().UTC()
		p := Normalize(Product{
			Name:        pn.Name,
			Description: pn.Description,
			Price:       pn.Price,
			Images:      pn.Images,
			Category:    pn.Category,
			Rating:      pn.Rating,
			StockCount:  pn.Stock,
			CreatedAt:   now,
			UpdatedAt:   now,
		})

		id, err := store.Create(ctx, p)
		if err != nil {
			return fmt.Errorf("creating product: %w", err)
		}
		p.ID = id

		resp := createResponse{Message: "Product added!", Product: p}
		return web.Respond(ctx, w, resp, http.StatusCreated)
	}
}

// HandleUpdate applies a partial update to an existing product. Fields
// absent from the body keep their stored value.
func HandleUpdate(store Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")

		var up ProductUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding product update: %w", err))
		}

		if err := validate.Check(up); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		p, err := store.Fetch(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("fetching product[%s]: %w", id, err)
		}

		if up.Name != nil {
			p.Name = *up.Name
		}
		if up.Description != nil {
			p.Description = *up.Description
		}
		if up.Price != nil {
			p.Price = *up.Price
		}
		if up.Images != nil {
			p.Images = *up.Images
		}
		if up.Category != nil {
			p.Category = *up.Category
		}
		if up.Stock != nil {
			p.StockCount = *up.Stock
		}
		p.UpdatedAt = time.Now().UTC()
		p = Normalize(p)

		if err := store.Update(ctx, p); err != nil {
			if errors.Is(err, ErrNotFound) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("updating product[%s]: %w", id, err)
		}

		resp := createResponse{Message: "Product updated successfully!", Product: p}
		return web.Respond(ctx, w, resp, http.StatusOK)
	}
}

// HandleDelete removes a product document.
func HandleDelete(store Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")

		if err := store.Delete(ctx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("deleting product[%s]: %w", id, err)
		}

		resp := struct {
			Message string `json:"message"`
		}{fmt.Sprintf("Product %s deleted successfully.", id)}
		return web.Respond(ctx, w, resp, http.StatusOK)
	}
}

// HandleListReviews serves the review list for a product. Review
// storage is not implemented; the endpoint exists so the product page
// renders an empty list instead of failing.
func HandleListReviews() web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, []struct{}{}, http.StatusOK)
	}
}

// HandleCreateReview accepts a review submission without storing it.
func HandleCreateReview() web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		resp := struct {
			Message string `json:"message"`
		}{"Review added successfully!"}
		return web.Respond(ctx, w, resp, http.StatusCreated)
	}
}
