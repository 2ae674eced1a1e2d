// Package category serves the static category list the storefront
// navigation is built from.
package category

import (
	"context"
	"net/http"

	"zipper/api/web"
)

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Categories returns the fixed set of storefront categories.
func Categories() []Category {
	return []Category{
		{ID: "electronics", Name: "Electronics", Description: "Latest gadgets and tech"},
		{ID: "fashion", Name: "Fashion", Description: "Trendy clothing and accessories"},
		{ID: "home", Name: "Home & Garden", Description: "Everything for your home"},
		{ID: "beauty", Name: "Beauty", Description: "Skincare and cosmetics"},
		{ID: "sports", Name: "Sports", Description: "Fitness and outdoor gear"},
		{ID: "books", Name: "Books", Description: "Knowledge and entertainment"},
	}
}

// HandleList serves the category list.
func HandleList() web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, Categories(), http.StatusOK)
	}
}
