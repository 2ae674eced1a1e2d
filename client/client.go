// Package client is the Go client for the storefront API. The state
// managers use it for likes hydration and confirmation and for order
// submission; embedders can use it to browse the catalog.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"zipper/core/category"
	"zipper/core/order"
	"zipper/core/product"
)

// StatusError reports a non-2xx API response.
type StatusError struct {
	Method string
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, Path: path, Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// Products lists the whole catalog.
func (c *Client) Products(ctx context.Context) ([]product.Product, error) {
	var products []product.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches one product by id.
func (c *Client) Product(ctx context.Context, id string) (product.Product, error) {
	var p product.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+id, nil, &p); err != nil {
		return product.Product{}, err
	}
	return p, nil
}

// Liked returns the products currently marked as liked. This is the
// hydration read for the likes manager.
func (c *Client) Liked(ctx context.Context) ([]product.Product, error) {
	var products []product.Product
	if err := c.do(ctx, http.MethodGet, "/api/liked", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Like marks a product as liked.
func (c *Client) Like(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodPost, "/api/products/"+productID+"/like", nil, nil)
}

// Unlike removes a product from the liked set.
func (c *Client) Unlike(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+productID+"/unlike", nil, nil)
}

// Categories lists the storefront categories.
func (c *Client) Categories(ctx context.Context) ([]category.Category, error) {
	var cats []category.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CreateOrder submits an order and returns the id assigned by the API.
func (c *Client) CreateOrder(ctx context.Context, ord order.OrderNew) (string, error) {
	var resp struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/orders", ord, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}
