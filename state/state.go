// Package state wires the presentation-tier managers together: cart,
// likes, purchase history and notifications, sharing one snapshot file
// and one API client.
package state

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"zipper/client"
	"zipper/config"
	"zipper/core/order"
	"zipper/state/cart"
	"zipper/state/likes"
	"zipper/state/notify"
	"zipper/state/purchases"
	"zipper/state/storage"
)

type Core struct {
	Cart          *cart.Manager
	Likes         *likes.Manager
	Purchases     *purchases.Manager
	Notifications *notify.Queue

	api   *client.Client
	store *storage.Store
}

// Open builds the state core on the snapshot file at cfg.Path. The
// likes manager still needs Hydrate once a connection is expected to
// work.
func Open(cfg config.State, api *client.Client, log logrus.FieldLogger) (*Core, error) {
	store, err := storage.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening state store: %w", err)
	}

	queue := notify.NewQueue(cfg.NotificationTTL)

	return &Core{
		Cart:          cart.NewManager(store, queue, log),
		Likes:         likes.NewManager(api, queue, log, 0),
		Purchases:     purchases.NewManager(store, log),
		Notifications: queue,
		api:           api,
		store:         store,
	}, nil
}

// Checkout turns the current cart into an order and a purchase record.
// The cart is only cleared after the API accepted the order.
func (c *Core) Checkout(ctx context.Context) (purchases.Record, error) {
	lines := c.Cart.Items()
	if len(lines) == 0 {
		return purchases.Record{}, fmt.Errorf("nothing to check out")
	}

	items := make([]order.ItemNew, 0, len(lines))
	for _, l := range lines {
		items = append(items, order.ItemNew{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Image:     l.Image,
		})
	}

	total := c.Cart.Subtotal()
	if _, err := c.api.CreateOrder(ctx, order.OrderNew{Items: items, Total: total}); err != nil {
		c.Notifications.Error("Could not place your order. Please try again.")
		return purchases.Record{}, fmt.Errorf("placing order: %w", err)
	}

	rec := c.Purchases.Add(lines, total)
	c.Cart.Clear()
	c.Notifications.Success("Order placed!")
	return rec, nil
}

// Close waits for in-flight like confirmations and releases the
// snapshot file.
func (c *Core) Close() error {
	c.Likes.Wait()
	return c.store.Close()
}
