package state_test

import (
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"zipper/api"
	"zipper/client"
	"zipper/config"
	"zipper/core/like"
	"zipper/core/order"
	"zipper/core/product"
	"zipper/state"
	"zipper/state/cart"
)

func openCore(t *testing.T) (*state.Core, *order.MemoryStore) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	orders := order.NewMemoryStore()
	mux := api.APIMux(api.APIConfig{
		Log:          log,
		ProductStore: product.NewMemoryStore(),
		LikeStore:    like.NewMemoryStore("1", "3"),
		OrderStore:   orders,
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := config.State{
		Path:            filepath.Join(t.TempDir(), "state.db"),
		NotificationTTL: 50 * time.Millisecond,
	}

	core, err := state.Open(cfg, client.New(srv.URL, 5*time.Second), log)
	if err != nil {
		t.Fatalf("opening state core: %v", err)
	}
	t.Cleanup(func() { core.Close() })

	return core, orders
}

func TestCheckout(t *testing.T) {
	core, orders := openCore(t)
	ctx := context.Background()

	core.Cart.Add(cart.Item{ProductID: "1", Name: "Headphones", Price: 299.99}, 1)
	core.Cart.Add(cart.Item{ProductID: "6", Name: "Shoes", Price: 129.99}, 2)

	rec, err := core.Checkout(ctx)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	wantTotal := 299.99 + 2*129.99
	if rec.Total != wantTotal {
		t.Fatalf("expected total %v, got %v", wantTotal, rec.Total)
	}
	if len(core.Cart.Items()) != 0 {
		t.Fatal("checkout must clear the cart")
	}
	if got := core.Purchases.All(); len(got) != 1 || got[0].Total != wantTotal {
		t.Fatalf("purchase log not updated: %+v", got)
	}
	if len(orders.Orders) != 1 {
		t.Fatalf("expected one stored order, got %d", len(orders.Orders))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	core, orders := openCore(t)

	if _, err := core.Checkout(context.Background()); err == nil {
		t.Fatal("expected an error checking out an empty cart")
	}
	if len(orders.Orders) != 0 {
		t.Fatalf("no order should be placed, got %d", len(orders.Orders))
	}
}

func TestLikesAgainstAPI(t *testing.T) {
	core, _ := openCore(t)

	core.Likes.Hydrate(context.Background())
	if !core.Likes.IsLiked("1") || !core.Likes.IsLiked("3") {
		t.Fatalf("hydration missed seeded likes: %v", core.Likes.LikedIDs())
	}

	// Unlike product 1 against the live API; the optimistic state must
	// survive confirmation.
	core.Likes.Toggle("1")
	if core.Likes.IsLiked("1") {
		t.Fatal("optimistic unlike must apply immediately")
	}
	core.Likes.Wait()
	if core.Likes.IsLiked("1") {
		t.Fatal("confirmed unlike must stay applied")
	}

	// Liking an unknown product fails remotely and rolls back.
	core.Likes.Toggle("no-such-product")
	core.Likes.Wait()
	if core.Likes.IsLiked("no-such-product") {
		t.Fatal("failed like must roll back")
	}
}
