package order

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"zipper/api/web"
	"zipper/api/weberr"
	"zipper/validate"
)

// HandleCreate records a new pending order and returns its id.
func HandleCreate(store Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var on OrderNew
		if err := web.Decode(w, r, &on); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding order: %w", err))
		}

		if err := validate.Check(on); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		items := make([]Item, 0, len(on.Items))
		for _, it := range on.Items {
			items = append(items, Item{
				ProductID: it.ProductID,
				Name:      it.Name,
				Price:     it.Price,
				Quantity:  it.Quantity,
				Image:     it.Image,
			})
		}

		ord := Order{
			Items:     items,
			Total:     on.Total,
			Status:    Pending,
			CreatedAt: time.Now().UTC(),
		}

		id, err := store.Create(ctx, ord)
		if err != nil {
			return fmt.Errorf("creating order: %w", err)
		}

		resp := struct {
			Message string `json:"message"`
			ID      string `json:"id"`
		}{"Order placed!", id}
		return web.Respond(ctx, w, resp, http.StatusCreated)
	}
}
