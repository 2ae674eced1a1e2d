package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"zipper/api/middleware"
	"zipper/api/web"
	"zipper/core/category"
	"zipper/core/like"
	"zipper/core/order"
	"zipper/core/product"
	"zipper/rate"
)

type APIConfig struct {
	CorsOrigin   string
	Log          logrus.FieldLogger
	ProductStore product.Store
	LikeStore    like.Store
	OrderStore   order.Store
	Limiter      *rate.Limiter
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

// APIMux builds the storefront route table with the shared middleware
// chain applied to every handler.
func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.Limiter != nil {
		a.mw = append(a.mw, middleware.RateLimit(cfg.Limiter))
	}

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	cat := product.NewCatalog(cfg.ProductStore, product.SampleProducts())

	a.Handle(http.MethodGet, "/api/products", product.HandleList(cat))
	a.Handle(http.MethodPost, "/api/products", product.HandleCreate(cfg.ProductStore))
	a.Handle(http.MethodGet, "/api/products/{id}", product.HandleShow(cat))
	a.Handle(http.MethodPut, "/api/products/{id}", product.HandleUpdate(cfg.ProductStore))
	a.Handle(http.MethodDelete, "/api/products/{id}", product.HandleDelete(cfg.ProductStore))

	a.Handle(http.MethodGet, "/api/products/{id}/reviews", product.HandleListReviews())
	a.Handle(http.MethodPost, "/api/products/{id}/reviews", product.HandleCreateReview())

	a.Handle(http.MethodGet, "/api/liked", like.HandleListLiked(cfg.LikeStore, cat))
	a.Handle(http.MethodPost, "/api/products/{id}/like", like.HandleLike(cfg.LikeStore, cat))
	a.Handle(http.MethodDelete, "/api/products/{id}/unlike", like.HandleUnlike(cfg.LikeStore))

	a.Handle(http.MethodGet, "/api/categories", category.HandleList())

	a.Handle(http.MethodPost, "/api/orders", order.HandleCreate(cfg.OrderStore))

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {
	handler = web.WrapMiddleware(mw, handler)
	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {
			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
