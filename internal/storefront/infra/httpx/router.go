package httpx

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/cangroo-storefront/internal/storefront/infra/httpx/middlewares"
)

// RouterOptions configures the visitor cookie.
type RouterOptions struct {
	VisitorCookie string
	VisitorMaxAge time.Duration
}

// NewRouter mounts the storefront API. Cart routes sit behind the visitor cookie.
func NewRouter(handler *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.Trace)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handler.Health)
	r.Get("/search", handler.Search)

	r.Group(func(r chi.Router) {
		r.Use(middlewares.Visitor(opts.VisitorCookie, opts.VisitorMaxAge))

		r.Get("/", handler.List)
		r.Get("/products", handler.List)
		r.Get("/products/{id}", handler.ProductDetail)
		r.Get("/globals", handler.Globals)

		r.Get("/cart", handler.Cart)
		r.Get("/checkout", handler.Cart)
		r.Post("/add-to-cart", handler.AddToCart)
		r.Post("/update-cart", handler.UpdateCart)
		r.Post("/remove-from-cart", handler.RemoveFromCart)
		r.Post("/checkout", handler.Checkout)
	})

	return r
}
