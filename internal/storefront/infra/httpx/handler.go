package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/cangroo-storefront/internal/storefront/app"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/catalog"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/rating"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/infra/httpx/middlewares"
)

const (
	msgProductNotFound = "Product not found."
	msgOrderPlaced     = "Order placed successfully! You’ll receive a confirmation email shortly."
)

// Handler serves the storefront JSON API. Cart handlers act on the visitor
// resolved by middlewares.Visitor.
type Handler struct {
	service *app.Service
}

// NewHandler returns a Handler backed by service.
func NewHandler(service *app.Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /products?cat=&q=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	category := strings.TrimSpace(r.URL.Query().Get("cat"))

	listing := h.service.List(category, query)

	writeJSON(w, http.StatusOK, ListResponse{
		Products:   mapProducts(listing.Products),
		Categories: listing.Categories,
		Query:      query,
		ActiveCat:  category,
	})
}

// ProductDetail handles GET /products/{id}.
func (h *Handler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.ProductDetail(chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		writeJSON(w, http.StatusNotFound, FailureResponse{OK: false, Message: msgProductNotFound})
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProductDetailResponse{
		Product: mapProduct(detail.Product),
		Stars:   mapStars(rating.Breakdown(detail.Product.Rating)),
		Related: mapProducts(detail.Related),
	})
}

// Cart handles GET /cart and GET /checkout.
func (h *Handler) Cart(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.CartView(r.Context(), middlewares.VisitorID(r.Context()))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(totals))
}

// AddToCart handles POST /add-to-cart with form fields pid and qty.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	pid := r.FormValue("pid")
	visitor := middlewares.VisitorID(r.Context())

	res, err := h.service.AddToCart(r.Context(), visitor, pid, parseQuantity(r.FormValue("qty")))
	if errors.Is(err, catalog.ErrProductNotFound) {
		slog.WarnContext(r.Context(), "add to cart: unknown product", "request_id", middleware.GetReqID(r.Context()), "visitor_id", visitor, "product_id", pid)
		writeJSON(w, http.StatusNotFound, FailureResponse{OK: false, Message: msgProductNotFound})
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, AddToCartResponse{
		OK:        true,
		CartCount: res.CartCount,
		Message:   "Added " + res.Product.Name + ".",
	})
}

// UpdateCart handles POST /update-cart with form fields pid and qty.
func (h *Handler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.UpdateCart(r.Context(), middlewares.VisitorID(r.Context()),
		r.FormValue("pid"), parseQuantity(r.FormValue("qty")))
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UpdateCartResponse{
		OK:        true,
		CartCount: res.CartCount,
		Summary:   mapSummary(res.Totals),
	})
}

// RemoveFromCart handles POST /remove-from-cart with form field pid.
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.RemoveFromCart(r.Context(), middlewares.VisitorID(r.Context()), r.FormValue("pid"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, RemoveFromCartResponse{OK: true, CartCount: res.CartCount})
}

// Search handles GET /search?q= for the type-ahead box.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	products := h.service.SearchSuggest(r.URL.Query().Get("q"))

	out := make([]SuggestionResponse, 0, len(products))
	for _, p := range products {
		out = append(out, SuggestionResponse{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price.InexactFloat64(),
			Image: p.Image,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Checkout handles POST /checkout. No payment is taken.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.Checkout(r.Context(), middlewares.VisitorID(r.Context()))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CheckoutResponse{
		OK:      true,
		Message: msgOrderPlaced,
		Summary: mapSummary(totals),
	})
}

// Globals handles GET /globals: site name, cart badge count and category nav.
func (h *Handler) Globals(w http.ResponseWriter, r *http.Request) {
	g, err := h.service.Globals(r.Context(), middlewares.VisitorID(r.Context()))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, GlobalsResponse{
		SiteName:   g.SiteName,
		CartCount:  g.CartCount,
		Categories: g.Categories,
	})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"request_id", middleware.GetReqID(r.Context()),
		"visitor_id", middlewares.VisitorID(r.Context()),
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, "session_error", "")
}

// parseQuantity reads a form quantity. Missing or malformed values count as 1
// and out-of-range values are bounded to ±entity.MaxQuantity; the ledger
// applies the per-operation floor.
func parseQuantity(raw string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 1
	}
	return min(max(qty, -entity.MaxQuantity), entity.MaxQuantity)
}

func mapProduct(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.StringFixed(2),
		Category:    p.Category,
		Image:       p.Image,
		Rating:      p.Rating.InexactFloat64(),
		Description: p.Description,
	}
}

func mapProducts(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = mapProduct(p)
	}
	return out
}

func mapStars(stars []rating.Star) []string {
	out := make([]string, len(stars))
	for i, s := range stars {
		out[i] = string(s)
	}
	return out
}

func mapSummary(t entity.Totals) SummaryResponse {
	return SummaryResponse{
		Subtotal: t.Subtotal.StringFixed(2),
		Shipping: t.Shipping.StringFixed(2),
		Tax:      t.Tax.StringFixed(2),
		Total:    t.GrandTotal.StringFixed(2),
	}
}

func mapCart(t entity.Totals) CartResponse {
	lines := make([]CartLineResponse, len(t.Lines))
	for i, l := range t.Lines {
		lines[i] = CartLineResponse{
			Product:   mapProduct(l.Product),
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal.StringFixed(2),
		}
	}
	return CartResponse{Lines: lines, SummaryResponse: mapSummary(t)}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
