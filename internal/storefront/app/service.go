// Package app binds the catalog, the cart ledger and a cart store into the
// operations the storefront HTTP layer calls. Each cart operation loads the
// visitor's cart, applies one ledger step and writes the result back.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/catalog"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/ledger"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/ports"
)

const (
	relatedLimit = 4
	suggestLimit = 6
)

// Listing is a filtered product page plus the category navigation.
type Listing struct {
	Products   []entity.Product
	Categories []string
}

// ProductDetail is a product with up to four same-category products.
type ProductDetail struct {
	Product entity.Product
	Related []entity.Product
}

// CartResult is the visitor's cart after a mutation and its item count.
type CartResult struct {
	Cart      entity.Cart
	CartCount int
}

// AddResult also carries the product that was added.
type AddResult struct {
	CartResult
	Product entity.Product
}

// UpdateResult also carries the repriced totals.
type UpdateResult struct {
	CartResult
	Totals entity.Totals
}

// Globals are the values every page shows in its chrome.
type Globals struct {
	SiteName   string
	CartCount  int
	Categories []string
}

// Service runs storefront operations for one visitor at a time.
type Service struct {
	catalog  *catalog.Catalog
	ledger   *ledger.Ledger
	store    ports.CartStore
	siteName string
}

// NewService wires the catalog, ledger and cart store together.
func NewService(c *catalog.Catalog, l *ledger.Ledger, store ports.CartStore, siteName string) *Service {
	return &Service{catalog: c, ledger: l, store: store, siteName: siteName}
}

// List filters the catalog by category and free text.
func (s *Service) List(category, query string) Listing {
	return Listing{
		Products:   s.catalog.Filter(category, query),
		Categories: s.catalog.Categories(),
	}
}

// ProductDetail returns catalog.ErrProductNotFound for unknown IDs.
func (s *Service) ProductDetail(id string) (ProductDetail, error) {
	p, err := s.catalog.FindByID(id)
	if err != nil {
		return ProductDetail{}, err
	}
	return ProductDetail{Product: p, Related: s.catalog.Related(p, relatedLimit)}, nil
}

// SearchSuggest returns up to six type-ahead matches; an empty query yields none.
func (s *Service) SearchSuggest(query string) []entity.Product {
	return s.catalog.Suggest(query, suggestLimit)
}

// Globals computes the page chrome values for visitorID.
func (s *Service) Globals(ctx context.Context, visitorID string) (Globals, error) {
	cart, err := s.load(ctx, visitorID)
	if err != nil {
		return Globals{}, err
	}
	return Globals{
		SiteName:   s.siteName,
		CartCount:  ledger.TotalQuantity(cart),
		Categories: s.catalog.Categories(),
	}, nil
}

// CartView prices the visitor's current cart.
func (s *Service) CartView(ctx context.Context, visitorID string) (entity.Totals, error) {
	cart, err := s.load(ctx, visitorID)
	if err != nil {
		return entity.Totals{}, err
	}
	return s.ledger.ComputeTotals(cart), nil
}

// AddToCart fails with catalog.ErrProductNotFound and leaves the stored cart untouched.
func (s *Service) AddToCart(ctx context.Context, visitorID, productID string, quantity int) (AddResult, error) {
	cart, err := s.load(ctx, visitorID)
	if err != nil {
		return AddResult{}, err
	}

	cart, p, err := s.ledger.AddItem(cart, productID, quantity)
	if err != nil {
		return AddResult{}, err
	}
	if err := s.save(ctx, visitorID, cart); err != nil {
		return AddResult{}, err
	}

	slog.DebugContext(ctx, "item added to cart", "visitor_id", visitorID, "product_id", productID, "quantity", cart[productID])
	return AddResult{CartResult: result(cart), Product: p}, nil
}

// UpdateCart sets a quantity on an existing entry and returns fresh totals.
func (s *Service) UpdateCart(ctx context.Context, visitorID, productID string, quantity int) (UpdateResult, error) {
	cart, err := s.load(ctx, visitorID)
	if err != nil {
		return UpdateResult{}, err
	}

	updated := s.ledger.UpdateItem(cart, productID, quantity)
	if _, existed := cart[productID]; existed {
		if err := s.save(ctx, visitorID, updated); err != nil {
			return UpdateResult{}, err
		}
	}

	return UpdateResult{CartResult: result(updated), Totals: s.ledger.ComputeTotals(updated)}, nil
}

// RemoveFromCart drops an entry; absent entries are not an error.
func (s *Service) RemoveFromCart(ctx context.Context, visitorID, productID string) (CartResult, error) {
	cart, err := s.load(ctx, visitorID)
	if err != nil {
		return CartResult{}, err
	}
	if _, ok := cart[productID]; !ok {
		return result(cart), nil
	}

	cart = s.ledger.RemoveItem(cart, productID)
	if err := s.save(ctx, visitorID, cart); err != nil {
		return CartResult{}, err
	}
	return result(cart), nil
}

// Checkout prices the cart one last time and empties it. Nothing is charged
// and nothing is recorded; the returned totals are for the confirmation only.
func (s *Service) Checkout(ctx context.Context, visitorID string) (entity.Totals, error) {
	cart, err := s.load(ctx, visitorID)
	if err != nil {
		return entity.Totals{}, err
	}
	totals := s.ledger.ComputeTotals(cart)

	if err := s.save(ctx, visitorID, s.ledger.Checkout(cart)); err != nil {
		return entity.Totals{}, err
	}

	slog.InfoContext(ctx, "checkout completed", "visitor_id", visitorID, "lines", len(totals.Lines), "total", totals.GrandTotal.StringFixed(2))
	return totals, nil
}

func (s *Service) load(ctx context.Context, visitorID string) (entity.Cart, error) {
	cart, err := s.store.Load(ctx, visitorID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cart == nil {
		cart = entity.NewCart()
	}
	return cart, nil
}

func (s *Service) save(ctx context.Context, visitorID string, cart entity.Cart) error {
	if err := s.store.Save(ctx, visitorID, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func result(cart entity.Cart) CartResult {
	return CartResult{Cart: cart, CartCount: ledger.TotalQuantity(cart)}
}
