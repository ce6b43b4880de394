// Package ledger prices a visitor's cart against the catalog.
//
// Every operation takes a cart value and returns a new one; the input is
// never mutated. Persisting the result is the caller's job.
package ledger

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/catalog"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/domain/entity"
)

const moneyPlaces = 2

// Pricing holds the order-level charges applied on top of the subtotal.
type Pricing struct {
	ShippingFee           decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	TaxRate               decimal.Decimal
}

// DefaultPricing is a flat 6.95 shipping fee, waived from 100.00, and 8% tax.
func DefaultPricing() Pricing {
	return Pricing{
		ShippingFee:           decimal.RequireFromString("6.95"),
		FreeShippingThreshold: decimal.RequireFromString("100.00"),
		TaxRate:               decimal.RequireFromString("0.08"),
	}
}

// Ledger derives cart lines and totals from a catalog.
type Ledger struct {
	catalog *catalog.Catalog
	pricing Pricing
}

// New returns a ledger pricing carts against c.
func New(c *catalog.Catalog, pricing Pricing) *Ledger {
	return &Ledger{catalog: c, pricing: pricing}
}

// AddItem increments productID by max(quantity, 1), saturating at
// entity.MaxQuantity. It fails with catalog.ErrProductNotFound when the
// product does not exist.
func (l *Ledger) AddItem(cart entity.Cart, productID string, quantity int) (entity.Cart, entity.Product, error) {
	p, err := l.catalog.FindByID(productID)
	if err != nil {
		return cart, entity.Product{}, err
	}

	out := cart.Clone()
	current := min(max(out[productID], 0), entity.MaxQuantity)
	add := min(max(quantity, 1), entity.MaxQuantity)
	out[productID] = min(current+add, entity.MaxQuantity)
	return out, p, nil
}

// UpdateItem sets the quantity of an existing entry, removing it at zero.
// Negative quantities count as zero and large ones are capped at
// entity.MaxQuantity. Unknown entries are left alone: update never creates.
func (l *Ledger) UpdateItem(cart entity.Cart, productID string, quantity int) entity.Cart {
	if _, ok := cart[productID]; !ok {
		return cart.Clone()
	}

	out := cart.Clone()
	if qty := min(max(quantity, 0), entity.MaxQuantity); qty == 0 {
		delete(out, productID)
	} else {
		out[productID] = qty
	}
	return out
}

// RemoveItem drops productID if present.
func (l *Ledger) RemoveItem(cart entity.Cart, productID string) entity.Cart {
	out := cart.Clone()
	delete(out, productID)
	return out
}

// TotalQuantity sums every positive quantity in the cart, saturating at math.MaxInt.
func TotalQuantity(cart entity.Cart) int {
	total := 0
	for _, qty := range cart {
		if qty <= 0 {
			continue
		}
		if qty > math.MaxInt-total {
			return math.MaxInt
		}
		total += qty
	}
	return total
}

// ComputeTotals prices the cart. Entries whose product no longer resolves are
// skipped rather than reported. Lines follow catalog order.
//
// Tax is taken on the unrounded subtotal and then rounded. All rounding is
// half-to-even at two places.
func (l *Ledger) ComputeTotals(cart entity.Cart) entity.Totals {
	lines := make([]entity.Line, 0, len(cart))
	subtotal := decimal.Zero

	for _, p := range l.catalog.All() {
		qty, ok := cart[p.ID]
		if !ok || qty <= 0 {
			continue
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(qty)))
		subtotal = subtotal.Add(lineTotal)
		lines = append(lines, entity.Line{
			Product:   p,
			Quantity:  qty,
			LineTotal: lineTotal,
		})
	}

	shipping := l.pricing.ShippingFee
	if subtotal.IsZero() || subtotal.GreaterThanOrEqual(l.pricing.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(l.pricing.TaxRate).RoundBank(moneyPlaces)
	total := subtotal.Add(shipping).Add(tax).RoundBank(moneyPlaces)

	return entity.Totals{
		Lines:      lines,
		Subtotal:   subtotal.RoundBank(moneyPlaces),
		Shipping:   shipping.RoundBank(moneyPlaces),
		Tax:        tax,
		GrandTotal: total,
	}
}

// Checkout always succeeds and leaves the visitor with an empty cart.
func (l *Ledger) Checkout(entity.Cart) entity.Cart {
	return entity.NewCart()
}
