package entity

import "github.com/shopspring/decimal"

// MaxQuantity caps a single cart entry. Quantities saturate at this value.
const MaxQuantity = 9999

// Cart maps a product ID to the quantity a visitor wants.
// A stored entry always has a quantity in [1, MaxQuantity].
type Cart map[string]int

// NewCart returns an empty cart.
func NewCart() Cart {
	return Cart{}
}

// Clone returns an independent copy so ledger operations never mutate their input.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for id, qty := range c {
		out[id] = qty
	}
	return out
}

// Sanitize drops entries with non-positive quantities and caps the rest at
// MaxQuantity, e.g. after decoding a cart from an untrusted session payload.
func (c Cart) Sanitize() Cart {
	out := make(Cart, len(c))
	for id, qty := range c {
		if qty > 0 {
			out[id] = min(qty, MaxQuantity)
		}
	}
	return out
}

// Line is a derived cart row. It is recomputed on every read.
type Line struct {
	Product   Product
	Quantity  int
	LineTotal decimal.Decimal
}

// Totals is the pricing breakdown of a cart.
type Totals struct {
	Lines      []Line
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}
