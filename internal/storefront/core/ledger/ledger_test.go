package ledger

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/catalog"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}

func pricedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]entity.Product{
		{ID: "p-9999", Name: "Almost", Price: dec("99.99"), Category: "Test"},
		{ID: "p-10000", Name: "Exactly", Price: dec("100.00"), Category: "Test"},
		{ID: "p-1999", Name: "Tote", Price: dec("19.99"), Category: "Test"},
		{ID: "p-0001", Name: "Penny", Price: dec("0.01"), Category: "Test"},
	})
	require.NoError(t, err)
	return c
}

func TestAddItem(t *testing.T) {
	l := New(catalog.Default(), DefaultPricing())

	t.Run("creates entry", func(t *testing.T) {
		cart, p, err := l.AddItem(entity.NewCart(), "kang-001", 2)
		require.NoError(t, err)
		assert.Equal(t, "Cangroo Canvas Tote", p.Name)
		assert.Equal(t, entity.Cart{"kang-001": 2}, cart)
	})

	t.Run("increments existing entry", func(t *testing.T) {
		cart, _, err := l.AddItem(entity.Cart{"kang-001": 2}, "kang-001", 3)
		require.NoError(t, err)
		assert.Equal(t, entity.Cart{"kang-001": 5}, cart)
	})

	for _, qty := range []int{0, -4} {
		t.Run("non-positive quantity counts as one", func(t *testing.T) {
			cart, _, err := l.AddItem(entity.Cart{"kang-002": 1}, "kang-002", qty)
			require.NoError(t, err)
			assert.Equal(t, entity.Cart{"kang-002": 2}, cart)
		})
	}

	t.Run("unknown product", func(t *testing.T) {
		in := entity.Cart{"kang-001": 1}
		cart, _, err := l.AddItem(in, "nope", 1)
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
		assert.Equal(t, entity.Cart{"kang-001": 1}, cart)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := entity.Cart{"kang-001": 1}
		_, _, err := l.AddItem(in, "kang-001", 1)
		require.NoError(t, err)
		assert.Equal(t, entity.Cart{"kang-001": 1}, in)
	})
}

func TestAddItem_SaturatesAtMaxQuantity(t *testing.T) {
	l := New(catalog.Default(), DefaultPricing())

	cart, _, err := l.AddItem(entity.Cart{"kang-001": 2}, "kang-001", math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, entity.Cart{"kang-001": entity.MaxQuantity}, cart)

	cart, _, err = l.AddItem(cart, "kang-001", 5)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxQuantity, cart["kang-001"])

	cart, _, err = l.AddItem(entity.Cart{"kang-001": math.MaxInt}, "kang-001", 1)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxQuantity, cart["kang-001"])
	assert.Equal(t, entity.MaxQuantity, TotalQuantity(cart))
}

func TestUpdateItem_CapsQuantity(t *testing.T) {
	l := New(catalog.Default(), DefaultPricing())

	cart := l.UpdateItem(entity.Cart{"kang-001": 1}, "kang-001", math.MaxInt)
	assert.Equal(t, entity.Cart{"kang-001": entity.MaxQuantity}, cart)
}

func TestUpdateItem(t *testing.T) {
	l := New(catalog.Default(), DefaultPricing())

	tests := []struct {
		name string
		in   entity.Cart
		id   string
		qty  int
		want entity.Cart
	}{
		{"sets quantity", entity.Cart{"kang-001": 1}, "kang-001", 7, entity.Cart{"kang-001": 7}},
		{"zero removes", entity.Cart{"kang-001": 1, "kang-002": 1}, "kang-001", 0, entity.Cart{"kang-002": 1}},
		{"negative removes", entity.Cart{"kang-001": 3}, "kang-001", -2, entity.Cart{}},
		{"never creates", entity.Cart{"kang-001": 1}, "kang-002", 5, entity.Cart{"kang-001": 1}},
		{"zero on absent entry is a no-op", entity.Cart{}, "kang-001", 0, entity.Cart{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.UpdateItem(tt.in, tt.id, tt.qty))
		})
	}
}

func TestRemoveItem(t *testing.T) {
	l := New(catalog.Default(), DefaultPricing())

	assert.Equal(t, entity.Cart{"kang-002": 1}, l.RemoveItem(entity.Cart{"kang-001": 4, "kang-002": 1}, "kang-001"))
	assert.Equal(t, entity.Cart{"kang-002": 1}, l.RemoveItem(entity.Cart{"kang-002": 1}, "kang-001"))
}

func TestTotalQuantity(t *testing.T) {
	assert.Equal(t, 0, TotalQuantity(entity.NewCart()))
	assert.Equal(t, 6, TotalQuantity(entity.Cart{"a": 1, "b": 2, "c": 3}))
	assert.Equal(t, math.MaxInt, TotalQuantity(entity.Cart{"a": math.MaxInt, "b": math.MaxInt}))
}

func TestComputeTotals_Shipping(t *testing.T) {
	l := New(pricedCatalog(t), DefaultPricing())

	tests := []struct {
		name         string
		cart         entity.Cart
		wantSubtotal string
		wantShipping string
	}{
		{"empty cart ships free", entity.NewCart(), "0.00", "0.00"},
		{"just below threshold", entity.Cart{"p-9999": 1}, "99.99", "6.95"},
		{"at threshold", entity.Cart{"p-10000": 1}, "100.00", "0.00"},
		{"above threshold", entity.Cart{"p-9999": 1, "p-0001": 2}, "100.01", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := l.ComputeTotals(tt.cart)
			assertMoney(t, tt.wantSubtotal, totals.Subtotal)
			assertMoney(t, tt.wantShipping, totals.Shipping)
		})
	}
}

func TestComputeTotals_TaxRounding(t *testing.T) {
	l := New(pricedCatalog(t), DefaultPricing())

	totals := l.ComputeTotals(entity.Cart{"p-1999": 1})

	require.Len(t, totals.Lines, 1)
	assertMoney(t, "19.99", totals.Lines[0].LineTotal)
	assertMoney(t, "19.99", totals.Subtotal)
	assertMoney(t, "6.95", totals.Shipping)
	assertMoney(t, "1.60", totals.Tax)
	assertMoney(t, "28.54", totals.GrandTotal)
}

func TestComputeTotals_DefaultCatalog(t *testing.T) {
	l := New(catalog.Default(), DefaultPricing())

	totals := l.ComputeTotals(entity.Cart{"kang-002": 1, "kang-001": 5})

	require.Len(t, totals.Lines, 2)
	assert.Equal(t, "kang-001", totals.Lines[0].Product.ID)
	assert.Equal(t, 5, totals.Lines[0].Quantity)
	assertMoney(t, "99.95", totals.Lines[0].LineTotal)
	assert.Equal(t, "kang-002", totals.Lines[1].Product.ID)

	assertMoney(t, "174.45", totals.Subtotal)
	assertMoney(t, "0.00", totals.Shipping)
	assertMoney(t, "13.96", totals.Tax)
	assertMoney(t, "188.41", totals.GrandTotal)
}

// Stale entries are skipped when pricing, not pruned and not reported.
func TestComputeTotals_StaleEntriesAreDropped(t *testing.T) {
	l := New(catalog.Default(), DefaultPricing())

	withGhost := l.ComputeTotals(entity.Cart{"kang-001": 1, "retired-sku": 3})
	clean := l.ComputeTotals(entity.Cart{"kang-001": 1})

	assert.Equal(t, clean, withGhost)
	require.Len(t, withGhost.Lines, 1)
}

func TestComputeTotals_CustomPricing(t *testing.T) {
	l := New(pricedCatalog(t), Pricing{
		ShippingFee:           dec("4.00"),
		FreeShippingThreshold: dec("50.00"),
		TaxRate:               dec("0.10"),
	})

	totals := l.ComputeTotals(entity.Cart{"p-1999": 2})
	assertMoney(t, "39.98", totals.Subtotal)
	assertMoney(t, "4.00", totals.Shipping)
	assertMoney(t, "4.00", totals.Tax)
	assertMoney(t, "47.98", totals.GrandTotal)
}

func TestCheckout_Resets(t *testing.T) {
	l := New(catalog.Default(), DefaultPricing())

	cart := l.Checkout(entity.Cart{"kang-001": 2, "kang-005": 1})

	assert.Equal(t, 0, TotalQuantity(cart))
	totals := l.ComputeTotals(cart)
	assert.Empty(t, totals.Lines)
	assertMoney(t, "0.00", totals.Subtotal)
	assertMoney(t, "0.00", totals.Shipping)
	assertMoney(t, "0.00", totals.Tax)
	assertMoney(t, "0.00", totals.GrandTotal)
}
