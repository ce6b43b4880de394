package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/catalog"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/ledger"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/infra/adapters/session"
)

type failingStore struct{ err error }

func (f failingStore) Load(context.Context, string) (entity.Cart, error) { return nil, f.err }
func (f failingStore) Save(context.Context, string, entity.Cart) error  { return f.err }

func newTestService(t *testing.T) (*Service, *session.MemoryStore) {
	t.Helper()
	c := catalog.Default()
	store := session.NewMemoryStore()
	return NewService(c, ledger.New(c, ledger.DefaultPricing()), store, "cangroo"), store
}

func TestService_AddUpdateRemove(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	added, err := svc.AddToCart(ctx, "v1", "kang-001", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, added.CartCount)
	assert.Equal(t, "Cangroo Canvas Tote", added.Product.Name)

	added, err = svc.AddToCart(ctx, "v1", "kang-002", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, added.CartCount)

	updated, err := svc.UpdateCart(ctx, "v1", "kang-001", 5)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.CartCount)
	assert.Equal(t, "174.45", updated.Totals.Subtotal.StringFixed(2))

	removed, err := svc.RemoveFromCart(ctx, "v1", "kang-002")
	require.NoError(t, err)
	assert.Equal(t, 5, removed.CartCount)

	stored, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, entity.Cart{"kang-001": 5}, stored)

	other, err := store.Load(ctx, "v2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestService_AddUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	_, err := svc.AddToCart(ctx, "v1", "missing", 1)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	stored, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestService_UpdateNeverCreates(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	res, err := svc.UpdateCart(ctx, "v1", "kang-003", 4)
	require.NoError(t, err)
	assert.Equal(t, 0, res.CartCount)
	assert.Equal(t, "0.00", res.Totals.GrandTotal.StringFixed(2))

	stored, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestService_CheckoutResets(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddToCart(ctx, "v1", "kang-005", 1)
	require.NoError(t, err)

	totals, err := svc.Checkout(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "89.00", totals.Subtotal.StringFixed(2))

	view, err := svc.CartView(ctx, "v1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, "0.00", view.GrandTotal.StringFixed(2))

	g, err := svc.Globals(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 0, g.CartCount)
	assert.Equal(t, "cangroo", g.SiteName)
}

func TestService_CartViewSkipsStaleEntries(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	require.NoError(t, store.Save(ctx, "v1", entity.Cart{"kang-001": 1, "discontinued": 2}))

	view, err := svc.CartView(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "28.54", view.GrandTotal.StringFixed(2))

	g, err := svc.Globals(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 3, g.CartCount)
}

func TestService_ProductDetail(t *testing.T) {
	svc, _ := newTestService(t)

	d, err := svc.ProductDetail("kang-001")
	require.NoError(t, err)
	require.Len(t, d.Related, 1)
	assert.Equal(t, "kang-005", d.Related[0].ID)

	_, err = svc.ProductDetail("nope")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestService_SearchSuggest(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Empty(t, svc.SearchSuggest(""))
	assert.Len(t, svc.SearchSuggest("cangroo"), 6)
}

func TestService_StoreErrorsPropagate(t *testing.T) {
	c := catalog.Default()
	boom := errors.New("store down")
	svc := NewService(c, ledger.New(c, ledger.DefaultPricing()), failingStore{err: boom}, "cangroo")

	_, err := svc.CartView(context.Background(), "v1")
	assert.ErrorIs(t, err, boom)

	_, err = svc.AddToCart(context.Background(), "v1", "kang-001", 1)
	assert.ErrorIs(t, err, boom)
}
