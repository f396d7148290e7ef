package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/logger"
)

type fakeRepo struct {
	cart     domain.Cart
	wishlist domain.Wishlist
	loadErr  error
	saveErr  error
	cleared  bool
}

func (f *fakeRepo) LoadCart(context.Context) (domain.Cart, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.cart, nil
}

func (f *fakeRepo) SaveCart(_ context.Context, cart domain.Cart) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.cart = cart
	return nil
}

func (f *fakeRepo) ClearCart(context.Context) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.cart = nil
	f.cleared = true
	return nil
}

func (f *fakeRepo) LoadWishlist(context.Context) (domain.Wishlist, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.wishlist, nil
}

func (f *fakeRepo) SaveWishlist(_ context.Context, wishlist domain.Wishlist) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.wishlist = wishlist
	return nil
}

func newManager(repo Repo) *Manager {
	return NewManager(repo, logger.Discard())
}

var shirt = catalog.Product{ID: 1, Title: "Shirt", Price: 9.99, Category: "men's clothing"}

func TestManager_LoadSwallowsErrors(t *testing.T) {
	m := newManager(&fakeRepo{loadErr: errors.New("corrupt")})
	ctx := context.Background()

	if cart := m.LoadCart(ctx); cart == nil || len(cart) != 0 {
		t.Fatalf("expected empty cart, got %#v", cart)
	}
	if wl := m.LoadWishlist(ctx); wl == nil || len(wl) != 0 {
		t.Fatalf("expected empty wishlist, got %#v", wl)
	}
}

func TestManager_AddToCartAppendsWithoutMerging(t *testing.T) {
	repo := &fakeRepo{}
	m := newManager(repo)
	ctx := context.Background()

	cart := m.LoadCart(ctx)
	for i := 0; i < 2; i++ {
		next, err := m.AddToCart(cart, shirt, 1)
		if err != nil {
			t.Fatalf("AddToCart: %v", err)
		}
		if err := m.PersistCart(ctx, next); err != nil {
			t.Fatalf("PersistCart: %v", err)
		}
		cart = m.LoadCart(ctx)
	}

	if m.ComputeCount(cart) != 2 {
		t.Fatalf("expected 2 lines, got %d", m.ComputeCount(cart))
	}
	if want := decimal.RequireFromString("19.98"); !m.ComputeTotal(cart).Equal(want) {
		t.Fatalf("expected total %s, got %s", want, m.ComputeTotal(cart))
	}
}

func TestManager_AddToCartDoesNotMutateInput(t *testing.T) {
	m := newManager(&fakeRepo{})
	base := make(domain.Cart, 1, 4)
	base[0] = domain.CartLine{Product: shirt, Quantity: 1}

	a, err := m.AddToCart(base, catalog.Product{ID: 2, Price: 1}, 1)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	b, err := m.AddToCart(base, catalog.Product{ID: 3, Price: 1}, 2)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	if len(base) != 1 {
		t.Fatalf("input changed: %#v", base)
	}
	if a[1].ID != 2 || b[1].ID != 3 || b[1].Quantity != 2 {
		t.Fatalf("results share storage: a=%#v b=%#v", a, b)
	}
}

func TestManager_AddToCartRejectsQuantity(t *testing.T) {
	m := newManager(&fakeRepo{})
	for _, q := range []int{0, -1} {
		if _, err := m.AddToCart(nil, shirt, q); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("quantity %d: expected ErrInvalidInput, got %v", q, err)
		}
	}
}

func TestManager_AddToWishlistAllowsDuplicates(t *testing.T) {
	m := newManager(&fakeRepo{})
	wl := m.AddToWishlist(nil, shirt)
	wl = m.AddToWishlist(wl, shirt)
	if len(wl) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(wl))
	}
}

func TestManager_PersistFailures(t *testing.T) {
	boom := errors.New("quota exceeded")
	m := newManager(&fakeRepo{saveErr: boom})
	ctx := context.Background()

	if err := m.PersistCart(ctx, domain.Cart{{Product: shirt}}); !errors.Is(err, ErrPersist) || !errors.Is(err, boom) {
		t.Fatalf("PersistCart: expected ErrPersist wrapping cause, got %v", err)
	}
	if err := m.PersistWishlist(ctx, domain.Wishlist{shirt}); !errors.Is(err, ErrPersist) {
		t.Fatalf("PersistWishlist: expected ErrPersist, got %v", err)
	}
	if err := m.ClearCart(ctx); !errors.Is(err, ErrPersist) {
		t.Fatalf("ClearCart: expected ErrPersist, got %v", err)
	}
}

func TestManager_ClearCart(t *testing.T) {
	repo := &fakeRepo{cart: domain.Cart{{Product: shirt}}}
	m := newManager(repo)
	ctx := context.Background()

	if err := m.ClearCart(ctx); err != nil {
		t.Fatalf("ClearCart: %v", err)
	}
	if !repo.cleared || m.ComputeCount(m.LoadCart(ctx)) != 0 {
		t.Fatalf("expected cart cleared")
	}
}

func TestManager_EmptyTotals(t *testing.T) {
	m := newManager(&fakeRepo{})
	if !m.ComputeTotal(nil).IsZero() || m.ComputeCount(nil) != 0 {
		t.Fatalf("empty cart must total zero")
	}
}
