package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/navigation"
)

func TestDetails_LoadRelated(t *testing.T) {
	h := newHarness(redShirt, blueHat, drive)
	v := NewDetails(h.deps, navigation.ToProductDetails{Product: redShirt})

	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ids(v.Related()); !equalIDs(got, []int{2}) {
		t.Fatalf("expected related [2], got %v", got)
	}
	if !v.ActionsVisible() {
		t.Fatalf("actions should be visible from home")
	}
}

func TestDetails_RelatedFailureIsQuiet(t *testing.T) {
	h := newHarness(redShirt)
	h.catalog.err = errors.New("timeout")
	v := NewDetails(h.deps, navigation.ToProductDetails{Product: redShirt})

	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("Load should not fail on related products: %v", err)
	}
	if len(v.Related()) != 0 {
		t.Fatalf("expected no related products")
	}
}

func TestDetails_QuantityStepper(t *testing.T) {
	v := NewDetails(newHarness().deps, navigation.ToProductDetails{Product: redShirt})

	if v.Decrement() != 1 {
		t.Fatalf("quantity must not go below 1")
	}
	v.Increment()
	if v.Increment() != 3 {
		t.Fatalf("expected 3, got %d", v.Quantity())
	}
	if v.Decrement() != 2 {
		t.Fatalf("expected 2, got %d", v.Quantity())
	}
}

func TestDetails_AddSameProductTwice(t *testing.T) {
	h := newHarness(redShirt)
	ctx := context.Background()
	v := NewDetails(h.deps, navigation.ToProductDetails{Product: redShirt})

	for i := 0; i < 2; i++ {
		if err := v.AddToCart(ctx); err != nil {
			t.Fatalf("AddToCart: %v", err)
		}
	}

	if got := h.alerts.last(); got.Title != TitleSuccess || got.Message != MsgAddedCart {
		t.Fatalf("unexpected alert %#v", got)
	}
	cart := h.deps.Cart.LoadCart(ctx)
	if h.deps.Cart.ComputeCount(cart) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart))
	}
	if !h.deps.Cart.ComputeTotal(cart).Equal(decimal.RequireFromString("19.98")) {
		t.Fatalf("expected 19.98, got %s", h.deps.Cart.ComputeTotal(cart))
	}
	if v.InCart() != 2 {
		t.Fatalf("expected InCart 2, got %d", v.InCart())
	}
}

func TestDetails_AddUsesQuantity(t *testing.T) {
	h := newHarness(redShirt)
	ctx := context.Background()
	v := NewDetails(h.deps, navigation.ToProductDetails{Product: redShirt})
	v.Increment()
	v.Increment()

	if err := v.AddToCart(ctx); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	cart := h.deps.Cart.LoadCart(ctx)
	if len(cart) != 1 || cart[0].Quantity != 3 {
		t.Fatalf("unexpected cart %#v", cart)
	}
}

func TestDetails_WishlistAndShare(t *testing.T) {
	h := newHarness(redShirt)
	ctx := context.Background()
	v := NewDetails(h.deps, navigation.ToProductDetails{Product: redShirt})

	if err := v.AddToWishlist(ctx); err != nil {
		t.Fatalf("AddToWishlist: %v", err)
	}
	if got := h.alerts.last(); got.Message != MsgAddedWishlist {
		t.Fatalf("unexpected alert %#v", got)
	}
	if !v.InWishlist() || len(h.deps.Cart.LoadWishlist(ctx)) != 1 {
		t.Fatalf("expected product in wishlist")
	}

	if err := v.Share(ctx); err != nil {
		t.Fatalf("Share: %v", err)
	}
	want := "Red Shirt - Cotton\nCheck it out: https://img/1.png"
	if len(h.sharer.msgs) != 1 || h.sharer.msgs[0] != want {
		t.Fatalf("unexpected share messages %q", h.sharer.msgs)
	}
}

func TestDetails_PersistFailureKeepsState(t *testing.T) {
	h := newHarness(redShirt)
	h.store.failSet = true
	ctx := context.Background()
	v := NewDetails(h.deps, navigation.ToProductDetails{Product: redShirt})

	if err := v.AddToCart(ctx); !errors.Is(err, cartapp.ErrPersist) {
		t.Fatalf("expected ErrPersist, got %v", err)
	}
	if got := h.alerts.last(); got.Title != TitleError {
		t.Fatalf("expected error alert, got %#v", got)
	}
	if v.InCart() != 1 {
		t.Fatalf("screen state keeps the line after a failed save")
	}
	if len(h.deps.Cart.LoadCart(ctx)) != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestDetails_FromCartSuppressesActions(t *testing.T) {
	h := newHarness(redShirt)
	ctx := context.Background()
	v := NewDetails(h.deps, navigation.ToProductDetails{Product: redShirt, FromCart: true})

	if v.ActionsVisible() {
		t.Fatalf("actions must be hidden")
	}
	for name, act := range map[string]func(context.Context) error{
		"cart":     v.AddToCart,
		"wishlist": v.AddToWishlist,
		"share":    v.Share,
	} {
		if err := act(ctx); !errors.Is(err, ErrActionsSuppressed) {
			t.Fatalf("%s: expected ErrActionsSuppressed, got %v", name, err)
		}
	}
	if len(h.alerts.got) != 0 || len(h.sharer.msgs) != 0 {
		t.Fatalf("suppressed actions must have no effect")
	}
}

func TestDetails_OpenRelated(t *testing.T) {
	h := newHarness(redShirt, blueHat)
	if err := h.deps.Nav.Navigate(navigation.ToProductDetails{Product: redShirt}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	v := NewDetails(h.deps, navigation.ToProductDetails{Product: redShirt})

	if err := v.OpenRelated(blueHat); err != nil {
		t.Fatalf("OpenRelated: %v", err)
	}
	if h.deps.Nav.Depth() != 3 {
		t.Fatalf("expected depth 3, got %d", h.deps.Nav.Depth())
	}
}
