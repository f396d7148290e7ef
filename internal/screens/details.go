package screens

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/navigation"
	"github.com/dwikikusuma/storefront/pkg/visit"
)

type Details struct {
	d     Deps
	route navigation.ToProductDetails
	visit visit.Tracker

	mu       sync.Mutex
	cart     cartdomain.Cart
	wishlist cartdomain.Wishlist
	related  []catalog.Product
	quantity int
}

func NewDetails(d Deps, route navigation.ToProductDetails) *Details {
	return &Details{
		d:        d,
		route:    route,
		quantity: 1,
	}
}

func (v *Details) Route() navigation.Route { return v.route }

func (v *Details) Enter(ctx context.Context) error { return v.Load(ctx) }

func (v *Details) Leave() { v.visit.Stop() }

func (v *Details) Product() catalog.Product { return v.route.Product }

// ActionsVisible is false when the product was opened from the cart.
func (v *Details) ActionsVisible() bool { return !v.route.FromCart }

// Load reads cart, wishlist and related products in parallel. A failed
// related-products fetch only leaves that section empty.
func (v *Details) Load(parent context.Context) error {
	ctx, tk := v.visit.Start(parent)

	var (
		cart     cartdomain.Cart
		wishlist cartdomain.Wishlist
		related  []catalog.Product
	)
	var g errgroup.Group
	g.Go(func() error {
		cart = v.d.Cart.LoadCart(ctx)
		return nil
	})
	g.Go(func() error {
		wishlist = v.d.Cart.LoadWishlist(ctx)
		return nil
	})
	g.Go(func() error {
		var err error
		related, err = v.d.Catalog.Related(ctx, v.route.Product)
		if err != nil {
			v.d.logger().WarnContext(ctx, "load related products failed",
				slog.Int("product_id", v.route.Product.ID), slog.Any("err", err))
			related = nil
		}
		return nil
	})
	_ = g.Wait()

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.visit.Current(tk) {
		return ErrSuperseded
	}
	v.cart = cart
	v.wishlist = wishlist
	v.related = related
	return nil
}

func (v *Details) Quantity() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.quantity
}

func (v *Details) Increment() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.quantity++
	return v.quantity
}

// Decrement stops at 1.
func (v *Details) Decrement() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.quantity > 1 {
		v.quantity--
	}
	return v.quantity
}

func (v *Details) Related() []catalog.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]catalog.Product(nil), v.related...)
}

// InCart counts the cart lines holding this product.
func (v *Details) InCart() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := 0
	for _, l := range v.cart {
		if l.ID == v.route.Product.ID {
			n++
		}
	}
	return n
}

func (v *Details) InWishlist() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, p := range v.wishlist {
		if p.ID == v.route.Product.ID {
			return true
		}
	}
	return false
}

// AddToCart appends the product with the chosen quantity to the stored cart.
// On a failed save the line stays in the screen state and an error alert is shown.
func (v *Details) AddToCart(ctx context.Context) error {
	if v.route.FromCart {
		return ErrActionsSuppressed
	}

	cart := v.d.Cart.LoadCart(ctx)
	next, err := v.d.Cart.AddToCart(cart, v.route.Product, v.Quantity())
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.cart = next
	v.mu.Unlock()

	if err := v.d.Cart.PersistCart(ctx, next); err != nil {
		v.d.alert(TitleError, MsgSaveFailed)
		return err
	}
	v.d.alert(TitleSuccess, MsgAddedCart)
	return nil
}

func (v *Details) AddToWishlist(ctx context.Context) error {
	if v.route.FromCart {
		return ErrActionsSuppressed
	}

	next := v.d.Cart.AddToWishlist(v.d.Cart.LoadWishlist(ctx), v.route.Product)

	v.mu.Lock()
	v.wishlist = next
	v.mu.Unlock()

	if err := v.d.Cart.PersistWishlist(ctx, next); err != nil {
		v.d.alert(TitleError, MsgSaveFailed)
		return err
	}
	v.d.alert(TitleSuccess, MsgAddedWishlist)
	return nil
}

func ShareMessage(p catalog.Product) string {
	return fmt.Sprintf("%s - %s\nCheck it out: %s", p.Title, p.Description, p.Image)
}

func (v *Details) Share(ctx context.Context) error {
	if v.route.FromCart {
		return ErrActionsSuppressed
	}
	if v.d.Sharer == nil {
		return nil
	}
	if err := v.d.Sharer.Share(ctx, ShareMessage(v.route.Product)); err != nil {
		v.d.logger().WarnContext(ctx, "share failed", slog.Int("product_id", v.route.Product.ID), slog.Any("err", err))
		return err
	}
	return nil
}

func (v *Details) OpenRelated(p catalog.Product) error {
	return v.d.Nav.Navigate(navigation.ToProductDetails{Product: p})
}
