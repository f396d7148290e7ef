package screens

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/dwikikusuma/storefront/internal/navigation"
	"github.com/dwikikusuma/storefront/pkg/visit"
)

type Cart struct {
	d     Deps
	visit visit.Tracker

	mu   sync.Mutex
	cart cartdomain.Cart
}

func NewCart(d Deps) *Cart {
	return &Cart{d: d}
}

func (c *Cart) Route() navigation.Route { return navigation.ToCart{} }

func (c *Cart) Enter(ctx context.Context) error { return c.Load(ctx) }

func (c *Cart) Leave() { c.visit.Stop() }

func (c *Cart) Load(parent context.Context) error {
	ctx, tk := c.visit.Start(parent)
	cart := c.d.Cart.LoadCart(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.visit.Current(tk) {
		return ErrSuperseded
	}
	c.cart = cart
	return nil
}

func (c *Cart) Lines() cartdomain.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append(cartdomain.Cart(nil), c.cart...)
}

func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.d.Cart.ComputeTotal(c.cart)
}

func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.d.Cart.ComputeCount(c.cart)
}

// OpenLine shows line i read-only.
func (c *Cart) OpenLine(i int) error {
	c.mu.Lock()
	if i < 0 || i >= len(c.cart) {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrNoSuchLine, i)
	}
	p := c.cart[i].Product
	c.mu.Unlock()

	return c.d.Nav.Navigate(navigation.ToProductDetails{Product: p, FromCart: true})
}

func (c *Cart) ProceedToCheckout() error {
	if c.Count() == 0 {
		c.d.alert(TitleEmptyCart, MsgEmptyCart)
		return checkoutapp.ErrEmptyCart
	}
	return c.d.Nav.Navigate(navigation.ToCheckout{})
}
