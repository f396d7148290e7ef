package screens

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/dwikikusuma/storefront/internal/navigation"
	"github.com/dwikikusuma/storefront/pkg/visit"
)

type Checkout struct {
	d     Deps
	visit visit.Tracker

	mu           sync.Mutex
	quote        domain.Quote
	form         domain.Form
	confirmation *domain.Confirmation
}

func NewCheckout(d Deps) *Checkout {
	return &Checkout{d: d}
}

func (c *Checkout) Route() navigation.Route { return navigation.ToCheckout{} }

func (c *Checkout) Enter(ctx context.Context) error { return c.Load(ctx) }

func (c *Checkout) Leave() { c.visit.Stop() }

// Load builds the order summary. An empty cart shows an empty summary.
func (c *Checkout) Load(parent context.Context) error {
	ctx, tk := c.visit.Start(parent)

	quote, err := c.d.Checkout.Quote(ctx)
	if errors.Is(err, checkoutapp.ErrEmptyCart) {
		err = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.visit.Current(tk) {
		return ErrSuperseded
	}
	if err != nil {
		return err
	}
	c.quote = quote
	return nil
}

func (c *Checkout) Quote() domain.Quote {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quote
}

func (c *Checkout) SetName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Name = name
}

func (c *Checkout) SetAddress(addr string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Address = addr
}

func (c *Checkout) Form() domain.Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Confirmation is the receipt of the placed order, nil before that.
func (c *Checkout) Confirmation() *domain.Confirmation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmation
}

// PlaceOrder validates the form, clears the cart and moves on to Thank-You.
// Every failure is shown as an alert and keeps the user on this screen.
func (c *Checkout) PlaceOrder(ctx context.Context) error {
	conf, err := c.d.Checkout.PlaceOrder(ctx, c.Form())
	switch {
	case errors.Is(err, checkoutapp.ErrValidation):
		c.d.alert(TitleValidation, MsgValidation)
		return err
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		c.d.alert(TitleEmptyCart, MsgEmptyCart)
		return err
	case err != nil:
		c.d.logger().ErrorContext(ctx, "place order failed", slog.Any("err", err))
		c.d.alert(TitleError, MsgOrderFailed)
		return err
	}

	c.mu.Lock()
	c.confirmation = &conf
	c.quote = domain.Quote{}
	c.mu.Unlock()

	c.d.logger().InfoContext(ctx, "order placed",
		slog.String("order_id", conf.OrderID.String()),
		slog.Int("lines", conf.Lines),
		slog.String("total", conf.Total.StringFixed(2)))

	c.d.alert(TitleOrderPlaced, fmt.Sprintf(MsgOrderPlacedFmt, conf.Name))
	return c.d.Nav.Navigate(navigation.ToThankYou{})
}
