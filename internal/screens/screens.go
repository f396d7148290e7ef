// Package screens holds the UI-agnostic controllers of the storefront. Each
// controller keeps the view state of one screen and exposes the user actions
// that screen offers. Rendering is left to the driver.
package screens

import (
	"context"
	"errors"
	"log/slog"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/dwikikusuma/storefront/internal/navigation"
)

// User-visible texts.
const (
	MsgLoadFailed = "Failed to load products"

	TitleSuccess      = "Success"
	MsgAddedCart      = "Product added to cart!"
	MsgAddedWishlist  = "Product added to wishlist!"
	TitleError        = "Error"
	MsgSaveFailed     = "Could not save your changes. Please try again."
	TitleEmptyCart    = "Empty Cart"
	MsgEmptyCart      = "Your cart is empty. Add items to the cart before proceeding to checkout."
	TitleValidation   = "Validation Error"
	MsgValidation     = "Please fill out all fields"
	TitleOrderPlaced  = "Order Placed"
	MsgOrderPlacedFmt = "Thank you, %s. Your order has been placed!"
	MsgOrderFailed    = "Could not place your order. Please try again."
)

var (
	// ErrActionsSuppressed is returned by the add and share actions of a
	// product opened from the cart.
	ErrActionsSuppressed = errors.New("action not available for a product opened from the cart")
	// ErrSuperseded means a newer load or leaving the screen made this result stale.
	ErrSuperseded = errors.New("superseded by a newer load")
	ErrNoSuchLine = errors.New("no such cart line")
)

type Alert struct {
	Title   string
	Message string
}

type Alerter interface {
	Alert(a Alert)
}

type Sharer interface {
	Share(ctx context.Context, message string) error
}

// Catalog is the read side of the product catalog the screens need.
type Catalog interface {
	ListByCategory(ctx context.Context, category string) ([]catalog.Product, error)
	Related(ctx context.Context, p catalog.Product) ([]catalog.Product, error)
	Categories() []catalog.Category
}

type Deps struct {
	Catalog  Catalog
	Cart     *cartapp.Manager
	Checkout *checkoutapp.Service
	Nav      *navigation.Navigator
	Alerts   Alerter
	Sharer   Sharer
	Log      *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Log == nil {
		return slog.Default()
	}
	return d.Log
}

func (d Deps) alert(title, msg string) {
	if d.Alerts != nil {
		d.Alerts.Alert(Alert{Title: title, Message: msg})
	}
}

// Controller is what the App keeps per navigation entry.
type Controller interface {
	Route() navigation.Route
	// Enter runs when the controller becomes the top of the stack, first
	// time or on return.
	Enter(ctx context.Context) error
	// Leave cancels in-flight loads. It runs when the controller is covered
	// or popped and may run more than once.
	Leave()
}
