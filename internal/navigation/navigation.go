// Package navigation is the closed set of screens and the stack navigator that
// moves between them. Only the transitions in the table below are allowed.
//
//	Home           -> ProductDetails, Cart
//	ProductDetails -> ProductDetails (related), back to caller
//	Cart           -> ProductDetails (fromCart), Checkout
//	Checkout       -> ThankYou
//	ThankYou       -> Home
package navigation

import (
	"errors"
	"fmt"
	"sync"

	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

var (
	ErrTransitionNotAllowed = errors.New("transition not allowed")
	ErrInvalidParams        = errors.New("invalid route params")
	ErrNoHistory            = errors.New("no screen to go back to")
)

type Screen int

const (
	Home Screen = iota
	ProductDetails
	Cart
	Checkout
	ThankYou
)

func (s Screen) String() string {
	switch s {
	case Home:
		return "Home"
	case ProductDetails:
		return "ProductDetails"
	case Cart:
		return "Cart"
	case Checkout:
		return "Checkout"
	case ThankYou:
		return "ThankYou"
	default:
		return fmt.Sprintf("Screen(%d)", int(s))
	}
}

// Route is a destination with its parameters. The set is closed.
type Route interface {
	Screen() Screen
	route()
}

type ToHome struct{}

// ToProductDetails opens a product. FromCart hides the add and share actions.
type ToProductDetails struct {
	Product  catalog.Product
	FromCart bool
}

type ToCart struct{}

type ToCheckout struct{}

type ToThankYou struct{}

func (ToHome) Screen() Screen           { return Home }
func (ToProductDetails) Screen() Screen { return ProductDetails }
func (ToCart) Screen() Screen           { return Cart }
func (ToCheckout) Screen() Screen       { return Checkout }
func (ToThankYou) Screen() Screen       { return ThankYou }

func (ToHome) route()           {}
func (ToProductDetails) route() {}
func (ToCart) route()           {}
func (ToCheckout) route()       {}
func (ToThankYou) route()       {}

var allowed = map[Screen][]Screen{
	Home:           {ProductDetails, Cart},
	ProductDetails: {ProductDetails},
	Cart:           {ProductDetails, Checkout},
	Checkout:       {ThankYou},
	ThankYou:       {Home},
}

// CanNavigate reports whether the table has an edge from -> to.
func CanNavigate(from, to Screen) bool {
	for _, s := range allowed[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Navigator is a stack of routes rooted at Home. It is safe for concurrent use.
type Navigator struct {
	mu    sync.Mutex
	stack []Route
}

func NewNavigator() *Navigator {
	return &Navigator{stack: []Route{ToHome{}}}
}

func (n *Navigator) Navigate(r Route) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	from := n.stack[len(n.stack)-1].Screen()
	if r == nil || !CanNavigate(from, r.Screen()) {
		return fmt.Errorf("%w: %s -> %v", ErrTransitionNotAllowed, from, screenOf(r))
	}

	switch rt := r.(type) {
	case ToProductDetails:
		if rt.Product.ID <= 0 {
			return fmt.Errorf("%w: product id is required", ErrInvalidParams)
		}
		if rt.FromCart && from != Cart {
			return fmt.Errorf("%w: fromCart only applies when leaving Cart", ErrInvalidParams)
		}
	case ToHome:
		n.stack = n.stack[:1]
		return nil
	}

	n.stack = append(n.stack, r)
	return nil
}

func (n *Navigator) Back() (Route, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.stack) == 1 {
		return nil, ErrNoHistory
	}
	n.stack[len(n.stack)-1] = nil
	n.stack = n.stack[:len(n.stack)-1]
	return n.stack[len(n.stack)-1], nil
}

func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Stack returns a copy of the entries, root first.
func (n *Navigator) Stack() []Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Route(nil), n.stack...)
}

func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}

func screenOf(r Route) any {
	if r == nil {
		return "<nil>"
	}
	return r.Screen()
}
