package screens

import (
	"context"
	"sync"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/dwikikusuma/storefront/internal/navigation"
)

// App keeps one controller per navigation entry. Controllers navigate through
// the shared Navigator; Sync then brings the controller stack in line with it.
type App struct {
	d Deps

	mu    sync.Mutex
	stack []Controller
}

func NewApp(d Deps) *App {
	if d.Nav == nil {
		d.Nav = navigation.NewNavigator()
	}
	return &App{d: d}
}

func (a *App) Navigator() *navigation.Navigator { return a.d.Nav }

// Start builds the root controller and enters it.
func (a *App) Start(ctx context.Context) error {
	return a.Sync(ctx)
}

func (a *App) Current() Controller {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.stack) == 0 {
		return nil
	}
	return a.stack[len(a.stack)-1]
}

func (a *App) Back(ctx context.Context) error {
	if _, err := a.d.Nav.Back(); err != nil {
		return err
	}
	return a.Sync(ctx)
}

// Sync pops controllers whose entries left the navigator, builds controllers
// for new entries and enters the top one if it changed.
func (a *App) Sync(ctx context.Context) error {
	routes := a.d.Nav.Stack()

	a.mu.Lock()
	var prev Controller
	if len(a.stack) > 0 {
		prev = a.stack[len(a.stack)-1]
	}

	keep := 0
	for keep < len(routes) && keep < len(a.stack) && a.stack[keep].Route() == routes[keep] {
		keep++
	}
	for i := len(a.stack) - 1; i >= keep; i-- {
		a.stack[i].Leave()
		a.stack[i] = nil
	}
	a.stack = a.stack[:keep]
	for _, r := range routes[keep:] {
		a.stack = append(a.stack, a.newController(r))
	}
	top := a.stack[len(a.stack)-1]
	a.mu.Unlock()

	if top == prev {
		return nil
	}
	if prev != nil {
		prev.Leave()
	}
	return top.Enter(ctx)
}

// newController must be called with a.mu held.
func (a *App) newController(r navigation.Route) Controller {
	switch rt := r.(type) {
	case navigation.ToProductDetails:
		return NewDetails(a.d, rt)
	case navigation.ToCart:
		return NewCart(a.d)
	case navigation.ToCheckout:
		return NewCheckout(a.d)
	case navigation.ToThankYou:
		return NewThankYou(a.d, a.lastConfirmation())
	default:
		return NewHome(a.d)
	}
}

func (a *App) lastConfirmation() *domain.Confirmation {
	for i := len(a.stack) - 1; i >= 0; i-- {
		if c, ok := a.stack[i].(*Checkout); ok {
			return c.Confirmation()
		}
	}
	return nil
}
