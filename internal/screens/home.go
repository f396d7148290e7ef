package screens

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/navigation"
	"github.com/dwikikusuma/storefront/pkg/visit"
)

type Home struct {
	d     Deps
	visit visit.Tracker

	mu        sync.Mutex
	category  string
	search    string
	sort      catalogapp.SortOption
	products  []catalog.Product
	featured  []catalog.Product
	cartCount int
	loading   bool
	err       string
}

func NewHome(d Deps) *Home {
	return &Home{
		d:        d,
		category: catalog.CategoryAll,
		sort:     catalogapp.SortByPrice,
	}
}

func (h *Home) Route() navigation.Route { return navigation.ToHome{} }

func (h *Home) Enter(ctx context.Context) error { return h.Focus(ctx) }

func (h *Home) Leave() { h.visit.Stop() }

// Focus reloads the whole catalog and the cart badge together. The category
// chips go back to "all".
func (h *Home) Focus(ctx context.Context) error {
	return h.load(ctx, catalog.CategoryAll, true)
}

// Refresh reloads the selected category.
func (h *Home) Refresh(ctx context.Context) error {
	h.mu.Lock()
	category := h.category
	h.mu.Unlock()
	return h.load(ctx, category, false)
}

// SelectCategory replaces the product list with one category. "all" loads
// the unfiltered catalog.
func (h *Home) SelectCategory(ctx context.Context, category string) error {
	return h.load(ctx, category, false)
}

func (h *Home) load(parent context.Context, category string, withCount bool) error {
	ctx, tk := h.visit.Start(parent)

	h.mu.Lock()
	h.loading = true
	h.mu.Unlock()

	var (
		products []catalog.Product
		count    int
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		products, err = h.d.Catalog.ListByCategory(ctx, category)
		return err
	})
	if withCount {
		g.Go(func() error {
			count = h.d.Cart.ComputeCount(h.d.Cart.LoadCart(ctx))
			return nil
		})
	}
	err := g.Wait()

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.visit.Current(tk) {
		return ErrSuperseded
	}
	h.loading = false

	if err != nil {
		h.d.logger().WarnContext(ctx, "load products failed",
			slog.String("category", category), slog.Any("err", err))
		h.err = MsgLoadFailed
		h.products = nil
		return err
	}

	h.err = ""
	h.category = category
	h.products = products
	if category == catalog.CategoryAll {
		h.featured = products
	}
	if withCount {
		h.cartCount = count
	}
	return nil
}

func (h *Home) SetSearch(term string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.search = term
}

func (h *Home) SetSort(opt catalogapp.SortOption) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sort = opt
}

// Products is the list as displayed: loaded products, searched, then sorted.
func (h *Home) Products() []catalog.Product {
	h.mu.Lock()
	defer h.mu.Unlock()
	return catalogapp.View(h.products, h.search, h.sort)
}

// Featured is the carousel. It always shows the last unfiltered catalog.
func (h *Home) Featured() []catalog.Product {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]catalog.Product(nil), h.featured...)
}

func (h *Home) Categories() []catalog.Category { return h.d.Catalog.Categories() }

func (h *Home) Category() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.category
}

func (h *Home) Search() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.search
}

func (h *Home) Sort() catalogapp.SortOption {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sort
}

func (h *Home) CartCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cartCount
}

func (h *Home) Loading() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loading
}

// Error is the message shown in place of the list, "" when the last load worked.
func (h *Home) Error() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *Home) OpenProduct(p catalog.Product) error {
	return h.d.Nav.Navigate(navigation.ToProductDetails{Product: p})
}

func (h *Home) OpenCart() error {
	return h.d.Nav.Navigate(navigation.ToCart{})
}
