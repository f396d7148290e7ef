package screens

import (
	"context"
	"errors"
	"sync"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/infra/kvrepo"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/storefront/internal/navigation"
	"github.com/dwikikusuma/storefront/pkg/kvstore"
	"github.com/dwikikusuma/storefront/pkg/logger"
)

var (
	redShirt = catalog.Product{ID: 1, Title: "Red Shirt", Price: 9.99, Category: "men's clothing",
		Description: "Cotton", Image: "https://img/1.png", Rating: &catalog.Rating{Rate: 3, Count: 10}}
	blueHat = catalog.Product{ID: 2, Title: "Blue Hat", Price: 5, Category: "men's clothing",
		Rating: &catalog.Rating{Rate: 4.5, Count: 3}}
	drive = catalog.Product{ID: 3, Title: "SSD Drive", Price: 64, Category: "electronics"}
)

type fakeCatalog struct {
	products []catalog.Product
	err      error
	block    bool
	started  chan struct{}

	mu    sync.Mutex
	calls []string
}

func (f *fakeCatalog) ListByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	f.mu.Lock()
	f.calls = append(f.calls, category)
	f.mu.Unlock()

	if f.block {
		if f.started != nil {
			close(f.started)
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	if category == "" || category == catalog.CategoryAll {
		return f.products, nil
	}
	var out []catalog.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalog) Related(ctx context.Context, p catalog.Product) ([]catalog.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return catalogapp.NewService(sourceOf(f.products)).Related(ctx, p)
}

func (f *fakeCatalog) Categories() []catalog.Category { return catalog.Categories }

type sourceOf []catalog.Product

func (s sourceOf) List(context.Context) ([]catalog.Product, error) { return s, nil }
func (s sourceOf) ListByCategory(context.Context, string) ([]catalog.Product, error) {
	return s, nil
}

type alerts struct {
	mu  sync.Mutex
	got []Alert
}

func (a *alerts) Alert(al Alert) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.got = append(a.got, al)
}

func (a *alerts) last() Alert {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.got) == 0 {
		return Alert{}
	}
	return a.got[len(a.got)-1]
}

type sharer struct {
	msgs []string
	err  error
}

func (s *sharer) Share(_ context.Context, msg string) error {
	s.msgs = append(s.msgs, msg)
	return s.err
}

// flakyStore fails writes once failSet is true.
type flakyStore struct {
	kvstore.Store
	failSet bool
}

func (f *flakyStore) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return errors.New("storage full")
	}
	return f.Store.Set(ctx, key, value)
}

func (f *flakyStore) Remove(ctx context.Context, key string) error {
	if f.failSet {
		return errors.New("storage read-only")
	}
	return f.Store.Remove(ctx, key)
}

type harness struct {
	deps    Deps
	catalog *fakeCatalog
	store   *flakyStore
	alerts  *alerts
	sharer  *sharer
}

func newHarness(products ...catalog.Product) *harness {
	h := &harness{
		catalog: &fakeCatalog{products: products},
		store:   &flakyStore{Store: kvstore.NewMemory()},
		alerts:  &alerts{},
		sharer:  &sharer{},
	}
	log := logger.Discard()
	mgr := cartapp.NewManager(kvrepo.New(h.store), log)
	h.deps = Deps{
		Catalog:  h.catalog,
		Cart:     mgr,
		Checkout: checkoutapp.NewService(adapter.NewCartManagerReader(mgr)),
		Nav:      navigation.NewNavigator(),
		Alerts:   h.alerts,
		Sharer:   h.sharer,
		Log:      log,
	}
	return h
}

func ids(products []catalog.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
