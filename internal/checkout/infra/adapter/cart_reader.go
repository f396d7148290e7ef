package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

type CartManagerReader struct {
	mgr *cartapp.Manager
}

func NewCartManagerReader(mgr *cartapp.Manager) *CartManagerReader {
	return &CartManagerReader{mgr: mgr}
}

func (r *CartManagerReader) GetCart(ctx context.Context) ([]checkoutapp.CartItem, error) {
	cart := r.mgr.LoadCart(ctx)

	items := make([]checkoutapp.CartItem, 0, len(cart))
	for _, it := range cart {
		items = append(items, checkoutapp.CartItem{
			ProductID: it.ID,
			Title:     it.Title,
			UnitPrice: decimal.NewFromFloat(it.Price),
			Quantity:  it.Qty(),
		})
	}
	return items, nil
}

func (r *CartManagerReader) ClearCart(ctx context.Context) error {
	return r.mgr.ClearCart(ctx)
}
