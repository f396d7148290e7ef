package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
)

var (
	ErrEmptyCart  = errors.New("cart is empty")
	ErrValidation = errors.New("please fill out all fields")
	ErrClearCart  = errors.New("could not clear cart")
)

type CartItem struct {
	ProductID int
	Title     string
	UnitPrice decimal.Decimal
	Quantity  int
}

// CartReader gives checkout the current cart and lets it empty the cart once
// the order is placed.
type CartReader interface {
	GetCart(ctx context.Context) ([]CartItem, error)
	ClearCart(ctx context.Context) error
}

type Service struct {
	Cart CartReader

	now   func() time.Time
	newID func() uuid.UUID
}

func NewService(cart CartReader) *Service {
	return &Service{
		Cart:  cart,
		now:   time.Now,
		newID: uuid.New,
	}
}

func (s *Service) Quote(ctx context.Context) (domain.Quote, error) {
	items, err := s.Cart.GetCart(ctx)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	total := decimal.Zero
	for idx, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
		lines[idx] = domain.QuoteLine{
			ProductID: it.ProductID,
			Title:     it.Title,
			Quantity:  qty,
			UnitPrice: it.UnitPrice,
			LineTotal: lineTotal,
		}
		total = total.Add(lineTotal)
	}

	return domain.Quote{Lines: lines, Total: total}, nil
}

// PlaceOrder validates the form, empties the cart and hands back a receipt.
// Nothing is sent anywhere: the order exists only as the confirmation.
func (s *Service) PlaceOrder(ctx context.Context, form domain.Form) (domain.Confirmation, error) {
	form = form.Normalize()
	if missing := form.Missing(); len(missing) > 0 {
		return domain.Confirmation{}, fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}

	quote, err := s.Quote(ctx)
	if err != nil {
		return domain.Confirmation{}, err
	}

	if err := s.Cart.ClearCart(ctx); err != nil {
		return domain.Confirmation{}, fmt.Errorf("%w: %w", ErrClearCart, err)
	}

	return domain.Confirmation{
		OrderID:  s.newID(),
		Name:     form.Name,
		Address:  form.Address,
		Lines:    len(quote.Lines),
		Total:    quote.Total,
		PlacedAt: s.now(),
	}, nil
}
