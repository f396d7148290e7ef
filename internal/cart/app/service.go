package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPersist      = errors.New("could not save to storage")
)

// Manager owns the cart and wishlist rules. It holds no state of its own:
// every mutation takes the current sequence and returns the next one, and the
// caller decides when to persist it.
type Manager struct {
	repo Repo
	log  *slog.Logger
}

func NewManager(repo Repo, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		repo: repo,
		log:  log,
	}
}

// LoadCart never fails. Unreadable or corrupt storage yields an empty cart.
func (m *Manager) LoadCart(ctx context.Context) domain.Cart {
	cart, err := m.repo.LoadCart(ctx)
	if err != nil {
		m.log.WarnContext(ctx, "load cart failed", slog.Any("err", err))
		return domain.Cart{}
	}
	if cart == nil {
		return domain.Cart{}
	}
	return cart
}

func (m *Manager) LoadWishlist(ctx context.Context) domain.Wishlist {
	wishlist, err := m.repo.LoadWishlist(ctx)
	if err != nil {
		m.log.WarnContext(ctx, "load wishlist failed", slog.Any("err", err))
		return domain.Wishlist{}
	}
	if wishlist == nil {
		return domain.Wishlist{}
	}
	return wishlist
}

// AddToCart appends a new line even when the product is already in the cart.
func (m *Manager) AddToCart(cart domain.Cart, p catalog.Product, quantity int) (domain.Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1, got %d", ErrInvalidInput, quantity)
	}

	next := make(domain.Cart, len(cart), len(cart)+1)
	copy(next, cart)
	return append(next, domain.CartLine{Product: p, Quantity: quantity}), nil
}

func (m *Manager) AddToWishlist(wishlist domain.Wishlist, p catalog.Product) domain.Wishlist {
	next := make(domain.Wishlist, len(wishlist), len(wishlist)+1)
	copy(next, wishlist)
	return append(next, p)
}

func (m *Manager) PersistCart(ctx context.Context, cart domain.Cart) error {
	if err := m.repo.SaveCart(ctx, cart); err != nil {
		m.log.ErrorContext(ctx, "persist cart failed", slog.Int("lines", len(cart)), slog.Any("err", err))
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

func (m *Manager) PersistWishlist(ctx context.Context, wishlist domain.Wishlist) error {
	if err := m.repo.SaveWishlist(ctx, wishlist); err != nil {
		m.log.ErrorContext(ctx, "persist wishlist failed", slog.Int("entries", len(wishlist)), slog.Any("err", err))
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

func (m *Manager) ComputeTotal(cart domain.Cart) decimal.Decimal {
	return cart.Total()
}

func (m *Manager) ComputeCount(cart domain.Cart) int {
	return cart.Count()
}

func (m *Manager) ClearCart(ctx context.Context) error {
	if err := m.repo.ClearCart(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
