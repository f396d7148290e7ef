package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

// Repo persists the cart and wishlist. A missing value loads as an empty sequence.
type Repo interface {
	LoadCart(ctx context.Context) (domain.Cart, error)
	SaveCart(ctx context.Context, cart domain.Cart) error
	ClearCart(ctx context.Context) error
	LoadWishlist(ctx context.Context) (domain.Wishlist, error)
	SaveWishlist(ctx context.Context, wishlist domain.Wishlist) error
}
