// Package kvrepo stores the cart and wishlist as JSON arrays in a kvstore.Store.
package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/pkg/kvstore"
)

const (
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
)

// ErrCorrupt means a stored value is not a JSON array of entries with id and price.
var ErrCorrupt = errors.New("stored value is corrupt")

type Repo struct {
	store kvstore.Store
}

func New(store kvstore.Store) *Repo {
	return &Repo{store: store}
}

// entry checks presence of the fields every stored line must carry.
type entry struct {
	ID    *int     `json:"id"`
	Price *float64 `json:"price"`
}

func (r *Repo) LoadCart(ctx context.Context) (domain.Cart, error) {
	var cart domain.Cart
	if err := r.load(ctx, KeyCart, &cart); err != nil {
		return nil, err
	}
	if cart == nil {
		cart = domain.Cart{}
	}
	return cart, nil
}

func (r *Repo) SaveCart(ctx context.Context, cart domain.Cart) error {
	if cart == nil {
		cart = domain.Cart{}
	}
	return r.save(ctx, KeyCart, cart)
}

func (r *Repo) ClearCart(ctx context.Context) error {
	if err := r.store.Remove(ctx, KeyCart); err != nil {
		return fmt.Errorf("remove %q: %w", KeyCart, err)
	}
	return nil
}

func (r *Repo) LoadWishlist(ctx context.Context) (domain.Wishlist, error) {
	var wishlist domain.Wishlist
	if err := r.load(ctx, KeyWishlist, &wishlist); err != nil {
		return nil, err
	}
	if wishlist == nil {
		wishlist = domain.Wishlist{}
	}
	return wishlist, nil
}

func (r *Repo) SaveWishlist(ctx context.Context, wishlist domain.Wishlist) error {
	if wishlist == nil {
		wishlist = domain.Wishlist{}
	}
	return r.save(ctx, KeyWishlist, wishlist)
}

func (r *Repo) load(ctx context.Context, key string, dst any) error {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get %q: %w", key, err)
	}

	var entries []entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCorrupt, key, err)
	}
	for i, e := range entries {
		if e.ID == nil || e.Price == nil {
			return fmt.Errorf("%w: %q entry %d lacks id or price", ErrCorrupt, key, i)
		}
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCorrupt, key, err)
	}
	return nil
}

func (r *Repo) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
