package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	source ProductSource
}

func NewService(source ProductSource) *Service {
	return &Service{
		source: source,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.source.List(ctx)
}

// ListByCategory fetches one category; "" and "all" fetch the whole catalog.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" || category == domain.CategoryAll {
		return s.source.List(ctx)
	}
	return s.source.ListByCategory(ctx, category)
}

// Related returns the other products of p's category.
func (s *Service) Related(ctx context.Context, p domain.Product) ([]domain.Product, error) {
	if p.ID == 0 {
		return nil, ErrInvalidInput
	}

	all, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(all))
	for _, it := range all {
		if it.Category == p.Category && it.ID != p.ID {
			out = append(out, it)
		}
	}
	return out, nil
}

// FindProduct looks id up in an already loaded list.
func FindProduct(products []domain.Product, id int) (domain.Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (s *Service) Categories() []domain.Category {
	out := make([]domain.Category, len(domain.Categories))
	copy(out, domain.Categories)
	return out
}
