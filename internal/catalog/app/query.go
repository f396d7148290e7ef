package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type SortOption string

const (
	SortByPrice  SortOption = "price"
	SortByRating SortOption = "rating"
)

func ParseSortOption(s string) (SortOption, error) {
	switch SortOption(strings.ToLower(strings.TrimSpace(s))) {
	case SortByPrice:
		return SortByPrice, nil
	case SortByRating:
		return SortByRating, nil
	default:
		return "", fmt.Errorf("%w: unknown sort option %q", ErrInvalidInput, s)
	}
}

// Search keeps products whose title contains term, ignoring case.
// An empty term keeps everything. The input is not modified.
func Search(products []domain.Product, term string) []domain.Product {
	needle := strings.ToLower(term)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Sort orders products in place: price ascending or rating descending.
// Ties keep their loaded order. Unknown options leave the order untouched.
func Sort(products []domain.Product, opt SortOption) {
	switch opt {
	case SortByPrice:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortByRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rate() > products[j].Rate()
		})
	}
}

// View applies the home screen pipeline: search first, then sort.
func View(products []domain.Product, term string, opt SortOption) []domain.Product {
	out := Search(products, term)
	Sort(out, opt)
	return out
}
