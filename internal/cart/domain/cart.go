package domain

import (
	"github.com/shopspring/decimal"

	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// CartLine is a product snapshot plus the quantity chosen when it was added.
// It serializes flat: the product fields and "quantity" side by side.
type CartLine struct {
	catalog.Product
	Quantity int `json:"quantity,omitempty"`
}

// Qty is the effective quantity. Lines written before quantities existed count as 1.
func (l CartLine) Qty() int {
	if l.Quantity < 1 {
		return 1
	}
	return l.Quantity
}

func (l CartLine) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Qty())))
}

// Cart is ordered; the same product may appear on several lines.
type Cart []CartLine

// Count is the number of lines, not the sum of quantities.
func (c Cart) Count() int { return len(c) }

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c {
		total = total.Add(l.LineTotal())
	}
	return total
}

type Wishlist []catalog.Product
