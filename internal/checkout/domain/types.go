package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteLine struct {
	ProductID int
	Title     string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type Quote struct {
	Lines []QuoteLine
	Total decimal.Decimal
}

// Form is what the checkout screen collects. No payment details are taken.
type Form struct {
	Name    string
	Address string
}

// Normalize trims both fields.
func (f Form) Normalize() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Address: strings.TrimSpace(f.Address),
	}
}

// Missing lists the empty fields of an already normalized form.
func (f Form) Missing() []string {
	var out []string
	if f.Name == "" {
		out = append(out, "name")
	}
	if f.Address == "" {
		out = append(out, "address")
	}
	return out
}

type Confirmation struct {
	OrderID  uuid.UUID
	Name     string
	Address  string
	Lines    int
	Total    decimal.Decimal
	PlacedAt time.Time
}
