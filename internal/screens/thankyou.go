package screens

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/dwikikusuma/storefront/internal/navigation"
)

type ThankYou struct {
	d    Deps
	conf *domain.Confirmation
}

func NewThankYou(d Deps, conf *domain.Confirmation) *ThankYou {
	return &ThankYou{d: d, conf: conf}
}

func (t *ThankYou) Route() navigation.Route { return navigation.ToThankYou{} }

func (t *ThankYou) Enter(context.Context) error { return nil }

func (t *ThankYou) Leave() {}

// Confirmation may be nil when the screen was reached without a receipt.
func (t *ThankYou) Confirmation() *domain.Confirmation { return t.conf }

func (t *ThankYou) GoHome() error {
	return t.d.Nav.Navigate(navigation.ToHome{})
}
