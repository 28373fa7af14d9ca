package offer

import (
	"context"

	"github.com/go-leo/offer-visitor/creditcard"
)

var _ creditcard.OfferVisitor = Gas{}

var gasRates = rates{
	creditcard.Bronze: 1,
	creditcard.Silver: 5,
	creditcard.Gold:   5,
}

// Gas gives a discount at the pump. Gold card holders get to show their card off first.
type Gas struct{}

func (Gas) Name() string {
	return "Gas"
}

func (receiver Gas) VisitBronze(_ context.Context, card *creditcard.BronzeCard) (creditcard.Discount, error) {
	return gasRates.discount(receiver.Name(), card.Kind()), nil
}

func (receiver Gas) VisitSilver(_ context.Context, card *creditcard.SilverCard) (creditcard.Discount, error) {
	return gasRates.discount(receiver.Name(), card.Kind()), nil
}

func (receiver Gas) VisitGold(_ context.Context, card *creditcard.GoldCard) (creditcard.Discount, error) {
	prestige := card.DisplayPrestige()
	return gasRates.discount(receiver.Name(), card.Kind(), prestige), nil
}
