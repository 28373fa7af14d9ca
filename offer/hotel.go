package offer

import (
	"context"

	"github.com/go-leo/offer-visitor/creditcard"
)

var _ creditcard.OfferVisitor = Hotel{}

var hotelRates = rates{
	creditcard.Bronze: 1,
	creditcard.Silver: 1,
	creditcard.Gold:   1,
}

// Hotel gives the same flat discount on a stay to every card.
type Hotel struct{}

func (Hotel) Name() string {
	return "Hotel"
}

func (receiver Hotel) VisitBronze(_ context.Context, card *creditcard.BronzeCard) (creditcard.Discount, error) {
	return hotelRates.discount(receiver.Name(), card.Kind()), nil
}

func (receiver Hotel) VisitSilver(_ context.Context, card *creditcard.SilverCard) (creditcard.Discount, error) {
	return hotelRates.discount(receiver.Name(), card.Kind()), nil
}

func (receiver Hotel) VisitGold(_ context.Context, card *creditcard.GoldCard) (creditcard.Discount, error) {
	return hotelRates.discount(receiver.Name(), card.Kind()), nil
}
