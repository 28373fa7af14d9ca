package creditcard

import "context"

var _ Card = (*SilverCard)(nil)

// SilverCard implements its accept method.
type SilverCard struct {
	identity
}

func NewSilver() *SilverCard {
	return &SilverCard{identity: newIdentity()}
}

func (*SilverCard) Kind() Kind {
	return Silver
}

func (*SilverCard) Name() string {
	return Silver.Label()
}

// AcceptOffer visitor.
func (card *SilverCard) AcceptOffer(ctx context.Context, visitor OfferVisitor) (Discount, error) {
	if visitor == nil {
		return Discount{}, ErrVisitorNil
	}
	return visitor.VisitSilver(ctx, card)
}
