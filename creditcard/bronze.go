package creditcard

import "context"

var _ Card = (*BronzeCard)(nil)

// BronzeCard implements its accept method.
type BronzeCard struct {
	identity
}

func NewBronze() *BronzeCard {
	return &BronzeCard{identity: newIdentity()}
}

func (*BronzeCard) Kind() Kind {
	return Bronze
}

func (*BronzeCard) Name() string {
	return Bronze.Label()
}

// AcceptOffer visitor.
func (card *BronzeCard) AcceptOffer(ctx context.Context, visitor OfferVisitor) (Discount, error) {
	if visitor == nil {
		return Discount{}, ErrVisitorNil
	}
	return visitor.VisitBronze(ctx, card)
}
