package creditcard

import "context"

// BronzeVisitor visits bronze cards.
type BronzeVisitor interface {
	VisitBronze(ctx context.Context, card *BronzeCard) (Discount, error)
}

// SilverVisitor visits silver cards.
type SilverVisitor interface {
	VisitSilver(ctx context.Context, card *SilverCard) (Discount, error)
}

// GoldVisitor visits gold cards.
type GoldVisitor interface {
	VisitGold(ctx context.Context, card *GoldCard) (Discount, error)
}

// OfferVisitor extends all card visitor interfaces. An offer has to implement it
// to be accepted by any card, so adding a card kind breaks every offer at compile time
// while adding an offer needs no change here.
type OfferVisitor interface {
	BronzeVisitor
	SilverVisitor
	GoldVisitor
}
