package creditcard

import (
	"context"
	"sync/atomic"

	"github.com/go-leo/offer-visitor/eligibility"
)

// PrestigeDescription is what a gold card holder feels when looking at the card.
const PrestigeDescription = "looking at my gold card. self esteem + 1"

var _ Card = (*GoldCard)(nil)

// GoodStanding is satisfied by gold cards whose account is in good standing.
var GoodStanding = eligibility.New[*GoldCard](func(_ context.Context, card *GoldCard) bool {
	return card.InGoodStanding()
})

// GoldCard runs prerequisite checks before letting an offer visit it.
type GoldCard struct {
	identity
	suspended    atomic.Bool
	prestige     atomic.Int64
	prerequisite eligibility.Rule[*GoldCard]
}

// GoldOption configures a GoldCard.
type GoldOption func(card *GoldCard)

// Suspended creates the card with its account out of good standing.
func Suspended() GoldOption {
	return func(card *GoldCard) {
		card.suspended.Store(true)
	}
}

// Prerequisite adds a rule that must hold, on top of good standing, before an
// offer is applied.
func Prerequisite(rule eligibility.Rule[*GoldCard]) GoldOption {
	return func(card *GoldCard) {
		card.prerequisite = eligibility.And(card.prerequisite, rule)
	}
}

func NewGold(opts ...GoldOption) *GoldCard {
	card := &GoldCard{identity: newIdentity(), prerequisite: GoodStanding}
	for _, opt := range opts {
		opt(card)
	}
	return card
}

func (*GoldCard) Kind() Kind {
	return Gold
}

func (*GoldCard) Name() string {
	return Gold.Label()
}

// InGoodStanding reports whether the account may currently receive offers.
func (card *GoldCard) InGoodStanding() bool {
	return !card.suspended.Load()
}

// Suspend takes the account out of good standing.
func (card *GoldCard) Suspend() {
	card.suspended.Store(true)
}

// Reinstate puts the account back in good standing.
func (card *GoldCard) Reinstate() {
	card.suspended.Store(false)
}

// DisplayPrestige shows the card off. It has no effect on eligibility.
func (card *GoldCard) DisplayPrestige() Effect {
	card.prestige.Add(1)
	return Effect{Card: Gold, Description: PrestigeDescription}
}

// PrestigeCount returns how many times the card was shown off.
func (card *GoldCard) PrestigeCount() int64 {
	return card.prestige.Load()
}

// AcceptOffer visitor once the prerequisite checks pass.
func (card *GoldCard) AcceptOffer(ctx context.Context, visitor OfferVisitor) (Discount, error) {
	if visitor == nil {
		return Discount{}, ErrVisitorNil
	}
	if !card.prerequisite.IsSatisfiedBy(ctx, card) {
		return Discount{}, newIneligibleAccountError(card)
	}
	return visitor.VisitGold(ctx, card)
}
