package creditcard

import (
	"context"

	"github.com/google/uuid"
)

// Card is a credit card that can accept offers.
type Card interface {
	// ID return the identity of the card.
	ID() uuid.UUID

	// Kind return the variant of the card.
	Kind() Kind

	// Name return the display name of the card.
	Name() string

	// SameIdentityAs return true if both cards have the same identity, regardless of kind.
	SameIdentityAs(other Card) bool

	// AcceptOffer performs the double dispatch: the card calls back into the
	// visitor method for its own concrete kind.
	AcceptOffer(ctx context.Context, visitor OfferVisitor) (Discount, error)
}

// identity compares cards by id, not by attributes.
type identity struct {
	id uuid.UUID
}

func newIdentity() identity {
	return identity{id: uuid.New()}
}

func (i identity) ID() uuid.UUID {
	return i.id
}

func (i identity) SameIdentityAs(other Card) bool {
	if other == nil {
		return false
	}
	return i.id == other.ID()
}
