package creditcard

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrIneligibleAccount account is not allowed to receive offers
	ErrIneligibleAccount = errors.New("account is ineligible for offers")

	// ErrVisitorNil OfferVisitor arg is nil
	ErrVisitorNil = errors.New("offer visitor is nil")
)

// IneligibleAccountError is returned by AcceptOffer when a card fails its
// offer prerequisite checks. The offer never visits the card in that case.
type IneligibleAccountError struct {
	Card Kind
	ID   uuid.UUID
}

func (e *IneligibleAccountError) Error() string {
	return e.Card.Label() + ": Cannot apply offer"
}

// Is reports ErrIneligibleAccount as a match so callers can use errors.Is.
func (e *IneligibleAccountError) Is(target error) bool {
	return target == ErrIneligibleAccount
}

func newIneligibleAccountError(card Card) error {
	return &IneligibleAccountError{Card: card.Kind(), ID: card.ID()}
}
