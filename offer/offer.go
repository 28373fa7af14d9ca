// Package offer holds the promotional offers that visit credit cards.
package offer

import (
	"fmt"

	"github.com/go-leo/offer-visitor/creditcard"
)

// Named is implemented by visitors that know their own offer label.
type Named interface {
	Name() string
}

// Name returns the label of an offer visitor, e.g. "Gas".
func Name(visitor creditcard.OfferVisitor) string {
	if named, ok := visitor.(Named); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", visitor)
}

// All returns one instance of every known offer, Gas first.
func All() []creditcard.OfferVisitor {
	return []creditcard.OfferVisitor{Gas{}, Hotel{}}
}

// rates maps a card kind to the discount percentage an offer grants it.
type rates map[creditcard.Kind]int

func (r rates) discount(offer string, kind creditcard.Kind, effects ...creditcard.Effect) creditcard.Discount {
	return creditcard.Discount{Card: kind, Offer: offer, Percent: r[kind], Effects: effects}
}
