package creditcard

import "fmt"

// Discount describes an offer applied to a card.
type Discount struct {
	Card    Kind
	Offer   string
	Percent int
	// Effects are side effects produced while the offer visited the card, in order.
	Effects []Effect
}

// Message renders the discount the way it is shown to the card holder.
func (d Discount) Message() string {
	return fmt.Sprintf("%s %s Offer: Applying a %d%% discount", d.Card.Label(), d.Offer, d.Percent)
}

func (d Discount) String() string {
	return d.Message()
}

// Effect is a non-essential side effect of a visit, like a gold card showing off.
type Effect struct {
	Card        Kind
	Description string
}
