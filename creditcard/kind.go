package creditcard

// Kind is the closed set of card variants an OfferVisitor must know about.
type Kind int

const (
	Bronze Kind = iota + 1
	Silver
	Gold
)

var kinds = []Kind{Bronze, Silver, Gold}

// Kinds returns every card kind in declaration order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

func (k Kind) String() string {
	switch k {
	case Bronze:
		return "Bronze"
	case Silver:
		return "Silver"
	case Gold:
		return "Gold"
	default:
		return "Unknown"
	}
}

// Label is the display name of a card of this kind, e.g. "Gold Credit Card".
func (k Kind) Label() string {
	return k.String() + " Credit Card"
}
