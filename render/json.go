package render

import (
	"io"
	"sync"

	"github.com/go-leo/offer-visitor/feed"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type record struct {
	Event       feed.Topic `json:"event"`
	CardID      string     `json:"card_id"`
	Card        string     `json:"card"`
	Offer       string     `json:"offer,omitempty"`
	Percent     int        `json:"percent,omitempty"`
	Message     string     `json:"message,omitempty"`
	Description string     `json:"description,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// JSON writes one JSON object per event.
type JSON struct {
	mu  sync.Mutex
	enc *jsoniter.Encoder
}

func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

func (r *JSON) Handle(e feed.Event) error {
	rec := record{Event: e.Topic()}
	switch body := e.Body().(type) {
	case feed.DiscountApplied:
		rec.CardID = body.CardID.String()
		rec.Card = body.Discount.Card.String()
		rec.Offer = body.Discount.Offer
		rec.Percent = body.Discount.Percent
		rec.Message = body.Discount.Message()
	case feed.PrestigeDisplayed:
		rec.CardID = body.CardID.String()
		rec.Card = body.Effect.Card.String()
		rec.Description = body.Effect.Description
	case feed.OfferRejected:
		rec.CardID = body.CardID.String()
		rec.Card = body.Card.String()
		rec.Offer = body.Offer
		if body.Err != nil {
			rec.Error = body.Err.Error()
		}
	default:
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enc.Encode(rec)
}
