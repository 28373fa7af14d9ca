package feed

import (
	"context"
	"time"

	"github.com/go-leo/offer-visitor/creditcard"
	"github.com/google/uuid"
)

// Topic names a kind of event on the bus.
type Topic string

const (
	TopicDiscountApplied   Topic = "discount_applied"
	TopicPrestigeDisplayed Topic = "prestige_displayed"
	TopicOfferRejected     Topic = "offer_rejected"
)

// Event is something that happened while applying offers.
type Event interface {

	// Topic return the topic listeners subscribe to.
	Topic() Topic

	// Body return the payload of the event.
	Body() any

	// When return the time of the event.
	When() time.Time

	// Context returns the context the event was emitted with.
	Context() context.Context
}

type event struct {
	topic      Topic
	body       any
	occurredOn time.Time
	ctx        context.Context
}

func (e *event) Topic() Topic {
	return e.topic
}

func (e *event) Body() any {
	return e.body
}

func (e *event) When() time.Time {
	return e.occurredOn
}

func (e *event) Context() context.Context {
	if e.ctx != nil {
		return e.ctx
	}
	return context.Background()
}

func NewEvent(ctx context.Context, topic Topic, body any) Event {
	return &event{topic: topic, body: body, occurredOn: time.Now(), ctx: ctx}
}

// DiscountApplied is the body of TopicDiscountApplied.
type DiscountApplied struct {
	CardID   uuid.UUID
	Discount creditcard.Discount
}

// PrestigeDisplayed is the body of TopicPrestigeDisplayed.
type PrestigeDisplayed struct {
	CardID uuid.UUID
	Effect creditcard.Effect
}

// OfferRejected is the body of TopicOfferRejected.
type OfferRejected struct {
	CardID uuid.UUID
	Card   creditcard.Kind
	Offer  string
	Err    error
}
