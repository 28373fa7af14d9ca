package offer

import (
	"context"
	"sync"

	"github.com/go-leo/offer-visitor/creditcard"
	"github.com/rs/zerolog"
)

// Middleware allows us to write something like decorators to an offer visitor.
// It can execute something before a visit or after.
type Middleware interface {
	// Decorate wraps the underlying visitor, adding some functionality.
	Decorate(visitor creditcard.OfferVisitor) creditcard.OfferVisitor
}

// The MiddlewareFunc type is an adapter to allow the use of ordinary functions as Middleware.
type MiddlewareFunc func(visitor creditcard.OfferVisitor) creditcard.OfferVisitor

// Decorate call f(visitor).
func (f MiddlewareFunc) Decorate(visitor creditcard.OfferVisitor) creditcard.OfferVisitor {
	return f(visitor)
}

// Chain decorates the given visitor with all middlewares, the first one outermost.
func Chain(visitor creditcard.OfferVisitor, middlewares ...Middleware) creditcard.OfferVisitor {
	for i := len(middlewares) - 1; i >= 0; i-- {
		visitor = middlewares[i].Decorate(visitor)
	}
	return visitor
}

// observer wraps a visitor and calls after with the result of every visit.
type observer struct {
	next  creditcard.OfferVisitor
	after func(ctx context.Context, kind creditcard.Kind, d creditcard.Discount, err error)
}

func (o *observer) Name() string {
	return Name(o.next)
}

func (o *observer) VisitBronze(ctx context.Context, card *creditcard.BronzeCard) (creditcard.Discount, error) {
	d, err := o.next.VisitBronze(ctx, card)
	o.after(ctx, card.Kind(), d, err)
	return d, err
}

func (o *observer) VisitSilver(ctx context.Context, card *creditcard.SilverCard) (creditcard.Discount, error) {
	d, err := o.next.VisitSilver(ctx, card)
	o.after(ctx, card.Kind(), d, err)
	return d, err
}

func (o *observer) VisitGold(ctx context.Context, card *creditcard.GoldCard) (creditcard.Discount, error) {
	d, err := o.next.VisitGold(ctx, card)
	o.after(ctx, card.Kind(), d, err)
	return d, err
}

// Logging logs every visit at debug level.
func Logging(logger zerolog.Logger) Middleware {
	return MiddlewareFunc(func(next creditcard.OfferVisitor) creditcard.OfferVisitor {
		name := Name(next)
		return &observer{next: next, after: func(_ context.Context, kind creditcard.Kind, d creditcard.Discount, err error) {
			if err != nil {
				logger.Debug().Err(err).Stringer("card", kind).Str("offer", name).Msg("offer visit failed")
				return
			}
			logger.Debug().Stringer("card", kind).Str("offer", name).Int("percent", d.Percent).Msg("offer visited card")
		}}
	})
}

// Journal collects applied discounts in the order they happened.
type Journal struct {
	mu        sync.Mutex
	discounts []creditcard.Discount
}

func (j *Journal) append(d creditcard.Discount) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.discounts = append(j.discounts, d)
}

// Discounts returns a copy of the recorded discounts.
func (j *Journal) Discounts() []creditcard.Discount {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]creditcard.Discount(nil), j.discounts...)
}

// Messages returns the recorded discounts rendered as messages.
func (j *Journal) Messages() []string {
	discounts := j.Discounts()
	messages := make([]string, 0, len(discounts))
	for _, d := range discounts {
		messages = append(messages, d.Message())
	}
	return messages
}

// Recording appends every successful visit to journal.
func Recording(journal *Journal) Middleware {
	return MiddlewareFunc(func(next creditcard.OfferVisitor) creditcard.OfferVisitor {
		return &observer{next: next, after: func(_ context.Context, _ creditcard.Kind, d creditcard.Discount, err error) {
			if err == nil {
				journal.append(d)
			}
		}}
	})
}
