// Package campaign drives offers across cards and collects what happened.
package campaign

import (
	"context"
	stderrors "errors"

	"github.com/go-leo/offer-visitor/creditcard"
	"github.com/go-leo/offer-visitor/feed"
	"github.com/go-leo/offer-visitor/offer"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Application asks Card to accept Offer.
type Application struct {
	Card  creditcard.Card
	Offer creditcard.OfferVisitor
}

// Outcome is the result of one Application. Err is exactly what AcceptOffer returned.
type Outcome struct {
	Application
	Discount creditcard.Discount
	Err      error
}

// Report holds outcomes in the order the applications were issued.
type Report struct {
	Outcomes []Outcome
}

// Discounts returns the discounts of the successful applications.
func (r Report) Discounts() []creditcard.Discount {
	var discounts []creditcard.Discount
	for _, o := range r.Outcomes {
		if o.Err == nil {
			discounts = append(discounts, o.Discount)
		}
	}
	return discounts
}

// Failed returns the outcomes that carry an error.
func (r Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// Default is the stock sequence: a bronze card takes the gas and the hotel
// offer, then a gold card takes the gas offer.
func Default(goldOpts ...creditcard.GoldOption) []Application {
	hotelOffer := offer.Hotel{}
	gasOffer := offer.Gas{}

	bronzeCard := creditcard.NewBronze()
	goldCard := creditcard.NewGold(goldOpts...)

	return []Application{
		{Card: bronzeCard, Offer: gasOffer},
		{Card: bronzeCard, Offer: hotelOffer},
		{Card: goldCard, Offer: gasOffer},
	}
}

// Campaign runs a fixed list of applications.
type Campaign struct {
	applications []Application
	options      *options
}

func New(applications []Application, opts ...Option) *Campaign {
	return &Campaign{
		applications: append([]Application(nil), applications...),
		options:      newOptions(opts...),
	}
}

// Run applies every offer. A failed application does not stop the others; the
// returned error joins every failure and is nil when all applications succeed.
func (c *Campaign) Run(ctx context.Context) (Report, error) {
	outcomes := make([]Outcome, len(c.applications))
	if c.options.Parallel {
		c.runParallel(ctx, outcomes)
	} else {
		for i, app := range c.applications {
			outcomes[i] = c.apply(ctx, app)
		}
	}

	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, errors.Wrapf(o.Err, "apply %s offer to %s", offer.Name(o.Offer), cardName(o.Card)))
		}
	}
	return Report{Outcomes: outcomes}, stderrors.Join(errs...)
}

// runParallel runs the applications of different cards concurrently while a
// card sees its own applications in issue order.
func (c *Campaign) runParallel(ctx context.Context, outcomes []Outcome) {
	var groups [][]int
	for i, app := range c.applications {
		g := slices.IndexFunc(groups, func(group []int) bool {
			return sameCard(c.applications[group[0]].Card, app.Card)
		})
		if g < 0 {
			groups = append(groups, []int{i})
			continue
		}
		groups[g] = append(groups[g], i)
	}

	var eg errgroup.Group
	if c.options.Workers > 0 {
		eg.SetLimit(c.options.Workers)
	}
	for _, group := range groups {
		group := group
		eg.Go(func() error {
			for _, i := range group {
				outcomes[i] = c.apply(ctx, c.applications[i])
			}
			return nil
		})
	}
	_ = eg.Wait()
}

func (c *Campaign) apply(ctx context.Context, app Application) Outcome {
	outcome := Outcome{Application: app}
	if app.Card == nil {
		outcome.Err = ErrCardNil
		return outcome
	}
	if err := ctx.Err(); err != nil {
		outcome.Err = err
		return outcome
	}
	name := offer.Name(app.Offer)
	var visitor creditcard.OfferVisitor
	if app.Offer != nil {
		visitor = offer.Chain(app.Offer, c.options.Middlewares...)
	}
	outcome.Discount, outcome.Err = app.Card.AcceptOffer(ctx, visitor)

	logger := c.options.Logger.With().Stringer("card_id", app.Card.ID()).Str("card", app.Card.Name()).Str("offer", name).Logger()
	if outcome.Err != nil {
		logger.Warn().Err(outcome.Err).Msg("offer rejected")
		c.publish(ctx, logger, feed.TopicOfferRejected, feed.OfferRejected{
			CardID: app.Card.ID(),
			Card:   app.Card.Kind(),
			Offer:  name,
			Err:    outcome.Err,
		})
		return outcome
	}
	logger.Debug().Int("percent", outcome.Discount.Percent).Msg("offer applied")
	for _, effect := range outcome.Discount.Effects {
		c.publish(ctx, logger, feed.TopicPrestigeDisplayed, feed.PrestigeDisplayed{CardID: app.Card.ID(), Effect: effect})
	}
	c.publish(ctx, logger, feed.TopicDiscountApplied, feed.DiscountApplied{CardID: app.Card.ID(), Discount: outcome.Discount})
	return outcome
}

func (c *Campaign) publish(ctx context.Context, logger zerolog.Logger, topic feed.Topic, body any) {
	if c.options.Bus == nil {
		return
	}
	if err := c.options.Bus.Emit(feed.NewEvent(ctx, topic, body)); err != nil {
		logger.Error().Err(err).Str("topic", string(topic)).Msg("failed to publish event")
	}
}

func sameCard(a, b creditcard.Card) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.SameIdentityAs(b)
}

func cardName(card creditcard.Card) string {
	if card == nil {
		return "<nil card>"
	}
	return card.Name()
}
