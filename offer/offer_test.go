package offer_test

import (
	"context"
	"testing"

	"github.com/go-leo/offer-visitor/creditcard"
	"github.com/go-leo/offer-visitor/offer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCard(kind creditcard.Kind) creditcard.Card {
	switch kind {
	case creditcard.Bronze:
		return creditcard.NewBronze()
	case creditcard.Silver:
		return creditcard.NewSilver()
	case creditcard.Gold:
		return creditcard.NewGold()
	default:
		return nil
	}
}

func TestDiscountTable(t *testing.T) {
	ctx := context.Background()
	table := map[string]map[creditcard.Kind]int{
		"Gas":   {creditcard.Bronze: 1, creditcard.Silver: 5, creditcard.Gold: 5},
		"Hotel": {creditcard.Bronze: 1, creditcard.Silver: 1, creditcard.Gold: 1},
	}
	messages := map[string]map[creditcard.Kind]string{
		"Gas": {
			creditcard.Bronze: "Bronze Credit Card Gas Offer: Applying a 1% discount",
			creditcard.Silver: "Silver Credit Card Gas Offer: Applying a 5% discount",
			creditcard.Gold:   "Gold Credit Card Gas Offer: Applying a 5% discount",
		},
		"Hotel": {
			creditcard.Bronze: "Bronze Credit Card Hotel Offer: Applying a 1% discount",
			creditcard.Silver: "Silver Credit Card Hotel Offer: Applying a 1% discount",
			creditcard.Gold:   "Gold Credit Card Hotel Offer: Applying a 1% discount",
		},
	}
	for _, visitor := range offer.All() {
		name := offer.Name(visitor)
		for _, kind := range creditcard.Kinds() {
			t.Run(name+"/"+kind.String(), func(t *testing.T) {
				d, err := newCard(kind).AcceptOffer(ctx, visitor)
				require.NoError(t, err)
				assert.Equal(t, kind, d.Card)
				assert.Equal(t, name, d.Offer)
				assert.Equal(t, table[name][kind], d.Percent)
				assert.Equal(t, messages[name][kind], d.Message())
			})
		}
	}
}

func TestEveryOfferKnowsEveryCard(t *testing.T) {
	ctx := context.Background()
	for _, visitor := range offer.All() {
		for _, kind := range creditcard.Kinds() {
			card := newCard(kind)
			require.NotNil(t, card, kind.String())
			d, err := card.AcceptOffer(ctx, visitor)
			require.NoError(t, err)
			assert.Positive(t, d.Percent, "%s has no discount for %s", offer.Name(visitor), kind)
		}
	}
}

func TestGoldGasDisplaysPrestigeOnce(t *testing.T) {
	ctx := context.Background()
	gold := creditcard.NewGold()

	d, err := gold.AcceptOffer(ctx, offer.Gas{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, gold.PrestigeCount())
	assert.Equal(t, []creditcard.Effect{{Card: creditcard.Gold, Description: creditcard.PrestigeDescription}}, d.Effects)
	assert.Equal(t, "Gold Credit Card Gas Offer: Applying a 5% discount", d.Message())

	d, err = gold.AcceptOffer(ctx, offer.Hotel{})
	require.NoError(t, err)
	assert.Empty(t, d.Effects)
	assert.EqualValues(t, 1, gold.PrestigeCount())
}

func TestIneligibleGoldGetsNothing(t *testing.T) {
	ctx := context.Background()
	gold := creditcard.NewGold(creditcard.Suspended())
	for _, visitor := range offer.All() {
		d, err := gold.AcceptOffer(ctx, visitor)
		assert.ErrorIs(t, err, creditcard.ErrIneligibleAccount)
		assert.Zero(t, d.Percent)
	}
	assert.Zero(t, gold.PrestigeCount())
}

func TestAcceptOfferIsIdempotent(t *testing.T) {
	ctx := context.Background()
	for _, kind := range creditcard.Kinds() {
		card := newCard(kind)
		first, err := card.AcceptOffer(ctx, offer.Gas{})
		require.NoError(t, err)
		second, err := card.AcceptOffer(ctx, offer.Gas{})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestScenarios(t *testing.T) {
	ctx := context.Background()
	gasOffer, hotelOffer := offer.Gas{}, offer.Hotel{}
	bronzeCard, goldCard := creditcard.NewBronze(), creditcard.NewGold()

	d, err := bronzeCard.AcceptOffer(ctx, gasOffer)
	require.NoError(t, err)
	assert.Equal(t, "Bronze Credit Card Gas Offer: Applying a 1% discount", d.Message())

	d, err = bronzeCard.AcceptOffer(ctx, hotelOffer)
	require.NoError(t, err)
	assert.Equal(t, "Bronze Credit Card Hotel Offer: Applying a 1% discount", d.Message())

	d, err = goldCard.AcceptOffer(ctx, gasOffer)
	require.NoError(t, err)
	require.Len(t, d.Effects, 1)
	assert.Equal(t, creditcard.PrestigeDescription, d.Effects[0].Description)
	assert.Equal(t, "Gold Credit Card Gas Offer: Applying a 5% discount", d.Message())
}

func TestName(t *testing.T) {
	assert.Equal(t, "Gas", offer.Name(offer.Gas{}))
	assert.Equal(t, "Hotel", offer.Name(offer.Hotel{}))
	assert.Equal(t, "Hotel", offer.Name(offer.Chain(offer.Hotel{}, offer.Recording(&offer.Journal{}))))
}
