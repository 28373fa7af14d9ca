// Package render writes offer events for people and machines.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-leo/offer-visitor/feed"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat output format is not supported
var ErrUnknownFormat = errors.New("unknown output format")

// Topics are the topics a renderer listens on.
var Topics = []feed.Topic{feed.TopicPrestigeDisplayed, feed.TopicDiscountApplied, feed.TopicOfferRejected}

// New returns the renderer for format writing to w.
func New(format string, w io.Writer) (feed.Listener, error) {
	switch format {
	case FormatText:
		return NewText(w), nil
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Subscribe registers lis on every renderer topic of bus.
func Subscribe(bus feed.Bus, lis feed.Listener) error {
	for _, topic := range Topics {
		if err := bus.On(topic, lis); err != nil {
			return err
		}
	}
	return nil
}
