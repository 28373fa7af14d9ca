package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-leo/offer-visitor/feed"
)

// Text writes one console line per prestige display and per applied discount.
// Rejections are not written; they surface as the run's error.
type Text struct {
	mu sync.Mutex
	w  io.Writer
}

func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (r *Text) Handle(e feed.Event) error {
	var line string
	switch body := e.Body().(type) {
	case feed.PrestigeDisplayed:
		line = body.Effect.Description
	case feed.DiscountApplied:
		line = body.Discount.Message()
	default:
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := fmt.Fprintln(r.w, line)
	return err
}
