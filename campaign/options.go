package campaign

import (
	"errors"

	"github.com/go-leo/offer-visitor/feed"
	"github.com/go-leo/offer-visitor/offer"
	"github.com/rs/zerolog"
)

// ErrCardNil Application has no card
var ErrCardNil = errors.New("card is nil")

type options struct {
	Logger      zerolog.Logger
	Bus         feed.Bus
	Parallel    bool
	Workers     int
	Middlewares []offer.Middleware
}

func newOptions(opts ...Option) *options {
	o := &options{Logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(o *options)

// Logger sets the logger outcomes are logged to.
func Logger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.Logger = logger
	}
}

// Bus sets the bus events are published on.
func Bus(bus feed.Bus) Option {
	return func(o *options) {
		o.Bus = bus
	}
}

// Parallel runs the applications of different cards concurrently.
func Parallel(parallel bool) Option {
	return func(o *options) {
		o.Parallel = parallel
	}
}

// Workers limits how many cards are served at once in parallel mode. Zero means no limit.
func Workers(n int) Option {
	return func(o *options) {
		o.Workers = n
	}
}

// Middlewares decorate every offer before it visits a card.
func Middlewares(middlewares ...offer.Middleware) Option {
	return func(o *options) {
		o.Middlewares = append(o.Middlewares, middlewares...)
	}
}
