package feed

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/go-leo/gox/slicex"
	"github.com/go-leo/gox/syncx"
	"github.com/go-leo/gox/syncx/chanx"
)

type Bus interface {
	// On adds a Listener for the topic.
	On(topic Topic, lis Listener) error

	// Once adds a one-time Listener for the topic.
	Once(topic Topic, lis Listener) error

	// Off removes the specified Listener from the topic.
	Off(topic Topic, lis Listener) error

	// Emit synchronously calls each of the listeners registered for the event's topic,
	// in the order they were registered.
	Emit(e Event) error

	// AsyncEmit asynchronously calls each of the listeners registered for the event's topic.
	AsyncEmit(e Event) <-chan error

	// Close bus gracefully, waiting for asynchronous listeners.
	Close(ctx context.Context) error
}

var _ Bus = (*bus)(nil)

type bus struct {
	mu         sync.RWMutex
	listeners  map[Topic][]Listener
	wg         sync.WaitGroup
	inShutdown atomic.Bool // true when bus is in shutdown
	options    *option
}

func (b *bus) On(topic Topic, lis Listener) error {
	if err := b.check(topic, lis); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[topic] = append(b.listeners[topic], lis)
	return nil
}

func (b *bus) Once(topic Topic, lis Listener) error {
	if err := b.check(topic, lis); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[topic] = append(b.listeners[topic], &onceListener{Listener: lis})
	return nil
}

func (b *bus) Off(topic Topic, lis Listener) error {
	if err := b.check(topic, lis); err != nil {
		return err
	}
	if !reflect.TypeOf(lis).Comparable() {
		return ErrListenerIncomparable
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	indexes := slicex.IndexesFunc(b.listeners[topic], func(registered Listener) bool {
		if once, ok := registered.(*onceListener); ok {
			registered = once.Listener
		}
		return sameListener(registered, lis)
	})
	if len(indexes) == 0 {
		return nil
	}
	b.listeners[topic] = slicex.DeleteAll(b.listeners[topic], indexes...)
	return nil
}

func (b *bus) Emit(e Event) error {
	if err := b.checkEvent(e); err != nil {
		return err
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	listeners := b.snapshot(e.Topic())
	errs := make([]error, 0, len(listeners))
	for _, listener := range listeners {
		errs = append(errs, listener.Handle(e))
	}
	b.dropFired(e.Topic(), listeners)
	return errors.Join(errs...)
}

func (b *bus) AsyncEmit(e Event) <-chan error {
	if err := b.checkEvent(e); err != nil {
		return failed(err)
	}
	if b.shuttingDown() {
		return failed(ErrBusClosed)
	}
	listeners := b.snapshot(e.Topic())
	if len(listeners) == 0 {
		return failed(nil)
	}
	errCs := make([]<-chan error, 0, len(listeners))
	for _, listener := range listeners {
		listener := listener
		errC := make(chan error, 1)
		b.wg.Add(1)
		err := b.options.Pool.Go(func() {
			defer b.wg.Done()
			defer close(errC)
			if err := listener.Handle(e); err != nil {
				errC <- err
			}
		})
		if err != nil {
			b.wg.Done()
			errC <- err
			close(errC)
		}
		errCs = append(errCs, errC)
	}
	b.dropFired(e.Topic(), listeners)
	return chanx.Combine[error](errCs...)
}

func (b *bus) Close(ctx context.Context) error {
	if b.inShutdown.CompareAndSwap(false, true) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-syncx.WaitNotify(&b.wg):
			return nil
		}
	}
	return ErrBusClosed
}

func (b *bus) shuttingDown() bool {
	return b.inShutdown.Load()
}

func (b *bus) snapshot(topic Topic) []Listener {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Listener(nil), b.listeners[topic]...)
}

// dropFired removes the one-time listeners among fired from the topic.
func (b *bus) dropFired(topic Topic, fired []Listener) {
	var onces []Listener
	for _, lis := range fired {
		if _, ok := lis.(*onceListener); ok {
			onces = append(onces, lis)
		}
	}
	if len(onces) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	indexes := slicex.IndexesFunc(b.listeners[topic], func(registered Listener) bool {
		for _, once := range onces {
			if registered == once {
				return true
			}
		}
		return false
	})
	if len(indexes) > 0 {
		b.listeners[topic] = slicex.DeleteAll(b.listeners[topic], indexes...)
	}
}

func (b *bus) check(topic Topic, lis Listener) error {
	if topic == "" {
		return ErrTopicEmpty
	}
	if lis == nil {
		return ErrListenerNil
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	return nil
}

func (b *bus) checkEvent(e Event) error {
	if e == nil {
		return ErrEventNil
	}
	if e.Topic() == "" {
		return ErrTopicEmpty
	}
	return nil
}

func sameListener(a, b Listener) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func failed(err error) <-chan error {
	errC := make(chan error, 1)
	if err != nil {
		errC <- err
	}
	close(errC)
	return errC
}
