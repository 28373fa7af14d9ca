package feed

import "sync"

// Listener is Event listener interface.
type Listener interface {
	// Handle handles Event logic.
	Handle(event Event) error
}

// The ListenerFunc type is an adapter to allow the use of ordinary functions as Listener.
// Func values are not comparable, so a ListenerFunc registered with On cannot be removed with Off.
type ListenerFunc func(event Event) error

// Handle calls f(event).
func (f ListenerFunc) Handle(event Event) error {
	return f(event)
}

type onceListener struct {
	Listener Listener
	Once     sync.Once
}

func (listener *onceListener) Handle(event Event) error {
	var err error
	listener.Once.Do(func() {
		err = listener.Listener.Handle(event)
	})
	return err
}
