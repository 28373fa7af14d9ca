package feed

import "errors"

var (
	// ErrEventNil Event arg is nil
	ErrEventNil = errors.New("event is nil")

	// ErrTopicEmpty Event has no topic
	ErrTopicEmpty = errors.New("event topic is empty")

	// ErrListenerNil Listener arg is nil
	ErrListenerNil = errors.New("listener is nil")

	// ErrBusClosed bus is closed
	ErrBusClosed = errors.New("bus is closed")
)

// ErrListenerIncomparable Listener can not be compared, so it can not be removed
var ErrListenerIncomparable = errors.New("listener is incomparable")
