package feed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	name   string
	topics []Topic
	log    *[]string
	err    error
}

func (r *recorder) Handle(e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics = append(r.topics, e.Topic())
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
	return r.err
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.topics)
}

func TestEmitInRegistrationOrder(t *testing.T) {
	b := NewBus()
	var log []string
	first := &recorder{name: "first", log: &log}
	second := &recorder{name: "second", log: &log}
	require.NoError(t, b.On(TopicDiscountApplied, first))
	require.NoError(t, b.On(TopicDiscountApplied, second))

	require.NoError(t, b.Emit(NewEvent(context.Background(), TopicDiscountApplied, "x")))
	assert.Equal(t, []string{"first", "second"}, log)

	require.NoError(t, b.Emit(NewEvent(context.Background(), TopicOfferRejected, "y")))
	assert.Equal(t, 1, first.count())
}

func TestEmitJoinsErrors(t *testing.T) {
	b := NewBus()
	boom := errors.New("boom")
	ok := &recorder{}
	failing := &recorder{err: boom}
	require.NoError(t, b.On(TopicOfferRejected, failing))
	require.NoError(t, b.On(TopicOfferRejected, ok))

	err := b.Emit(NewEvent(context.Background(), TopicOfferRejected, nil))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, ok.count())
}

func TestOnce(t *testing.T) {
	b := NewBus()
	once := &recorder{}
	always := &recorder{}
	require.NoError(t, b.Once(TopicPrestigeDisplayed, once))
	require.NoError(t, b.On(TopicPrestigeDisplayed, always))

	for i := 0; i < 3; i++ {
		require.NoError(t, b.Emit(NewEvent(context.Background(), TopicPrestigeDisplayed, i)))
	}
	assert.Equal(t, 1, once.count())
	assert.Equal(t, 3, always.count())
}

func TestOff(t *testing.T) {
	b := NewBus()
	lis := &recorder{}
	once := &recorder{}
	require.NoError(t, b.On(TopicDiscountApplied, lis))
	require.NoError(t, b.Once(TopicDiscountApplied, once))
	require.NoError(t, b.On(TopicDiscountApplied, ListenerFunc(func(Event) error { return nil })))

	require.NoError(t, b.Off(TopicDiscountApplied, lis))
	require.NoError(t, b.Off(TopicDiscountApplied, once))
	require.NoError(t, b.Emit(NewEvent(context.Background(), TopicDiscountApplied, nil)))
	assert.Zero(t, lis.count())
	assert.Zero(t, once.count())

	err := b.Off(TopicDiscountApplied, ListenerFunc(func(Event) error { return nil }))
	assert.ErrorIs(t, err, ErrListenerIncomparable)
}

func TestInvalidArgs(t *testing.T) {
	b := NewBus()
	assert.ErrorIs(t, b.On(TopicDiscountApplied, nil), ErrListenerNil)
	assert.ErrorIs(t, b.On("", &recorder{}), ErrTopicEmpty)
	assert.ErrorIs(t, b.Emit(nil), ErrEventNil)
	assert.ErrorIs(t, b.Emit(NewEvent(context.Background(), "", nil)), ErrTopicEmpty)
}

func TestAsyncEmitAndClose(t *testing.T) {
	b := NewBus()
	lis := &recorder{}
	require.NoError(t, b.On(TopicDiscountApplied, lis))
	for i := 0; i < 5; i++ {
		_ = b.AsyncEmit(NewEvent(context.Background(), TopicDiscountApplied, i))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, b.Close(ctx))
	assert.Equal(t, 5, lis.count())

	assert.ErrorIs(t, b.Close(ctx), ErrBusClosed)
	assert.ErrorIs(t, b.Emit(NewEvent(context.Background(), TopicDiscountApplied, nil)), ErrBusClosed)
	assert.ErrorIs(t, b.On(TopicDiscountApplied, lis), ErrBusClosed)
	assert.ErrorIs(t, <-b.AsyncEmit(NewEvent(context.Background(), TopicDiscountApplied, nil)), ErrBusClosed)
}

func TestEventContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	e := NewEvent(ctx, TopicOfferRejected, 42)
	assert.Equal(t, "v", e.Context().Value(key{}))
	assert.Equal(t, 42, e.Body())
	assert.False(t, e.When().IsZero())

	e = NewEvent(nil, TopicOfferRejected, 42)
	assert.NotNil(t, e.Context())
}
