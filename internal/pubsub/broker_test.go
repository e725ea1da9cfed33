package pubsub

import (
	"context"
	"testing"

	"github.com/amiigood/folio/internal/resource"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}

func TestBroker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	broker := NewBroker[string](nopLogger{})
	sub1 := broker.Subscribe(ctx)
	sub2 := broker.Subscribe(ctx)

	broker.Publish(resource.OpenedEvent, "finder")

	want := resource.NewEvent(resource.OpenedEvent, "finder")
	assert.Equal(t, want, <-sub1)
	assert.Equal(t, want, <-sub2)
}

func TestBroker_CancelContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	broker := NewBroker[string](nopLogger{})
	sub := broker.Subscribe(ctx)
	cancel()

	// channel is closed once unsubscribed
	for range sub {
	}
}

func TestBroker_Shutdown(t *testing.T) {
	broker := NewBroker[string](nopLogger{})
	sub := broker.Subscribe(context.Background())

	broker.Shutdown()

	_, ok := <-sub
	assert.False(t, ok)

	// subscribing after shutdown yields a closed channel
	_, ok = <-broker.Subscribe(context.Background())
	assert.False(t, ok)
}

func TestBroker_FullSubscriber(t *testing.T) {
	broker := NewBroker[int](nopLogger{})
	sub := broker.Subscribe(context.Background())

	for i := 0; i <= subBufferSize; i++ {
		broker.Publish(resource.OpenedEvent, i)
	}

	var got int
	for range sub {
		got++
	}
	assert.Equal(t, subBufferSize, got)
}
