package events_test

import (
	"testing"

	"pokedex/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesTopicSubscribersOnly(t *testing.T) {
	b := events.NewBroker()
	loaded := b.Subscribe(events.TopicCatalogLoaded)
	failed := b.Subscribe(events.TopicCatalogLoadFailed)

	b.Publish(events.TopicCatalogLoaded, 200)

	select {
	case ev := <-loaded:
		assert.Equal(t, events.TopicCatalogLoaded, ev.Topic)
		assert.Equal(t, 200, ev.Data)
	default:
		t.Fatal("expected an event on the loaded topic")
	}

	select {
	case ev := <-failed:
		t.Fatalf("unexpected event %v", ev)
	default:
	}
}

func TestPublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	b := events.NewBroker()
	ch := b.Subscribe(events.TopicDetailFetchFailed)

	for i := 0; i < 100; i++ {
		b.Publish(events.TopicDetailFetchFailed, i)
	}

	received := 0
	for len(ch) > 0 {
		<-ch
		received++
	}
	assert.Positive(t, received)
	assert.Less(t, received, 100)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := events.NewBroker()
	ch := b.Subscribe(events.TopicCatalogLoaded)

	b.Unsubscribe(events.TopicCatalogLoaded, ch)
	_, open := <-ch
	require.False(t, open)

	// Publishing after unsubscribe must not panic on the closed channel.
	b.Publish(events.TopicCatalogLoaded, nil)
}
