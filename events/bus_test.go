package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewBus(nil)

	var got []Event
	bus.Subscribe(TopicPostPublished, func(e Event) {
		got = append(got, e)
	})

	bus.Publish(TopicPostPublished, "post-1")
	bus.Publish(TopicCommentSubmitted, "comment-1") // different topic, not delivered

	require.Len(t, got, 1)
	assert.Equal(t, TopicPostPublished, got[0].Topic)
	assert.Equal(t, "post-1", got[0].Payload)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].At.IsZero())
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil)

	calls := 0
	unsubscribe := bus.Subscribe(TopicConfigUpdated, func(Event) { calls++ })

	bus.Publish(TopicConfigUpdated, nil)
	unsubscribe()
	bus.Publish(TopicConfigUpdated, nil)

	assert.Equal(t, 1, calls)
}

func TestBus_MultipleSubscribers(t *testing.T) {
	bus := NewBus(nil)

	first, second := 0, 0
	bus.Subscribe(TopicCommentModerated, func(Event) { first++ })
	bus.Subscribe(TopicCommentModerated, func(Event) { second++ })

	bus.Publish(TopicCommentModerated, nil)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestBus_ClosedBusDropsEvents(t *testing.T) {
	bus := NewBus(nil)

	calls := 0
	bus.Subscribe(TopicPostDeleted, func(Event) { calls++ })

	require.NoError(t, bus.Close())
	bus.Publish(TopicPostDeleted, nil)

	assert.Equal(t, 0, calls)
}
