package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishByTopic(t *testing.T) {
	hub := NewHub()

	employees, closeEmployees := hub.Subscribe("employees")
	defer closeEmployees()
	everything, closeEverything := hub.Subscribe()
	defer closeEverything()

	hub.Publish(Event{Topic: "employees", Event: "records.loaded", Data: 3})
	hub.Publish(Event{Topic: "leaves", Event: "records.removed", Data: "l1"})

	require.Len(t, employees, 1)
	assert.Equal(t, "records.loaded", (<-employees).Event)

	require.Len(t, everything, 2)
	assert.Equal(t, "employees", (<-everything).Topic)
	assert.Equal(t, "leaves", (<-everything).Topic)
}

func TestHub_MultiTopicSubscriberReceivesOnce(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("attendance", AllTopics)
	defer cleanup()

	hub.Publish(Event{Topic: "attendance", Event: "records.updated"})

	assert.Len(t, ch, 1)
	assert.Equal(t, 1, hub.TotalSubscribers())
}

func TestHub_Cleanup(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("leaves")
	assert.Equal(t, 1, hub.TotalSubscribers())

	cleanup()
	cleanup()

	assert.Equal(t, 0, hub.TotalSubscribers())
	_, open := <-ch
	assert.False(t, open)

	// Publishing with no subscribers must not block or panic.
	hub.Publish(Event{Topic: "leaves"})
}

func TestHub_FullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("employees")
	defer cleanup()

	for i := 0; i < cap(ch)+5; i++ {
		hub.Publish(Event{Topic: "employees", Data: i})
	}
	assert.Len(t, ch, cap(ch))
}

func TestHub_NilPublish(t *testing.T) {
	var hub *Hub
	assert.NotPanics(t, func() { hub.Publish(Event{Topic: "employees"}) })
}
