package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	kept := make(chan Event, 10)
	dropped := make(chan Event, 10)
	bus.Subscribe(kept)
	bus.Subscribe(dropped)

	bus.Unsubscribe(dropped)
	close(dropped)
	bus.Publish(Event{Type: EventUnitCreated})

	assert.Len(t, kept, 1)
	assert.Len(t, dropped, 0)

	// Unknown subscribers are ignored
	bus.Unsubscribe(make(chan Event))
	bus.Publish(Event{Type: EventUnitConsolidated})
	assert.Len(t, kept, 2)
}
