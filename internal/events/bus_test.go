package events_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/arm5e-effects/internal/events"
	"github.com/KirkDiggler/arm5e-effects/internal/testutils"
)

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus(nil)

	// Track execution order
	var executionOrder []string
	record := func(id string, priority int) *testListener {
		return &testListener{
			id:       id,
			priority: priority,
			handler: func(e events.Event) error {
				executionOrder = append(executionOrder, id)
				return nil
			},
		}
	}

	// Subscribe out of order
	bus.Subscribe(events.EventTypeAfterRecordToggle, record("audit", events.PriorityObserver))
	bus.Subscribe(events.EventTypeAfterRecordToggle, record("rules", events.PriorityRules))
	bus.Subscribe(events.EventTypeAfterRecordToggle, record("first-default", events.PriorityDefault))
	bus.Subscribe(events.EventTypeAfterRecordToggle, record("second-default", events.PriorityDefault))

	rec := testutils.CreateTestRecord("ae-1", "Might")
	err := bus.Emit(events.NewRecordEvent(events.EventTypeAfterRecordToggle, rec, false))
	require.NoError(t, err)

	assert.Equal(t, []string{"rules", "first-default", "second-default", "audit"}, executionOrder)
}

func TestEventBus_Cancellation(t *testing.T) {
	bus := events.NewBus(nil)

	var firstExecuted, secondExecuted bool

	// First listener vetoes the delete
	first := &testListener{
		id:       "first",
		priority: events.PriorityRules,
		handler: func(e events.Event) error {
			firstExecuted = true
			if e.GetRecord().Name == "Warping" {
				e.Cancel()
			}
			return nil
		},
	}

	// Second listener should not execute
	second := &testListener{
		id:       "second",
		priority: events.PriorityObserver,
		handler: func(e events.Event) error {
			secondExecuted = true
			return nil
		},
	}

	bus.Subscribe(events.EventTypeBeforeRecordDelete, first)
	bus.Subscribe(events.EventTypeBeforeRecordDelete, second)

	event := events.NewRecordEvent(events.EventTypeBeforeRecordDelete, testutils.CreateTestRecord("ae-1", "Warping"), true)
	err := bus.Emit(event)
	require.NoError(t, err)

	assert.True(t, firstExecuted)
	assert.False(t, secondExecuted)
	assert.True(t, event.IsCancelled())
}

func TestEventBus_ListenerError(t *testing.T) {
	bus := events.NewBus(nil)

	bus.Subscribe(events.EventTypeAfterRecordDelete, &testListener{
		id:       "broken",
		priority: events.PriorityDefault,
		handler: func(e events.Event) error {
			return fmt.Errorf("cache unavailable")
		},
	})

	err := bus.Emit(events.NewRecordEvent(events.EventTypeAfterRecordDelete, testutils.CreateTestRecord("ae-1", "Might"), false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listener broken failed")
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := events.NewBus(nil)

	var calls []string
	for _, id := range []string{"a", "b", "c"} {
		bus.Subscribe(events.EventTypeAfterRecordCreate, &testListener{
			id:       id,
			priority: events.PriorityDefault,
			handler: func(e events.Event) error {
				calls = append(calls, id)
				return nil
			},
		})
	}
	bus.Unsubscribe(events.EventTypeAfterRecordCreate, "b")
	bus.Unsubscribe(events.EventTypeAfterRecordCreate, "missing")

	event := &events.RecordCreatedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeAfterRecordCreate},
		OwnerID:   "magus-1",
	}
	require.NoError(t, bus.Emit(event))
	assert.Equal(t, []string{"a", "c"}, calls)

	bus.Clear()
	calls = nil
	require.NoError(t, bus.Emit(event))
	assert.Empty(t, calls)
}

// Test helper: simple event listener
type testListener struct {
	id       string
	priority int
	handler  func(events.Event) error
}

func (l *testListener) ID() string                       { return l.id }
func (l *testListener) Priority() int                    { return l.priority }
func (l *testListener) HandleEvent(e events.Event) error { return l.handler(e) }
