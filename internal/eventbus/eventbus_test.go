package eventbus

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishIsSynchronousAndOrdered(t *testing.T) {
	b := New(zerolog.Nop())

	var calls []string
	b.Subscribe(EventSequenceChanged, func(e DomainEvent) { calls = append(calls, "first") })
	b.Subscribe(EventSequenceChanged, func(e DomainEvent) { calls = append(calls, "second") })
	b.Subscribe(EventViewChanged, func(e DomainEvent) { calls = append(calls, "view") })

	b.Publish(SequenceChangedEvent{})

	// Handlers have already run when Publish returns
	require.Equal(t, []string{"first", "second"}, calls)
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	b := New(zerolog.Nop())

	var a, c int
	unsubA := b.Subscribe(EventItemLoaded, func(e DomainEvent) { a++ })
	b.Subscribe(EventItemLoaded, func(e DomainEvent) { c++ })

	b.Publish(ItemLoadedEvent{})
	unsubA()
	unsubA()
	b.Publish(ItemLoadedEvent{})

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, c)
}

func TestHandlerPanicDoesNotEscape(t *testing.T) {
	b := New(zerolog.Nop())

	reached := false
	b.Subscribe(EventLightboxClosed, func(e DomainEvent) { panic("boom") })
	b.Subscribe(EventLightboxClosed, func(e DomainEvent) { reached = true })

	require.NotPanics(t, func() { b.Publish(LightboxClosedEvent{}) })
	assert.True(t, reached, "later handlers still run after a panic")
}

func TestSubscribeDuringPublish(t *testing.T) {
	b := New(zerolog.Nop())

	late := 0
	b.Subscribe(EventFilterApplied, func(e DomainEvent) {
		b.Subscribe(EventFilterApplied, func(e DomainEvent) { late++ })
	})

	b.Publish(FilterAppliedEvent{})
	assert.Equal(t, 0, late, "handler added mid-publish waits for the next event")

	b.Publish(FilterAppliedEvent{})
	assert.Equal(t, 1, late)
}
