package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puppetgallery/internal/domain"
	"puppetgallery/internal/eventbus"
)

func TestApplyViewLeavesSequenceAndLightbox(t *testing.T) {
	c, rec := newTestController(t)
	c.ApplyFilter("mask")
	require.True(t, c.Open(itemC))
	before := c.Snapshot()

	require.True(t, c.ApplyView(domain.ViewList))

	after := c.Snapshot()
	assert.Equal(t, domain.ViewList, after.ActiveView)
	assert.Equal(t, domain.ViewList, rec.view)
	assert.Equal(t, domain.ViewList, rec.layout)
	assert.Equal(t, before.Filtered, after.Filtered)
	assert.Equal(t, before.CurrentIndex, after.CurrentIndex)
	assert.True(t, after.LightboxOpen)
}

func TestApplyViewIgnoresUnknownMode(t *testing.T) {
	c, _ := newTestController(t)

	assert.False(t, c.ApplyView("carousel"))
	assert.Equal(t, domain.ViewGrid, c.Snapshot().ActiveView)
	assert.False(t, c.ApplyView(domain.ViewGrid), "same mode is not a change")
}

func TestMobileBreakpointForcesGridAndRestoresChoice(t *testing.T) {
	c, rec := newTestController(t, WithMobileBreakpoint(80))

	var events []eventbus.ViewChangedEvent
	c.Bus().Subscribe(eventbus.EventViewChanged, func(e eventbus.DomainEvent) {
		events = append(events, e.(eventbus.ViewChangedEvent))
	})

	c.Resize(120)
	c.ApplyView(domain.ViewList)

	require.True(t, c.Resize(60))
	snap := c.Snapshot()
	assert.True(t, snap.Mobile)
	assert.Equal(t, domain.ViewGrid, snap.ActiveView)
	assert.Equal(t, domain.ViewList, snap.PreferredView)
	assert.Equal(t, domain.ViewGrid, rec.view, "indicator follows the forced grid")

	assert.False(t, c.Resize(50), "still mobile")

	require.True(t, c.Resize(100))
	assert.Equal(t, domain.ViewList, c.Snapshot().ActiveView)

	require.Len(t, events, 3)
	assert.False(t, events[0].Forced)
	assert.True(t, events[1].Forced)
	assert.Equal(t, domain.ViewGrid, events[1].To)
	assert.True(t, events[2].Forced)
}

func TestBreakpointDisabled(t *testing.T) {
	c, _ := newTestController(t, WithMobileBreakpoint(0), WithDefaultView(domain.ViewList))

	assert.False(t, c.Resize(10))
	assert.Equal(t, domain.ViewList, c.Snapshot().ActiveView)
}
