package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puppetgallery/internal/eventbus"
)

func TestGestureDirection(t *testing.T) {
	tests := []struct {
		name string
		g    Gesture
		want SwipeDirection
	}{
		{"left swipe advances", Gesture{StartX: 40, StartY: 5, EndX: 20, EndY: 6}, SwipeNext},
		{"right swipe goes back", Gesture{StartX: 20, StartY: 5, EndX: 40, EndY: 3}, SwipePrev},
		{"at threshold is ignored", Gesture{StartX: 10, EndX: 16}, SwipeNone},
		{"vertical dominates", Gesture{StartX: 10, StartY: 0, EndX: 20, EndY: 15}, SwipeNone},
		{"tap", Gesture{StartX: 3, StartY: 3, EndX: 3, EndY: 3}, SwipeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.g.Direction(6))
		})
	}
}

func TestSwipeNavigatesOnlyWhileOpen(t *testing.T) {
	c, _ := newTestController(t, WithSwipeThreshold(6))
	left := Gesture{StartX: 40, EndX: 10}
	right := Gesture{StartX: 10, EndX: 40}

	assert.False(t, c.Swipe(left))

	require.True(t, c.Open(itemA))
	require.True(t, c.Swipe(left))
	assert.Equal(t, 1, c.Snapshot().CurrentIndex)
	require.True(t, c.Swipe(right))
	assert.Equal(t, 0, c.Snapshot().CurrentIndex)
	assert.False(t, c.Swipe(right), "clamped at the first item")
}

func TestKeysDriveLightbox(t *testing.T) {
	c, rec := newTestController(t)

	require.True(t, c.Open(itemB))
	assert.True(t, c.HandleKey(KeyArrowRight))
	assert.Equal(t, 2, c.Snapshot().CurrentIndex)
	assert.True(t, c.HandleKey(KeyArrowLeft))
	assert.False(t, c.HandleKey("Enter"))

	assert.True(t, c.HandleKey(KeyEscape))
	assert.False(t, c.Snapshot().LightboxOpen)
	assert.False(t, rec.locked)
	assert.Nil(t, rec.lightbox)
}

func TestCloseAlwaysReleasesScrollLock(t *testing.T) {
	c, rec := newTestController(t)

	var closed []eventbus.LightboxClosedEvent
	c.Bus().Subscribe(eventbus.EventLightboxClosed, func(e eventbus.DomainEvent) {
		closed = append(closed, e.(eventbus.LightboxClosedEvent))
	})

	assert.False(t, c.Close(), "closing a closed lightbox reports no change")
	assert.False(t, rec.locked)

	require.True(t, c.Open(itemA))
	require.True(t, c.Close())
	assert.False(t, rec.locked)

	require.True(t, c.Open(itemA))
	c.ApplyFilter("puppet")
	assert.False(t, rec.locked)

	require.Len(t, closed, 2)
	assert.False(t, closed[0].Forced)
	assert.True(t, closed[1].Forced)
	assert.Equal(t, itemA, closed[1].Item)
}

func TestReanchorUpdatesTotal(t *testing.T) {
	c, rec := newTestController(t)

	require.True(t, c.Open(itemA))
	assert.Equal(t, 3, rec.lightbox.Total)

	c.Search("mask")
	require.NotNil(t, rec.lightbox)
	assert.Equal(t, 2, rec.lightbox.Total)
	assert.Equal(t, 0, rec.lightbox.Index)
}
