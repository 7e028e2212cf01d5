package gallery

import (
	"github.com/rs/zerolog"

	"puppetgallery/internal/domain"
	"puppetgallery/internal/eventbus"
)

// Keys understood by the lightbox
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Navigator drives the lightbox over the current filtered sequence.
// Navigation clamps at both ends.
type Navigator struct {
	state     *State
	items     []domain.GalleryItem
	lazy      *LazyLoader
	presenter Presenter
	bus       eventbus.EventBus
	threshold int
	log       zerolog.Logger
}

// NewNavigator creates a navigator and subscribes it to sequence changes so
// an open lightbox is re-anchored before the publishing call returns.
func NewNavigator(state *State, items []domain.GalleryItem, lazy *LazyLoader, presenter Presenter, bus eventbus.EventBus, threshold int, log zerolog.Logger) *Navigator {
	n := &Navigator{
		state:     state,
		items:     items,
		lazy:      lazy,
		presenter: presenter,
		bus:       bus,
		threshold: threshold,
		log:       log,
	}
	bus.Subscribe(eventbus.EventSequenceChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SequenceChangedEvent); ok {
			n.Reanchor(Sequence(ev.Sequence))
		}
	})
	return n
}

// Open shows the lightbox on an item of the filtered sequence. Hidden or
// unknown items are ignored.
func (n *Navigator) Open(id domain.ItemID) bool {
	idx := n.state.Filtered.IndexOf(id)
	if idx < 0 {
		n.log.Debug().Int("item", int(id)).Msg("open ignored: item not visible")
		return false
	}
	return n.OpenAt(idx)
}

// OpenAt shows the lightbox at a position of the filtered sequence
func (n *Navigator) OpenAt(index int) bool {
	if index < 0 || index >= len(n.state.Filtered) {
		return false
	}

	id := n.state.Filtered[index]
	n.state.Lightbox = LightboxState{IsOpen: true, CurrentIndex: index, Item: id}
	n.state.ScrollLocked = true
	n.presenter.SetScrollLock(true)
	n.show()

	n.bus.Publish(eventbus.LightboxOpenedEvent{Item: id, Index: index})
	return true
}

// Close hides the lightbox and releases the scroll lock
func (n *Navigator) Close() bool {
	return n.close(false)
}

// Next moves to the following item; a no-op at the last one
func (n *Navigator) Next() bool {
	return n.move(1)
}

// Prev moves to the preceding item; a no-op at the first one
func (n *Navigator) Prev() bool {
	return n.move(-1)
}

// HandleKey reacts to Escape and the arrow keys while the lightbox is open
func (n *Navigator) HandleKey(key string) bool {
	if !n.state.Lightbox.IsOpen {
		return false
	}
	switch key {
	case KeyEscape:
		return n.Close()
	case KeyArrowLeft:
		return n.Prev()
	case KeyArrowRight:
		return n.Next()
	}
	return false
}

// Swipe navigates on a horizontal gesture over the open lightbox
func (n *Navigator) Swipe(g Gesture) bool {
	if !n.state.Lightbox.IsOpen {
		return false
	}
	switch g.Direction(n.threshold) {
	case SwipeNext:
		return n.Next()
	case SwipePrev:
		return n.Prev()
	}
	return false
}

// Reanchor keeps an open lightbox on its item after the sequence changed.
// If the item is no longer visible the lightbox closes.
func (n *Navigator) Reanchor(seq Sequence) {
	lb := n.state.Lightbox
	if !lb.IsOpen {
		return
	}

	idx := seq.IndexOf(lb.Item)
	if idx < 0 {
		n.close(true)
		return
	}

	n.state.Lightbox.CurrentIndex = idx
	n.show()
	if idx != lb.CurrentIndex {
		n.bus.Publish(eventbus.LightboxMovedEvent{Item: lb.Item, OldIndex: lb.CurrentIndex, NewIndex: idx})
	}
}

func (n *Navigator) move(delta int) bool {
	lb := n.state.Lightbox
	if !lb.IsOpen {
		return false
	}
	next := lb.CurrentIndex + delta
	if next < 0 || next >= len(n.state.Filtered) {
		return false
	}

	id := n.state.Filtered[next]
	n.state.Lightbox.CurrentIndex = next
	n.state.Lightbox.Item = id
	n.show()

	n.bus.Publish(eventbus.LightboxMovedEvent{Item: id, OldIndex: lb.CurrentIndex, NewIndex: next})
	return true
}

func (n *Navigator) close(forced bool) bool {
	wasOpen := n.state.Lightbox.IsOpen
	item := n.state.Lightbox.Item

	n.state.Lightbox = LightboxState{}
	n.state.ScrollLocked = false
	n.presenter.HideLightbox()
	n.presenter.SetScrollLock(false)

	if !wasOpen {
		return false
	}
	n.log.Debug().Int("item", int(item)).Bool("forced", forced).Msg("lightbox closed")
	n.bus.Publish(eventbus.LightboxClosedEvent{Item: item, Forced: forced})
	return true
}

// show renders the current item, resolving its media first and warming the
// next one.
func (n *Navigator) show() {
	lb := n.state.Lightbox
	src, _ := n.lazy.Resolve(lb.Item)
	n.presenter.ShowLightbox(LightboxView{
		Item:  n.items[lb.Item],
		Src:   src,
		Index: lb.CurrentIndex,
		Total: len(n.state.Filtered),
	})

	if next := lb.CurrentIndex + 1; next < len(n.state.Filtered) {
		n.lazy.Resolve(n.state.Filtered[next])
	}
}
