// Package gallery keeps the filter, layout and lightbox state of a gallery
// consistent while it is driven by clicks, keys, gestures, resizes and
// lazy-load notifications.
//
// A Controller owns one State and routes every mutation through its methods.
// It is not safe for concurrent use: drive it from a single event loop.
package gallery

import (
	"puppetgallery/internal/domain"
)

// LightboxState is the single-item viewer state. CurrentIndex and Item are
// meaningful only while IsOpen is true.
type LightboxState struct {
	IsOpen       bool
	CurrentIndex int           // index into State.Filtered
	Item         domain.ItemID // item displayed at CurrentIndex
}

// State holds the gallery state shared by the sub-components
type State struct {
	ActiveCategory domain.Category
	SearchQuery    string // non-empty while a search partition is in effect

	ActiveView    domain.ViewMode
	PreferredView domain.ViewMode // last explicit choice, restored after the mobile override
	Mobile        bool

	Lightbox     LightboxState
	ScrollLocked bool

	// Filtered is the ordered sub-sequence of registry ids currently visible
	Filtered Sequence
}

func newState(size int, view domain.ViewMode) *State {
	return &State{
		ActiveCategory: domain.CategoryAll,
		ActiveView:     view,
		PreferredView:  view,
		Filtered:       fullSequence(size),
	}
}

// Snapshot is a read-only copy of the state
type Snapshot struct {
	ActiveCategory domain.Category
	SearchQuery    string
	ActiveView     domain.ViewMode
	PreferredView  domain.ViewMode
	Mobile         bool
	LightboxOpen   bool
	CurrentIndex   int
	Current        domain.ItemID
	ScrollLocked   bool
	Filtered       []domain.ItemID
}

func (s *State) snapshot() Snapshot {
	snap := Snapshot{
		ActiveCategory: s.ActiveCategory,
		SearchQuery:    s.SearchQuery,
		ActiveView:     s.ActiveView,
		PreferredView:  s.PreferredView,
		Mobile:         s.Mobile,
		LightboxOpen:   s.Lightbox.IsOpen,
		CurrentIndex:   -1,
		Current:        -1,
		ScrollLocked:   s.ScrollLocked,
		Filtered:       s.Filtered.IDs(),
	}
	if s.Lightbox.IsOpen {
		snap.CurrentIndex = s.Lightbox.CurrentIndex
		snap.Current = s.Lightbox.Item
	}
	return snap
}
