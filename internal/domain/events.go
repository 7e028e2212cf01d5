package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFilterApplied   EventType = "FilterApplied"
	EventSearchApplied   EventType = "SearchApplied"
	EventSequenceChanged EventType = "SequenceChanged"
	EventViewChanged     EventType = "ViewChanged"
	EventLightboxOpened  EventType = "LightboxOpened"
	EventLightboxMoved   EventType = "LightboxMoved"
	EventLightboxClosed  EventType = "LightboxClosed"
	EventItemLoaded      EventType = "ItemLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FilterAppliedEvent is emitted after a category filter pass completes
type FilterAppliedEvent struct {
	Category Category
	Visible  int
}

func (e FilterAppliedEvent) Type() EventType { return EventFilterApplied }

// SearchAppliedEvent is emitted after a search pass completes
type SearchAppliedEvent struct {
	Query   string
	Visible int
}

func (e SearchAppliedEvent) Type() EventType { return EventSearchApplied }

// SequenceChangedEvent is emitted whenever the filtered sequence is recomputed.
// Subscribers that hold an index into the old sequence must re-anchor.
type SequenceChangedEvent struct {
	Sequence []ItemID
}

func (e SequenceChangedEvent) Type() EventType { return EventSequenceChanged }

// ViewChangedEvent is emitted when the layout mode changes
type ViewChangedEvent struct {
	From   ViewMode
	To     ViewMode
	Forced bool // set by the mobile breakpoint override
}

func (e ViewChangedEvent) Type() EventType { return EventViewChanged }

// LightboxOpenedEvent is emitted when the lightbox opens on an item
type LightboxOpenedEvent struct {
	Item  ItemID
	Index int
}

func (e LightboxOpenedEvent) Type() EventType { return EventLightboxOpened }

// LightboxMovedEvent is emitted when the lightbox index changes while open
type LightboxMovedEvent struct {
	Item     ItemID
	OldIndex int
	NewIndex int
}

func (e LightboxMovedEvent) Type() EventType { return EventLightboxMoved }

// LightboxClosedEvent is emitted when the lightbox closes
type LightboxClosedEvent struct {
	Item   ItemID
	Forced bool // closed because the item left the filtered sequence
}

func (e LightboxClosedEvent) Type() EventType { return EventLightboxClosed }

// ItemLoadedEvent is emitted once per item when its deferred media is resolved
type ItemLoadedEvent struct {
	Item ItemID
	Src  string
}

func (e ItemLoadedEvent) Type() EventType { return EventItemLoaded }
