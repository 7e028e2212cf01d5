package domain

// ItemID is the stable identity of a gallery item: its position in the registry
type ItemID int

// Category is one tag from the closed set of gallery categories
type Category string

// CategoryAll selects every item
const CategoryAll Category = "all"

// ViewMode is the layout of the gallery container
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Valid reports whether the mode is a known layout
func (v ViewMode) Valid() bool {
	return v == ViewGrid || v == ViewList
}

// LayoutClass returns the container class for the mode
func (v ViewMode) LayoutClass() string {
	return "gallery-" + string(v)
}

// MediaKind distinguishes image and video cards
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaRef points at the media shown by a card
type MediaRef struct {
	Kind        MediaKind
	Src         string // placeholder source present at load time
	DeferredSrc string // real source, swapped in when the card nears the viewport
	Alt         string
}

// Deferred reports whether the media waits for lazy resolution
func (m MediaRef) Deferred() bool {
	return m.DeferredSrc != ""
}

// GalleryItem represents one card of the gallery
type GalleryItem struct {
	ID          ItemID
	Category    Category
	Title       string
	Description string
	Tags        []string
	Media       MediaRef
}

// AltText returns the media alt text, falling back to the title
func (i GalleryItem) AltText() string {
	if i.Media.Alt != "" {
		return i.Media.Alt
	}
	return i.Title
}
