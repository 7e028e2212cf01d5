package gallery

import (
	"testing"

	"puppetgallery/internal/domain"
	"puppetgallery/internal/registry"
)

// recorder keeps the last effect applied for every target
type recorder struct {
	visible   map[domain.ItemID]bool
	entering  map[domain.ItemID]bool
	sources   map[domain.ItemID]string
	filter    domain.Category
	view      domain.ViewMode
	layout    domain.ViewMode
	lightbox  *LightboxView
	locked    bool
	lockCalls int
}

func newRecorder() *recorder {
	return &recorder{
		visible:  make(map[domain.ItemID]bool),
		entering: make(map[domain.ItemID]bool),
		sources:  make(map[domain.ItemID]string),
	}
}

func (r *recorder) SetItemVisible(id domain.ItemID, visible, entering bool) {
	r.visible[id] = visible
	r.entering[id] = entering
}

func (r *recorder) SetActiveFilter(category domain.Category) { r.filter = category }
func (r *recorder) SetActiveView(mode domain.ViewMode)       { r.view = mode }
func (r *recorder) SetLayout(mode domain.ViewMode, _ bool)   { r.layout = mode }

func (r *recorder) ShowLightbox(view LightboxView) {
	v := view
	r.lightbox = &v
}

func (r *recorder) HideLightbox() { r.lightbox = nil }

func (r *recorder) SetScrollLock(locked bool) {
	r.locked = locked
	r.lockCalls++
}

func (r *recorder) SetItemSource(id domain.ItemID, src string) { r.sources[id] = src }

// Items A (mask), B (puppet), C (mask); A and C have deferred images.
const (
	itemA domain.ItemID = 0
	itemB domain.ItemID = 1
	itemC domain.ItemID = 2
)

func testItems() []domain.GalleryItem {
	return []domain.GalleryItem{
		{
			Category:    "mask",
			Title:       "Red Face Mask",
			Description: "Worn by the loyal general",
			Tags:        []string{"Opera"},
			Media:       domain.MediaRef{Kind: domain.MediaImage, Src: "placeholder.jpg", DeferredSrc: "a.jpg"},
		},
		{
			Category:    "puppet",
			Title:       "String Marionette",
			Description: "A string puppet carved from camphor wood",
			Tags:        []string{"Carving"},
			Media:       domain.MediaRef{Kind: domain.MediaImage, Src: "b.jpg"},
		},
		{
			Category:    "mask",
			Title:       "Mask Dance",
			Description: "Stage footage",
			Tags:        []string{"Performance"},
			Media:       domain.MediaRef{Kind: domain.MediaImage, Src: "placeholder.jpg", DeferredSrc: "c.jpg"},
		},
	}
}

func newTestController(t *testing.T, opts ...Option) (*Controller, *recorder) {
	t.Helper()
	rec := newRecorder()
	reg := registry.New(testItems(), nil)
	c := NewController(reg, append([]Option{WithPresenter(rec)}, opts...)...)
	return c, rec
}
