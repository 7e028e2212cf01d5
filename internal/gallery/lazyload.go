package gallery

import (
	"github.com/rs/zerolog"

	"puppetgallery/internal/domain"
	"puppetgallery/internal/eventbus"
)

// LazyLoader swaps deferred media sources in when cards near the viewport.
// Its state is presentation only; registry items are never modified.
type LazyLoader struct {
	items     []domain.GalleryItem
	observed  map[domain.ItemID]bool
	loaded    map[domain.ItemID]string
	presenter Presenter
	bus       eventbus.EventBus
	log       zerolog.Logger
}

// NewLazyLoader creates a loader over the registry items
func NewLazyLoader(items []domain.GalleryItem, presenter Presenter, bus eventbus.EventBus, log zerolog.Logger) *LazyLoader {
	return &LazyLoader{
		items:     items,
		observed:  make(map[domain.ItemID]bool),
		loaded:    make(map[domain.ItemID]string),
		presenter: presenter,
		bus:       bus,
		log:       log,
	}
}

// Observe registers interest in an unresolved item
func (l *LazyLoader) Observe(id domain.ItemID) {
	item, ok := l.item(id)
	if !ok || !item.Media.Deferred() || l.IsLoaded(id) {
		return
	}
	l.observed[id] = true
}

// ObserveAll observes every unresolved item
func (l *LazyLoader) ObserveAll() {
	for _, item := range l.items {
		l.Observe(item.ID)
	}
}

// Intersect handles items entering viewport proximity and returns how many
// were resolved
func (l *LazyLoader) Intersect(ids []domain.ItemID) int {
	resolved := 0
	for _, id := range ids {
		if !l.observed[id] {
			continue
		}
		if _, fresh := l.Resolve(id); fresh {
			resolved++
		}
	}
	return resolved
}

// Resolve copies the deferred source into the live source. It loads an item
// at most once; fresh reports whether this call did the loading.
func (l *LazyLoader) Resolve(id domain.ItemID) (src string, fresh bool) {
	item, ok := l.item(id)
	if !ok {
		return "", false
	}
	if !item.Media.Deferred() {
		return item.Media.Src, false
	}
	if src, done := l.loaded[id]; done {
		return src, false
	}

	src = item.Media.DeferredSrc
	l.loaded[id] = src
	delete(l.observed, id)

	l.presenter.SetItemSource(id, src)
	l.log.Debug().Int("item", int(id)).Str("src", src).Msg("media resolved")
	l.bus.Publish(eventbus.ItemLoadedEvent{Item: id, Src: src})
	return src, true
}

// IsLoaded reports whether the item shows its real media
func (l *LazyLoader) IsLoaded(id domain.ItemID) bool {
	item, ok := l.item(id)
	if !ok {
		return false
	}
	if !item.Media.Deferred() {
		return true
	}
	_, done := l.loaded[id]
	return done
}

// IsObserved reports whether the item is waiting to enter the viewport
func (l *LazyLoader) IsObserved(id domain.ItemID) bool {
	return l.observed[id]
}

// LiveSource returns the source currently shown for the item
func (l *LazyLoader) LiveSource(id domain.ItemID) string {
	if src, done := l.loaded[id]; done {
		return src
	}
	if item, ok := l.item(id); ok {
		return item.Media.Src
	}
	return ""
}

func (l *LazyLoader) item(id domain.ItemID) (domain.GalleryItem, bool) {
	if id < 0 || int(id) >= len(l.items) {
		return domain.GalleryItem{}, false
	}
	return l.items[id], true
}
