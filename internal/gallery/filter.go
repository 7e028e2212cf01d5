package gallery

import (
	"github.com/rs/zerolog"

	"puppetgallery/internal/domain"
	"puppetgallery/internal/eventbus"
)

// FilterEngine partitions the registry into visible and hidden items.
// Category filters and searches share the same partition pass.
type FilterEngine struct {
	state     *State
	items     []domain.GalleryItem
	presenter Presenter
	bus       eventbus.EventBus
	log       zerolog.Logger
}

// NewFilterEngine creates a filter engine over the registry items
func NewFilterEngine(state *State, items []domain.GalleryItem, presenter Presenter, bus eventbus.EventBus, log zerolog.Logger) *FilterEngine {
	return &FilterEngine{
		state:     state,
		items:     items,
		presenter: presenter,
		bus:       bus,
		log:       log,
	}
}

// Apply selects a category. "all" shows every item; an unknown category
// shows none.
func (f *FilterEngine) Apply(category domain.Category) {
	if category == "" {
		category = domain.CategoryAll
	}

	f.state.ActiveCategory = category
	f.state.SearchQuery = ""
	f.presenter.SetActiveFilter(category)

	visible := f.partition(CategoryPredicate(category))
	f.log.Debug().Str("category", string(category)).Int("visible", visible).Msg("filter applied")
	f.bus.Publish(eventbus.FilterAppliedEvent{Category: category, Visible: visible})
}

// ApplySearch partitions by a search query. The category resets to "all"
// since the query runs across the whole registry.
func (f *FilterEngine) ApplySearch(query string) {
	f.state.ActiveCategory = domain.CategoryAll
	f.state.SearchQuery = query
	f.presenter.SetActiveFilter(domain.CategoryAll)

	visible := f.partition(SearchPredicate(query))
	f.log.Debug().Str("query", query).Int("visible", visible).Msg("search applied")
	f.bus.Publish(eventbus.SearchAppliedEvent{Query: query, Visible: visible})
}

// partition recomputes visibility for every item and swaps in the new
// filtered sequence only once it is complete.
func (f *FilterEngine) partition(match Predicate) int {
	visible := make([]bool, len(f.items))
	seq := make(Sequence, 0, len(f.items))
	for i, item := range f.items {
		if match(item) {
			visible[i] = true
			seq = append(seq, item.ID)
		}
	}

	f.state.Filtered = seq

	for i, item := range f.items {
		f.presenter.SetItemVisible(item.ID, visible[i], visible[i])
	}

	f.bus.Publish(eventbus.SequenceChangedEvent{Sequence: seq.IDs()})
	return len(seq)
}
