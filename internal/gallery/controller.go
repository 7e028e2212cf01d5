package gallery

import (
	"github.com/rs/zerolog"

	"puppetgallery/internal/domain"
	"puppetgallery/internal/eventbus"
	"puppetgallery/internal/registry"
)

// Defaults used when no option overrides them
const (
	DefaultSwipeThreshold   = 6
	DefaultMobileBreakpoint = 80
)

// Controller owns the gallery state and is the only entry point that mutates it
type Controller struct {
	reg   *registry.Registry
	items []domain.GalleryItem
	state *State

	presenter *attachedPresenter
	bus       eventbus.EventBus
	log       zerolog.Logger

	filter *FilterEngine
	view   *ViewEngine
	lazy   *LazyLoader
	nav    *Navigator
	search Debouncer
}

type options struct {
	presenter  Presenter
	log        zerolog.Logger
	threshold  int
	breakpoint int
	view       domain.ViewMode
}

// Option configures a Controller
type Option func(*options)

// WithPresenter sets the presenter that receives output effects
func WithPresenter(p Presenter) Option {
	return func(o *options) { o.presenter = p }
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithSwipeThreshold sets the minimum horizontal travel of a swipe
func WithSwipeThreshold(n int) Option {
	return func(o *options) { o.threshold = n }
}

// WithMobileBreakpoint sets the width at or below which the grid is forced.
// Zero disables the override.
func WithMobileBreakpoint(n int) Option {
	return func(o *options) { o.breakpoint = n }
}

// WithDefaultView sets the initial layout
func WithDefaultView(mode domain.ViewMode) Option {
	return func(o *options) { o.view = mode }
}

// NewController snapshots the registry into a fresh state with every item
// visible, the grid layout and the lightbox closed, and starts observing
// deferred media.
func NewController(reg *registry.Registry, opts ...Option) *Controller {
	o := options{
		presenter:  NopPresenter{},
		log:        zerolog.Nop(),
		threshold:  DefaultSwipeThreshold,
		breakpoint: DefaultMobileBreakpoint,
		view:       domain.ViewGrid,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.view.Valid() {
		o.view = domain.ViewGrid
	}
	if o.presenter == nil {
		o.presenter = NopPresenter{}
	}

	items := reg.Items()
	c := &Controller{
		reg:       reg,
		items:     items,
		state:     newState(len(items), o.view),
		presenter: &attachedPresenter{target: o.presenter},
		bus:       eventbus.New(o.log),
		log:       o.log,
	}

	c.filter = NewFilterEngine(c.state, items, c.presenter, c.bus, o.log)
	c.view = NewViewEngine(c.state, c.presenter, c.bus, o.breakpoint, o.log)
	c.lazy = NewLazyLoader(items, c.presenter, c.bus, o.log)
	c.nav = NewNavigator(c.state, items, c.lazy, c.presenter, c.bus, o.threshold, o.log)
	c.lazy.ObserveAll()

	c.log.Info().Int("items", len(items)).Str("view", string(o.view)).Msg("gallery initialized")
	return c
}

// Bus returns the event bus the engines publish on
func (c *Controller) Bus() eventbus.EventBus {
	return c.bus
}

// Attach replaces the presenter and replays the current state onto it
func (c *Controller) Attach(p Presenter) {
	if p == nil {
		p = NopPresenter{}
	}
	c.presenter.target = p
	c.Sync()
}

// Sync pushes the whole state to the presenter without animations
func (c *Controller) Sync() {
	p := c.presenter
	for _, item := range c.items {
		p.SetItemVisible(item.ID, c.state.Filtered.Contains(item.ID), false)
	}
	for id := range c.items {
		if src, done := c.lazy.loaded[domain.ItemID(id)]; done {
			p.SetItemSource(domain.ItemID(id), src)
		}
	}
	p.SetActiveFilter(c.state.ActiveCategory)
	p.SetActiveView(c.state.ActiveView)
	p.SetLayout(c.state.ActiveView, false)
	if c.state.Lightbox.IsOpen {
		c.nav.show()
	} else {
		p.HideLightbox()
	}
	p.SetScrollLock(c.state.ScrollLocked)
}

// ApplyFilter shows only items of the category, or every item for "all"
func (c *Controller) ApplyFilter(category domain.Category) {
	c.search.Cancel()
	c.filter.Apply(category)
}

// ResetFilters returns to the full gallery and clears any search
func (c *Controller) ResetFilters() {
	c.ApplyFilter(domain.CategoryAll)
}

// ApplyView switches to the grid or list layout
func (c *Controller) ApplyView(mode domain.ViewMode) bool {
	return c.view.Apply(mode)
}

// Resize reports a new viewport width
func (c *Controller) Resize(width int) bool {
	return c.view.Resize(width)
}

// Open shows the lightbox on a visible item
func (c *Controller) Open(id domain.ItemID) bool {
	return c.nav.Open(id)
}

// OpenAt shows the lightbox at a position of the filtered sequence
func (c *Controller) OpenAt(index int) bool {
	return c.nav.OpenAt(index)
}

// Close hides the lightbox
func (c *Controller) Close() bool {
	return c.nav.Close()
}

// Next advances the lightbox
func (c *Controller) Next() bool {
	return c.nav.Next()
}

// Prev moves the lightbox back
func (c *Controller) Prev() bool {
	return c.nav.Prev()
}

// HandleKey routes Escape and arrow keys to the lightbox
func (c *Controller) HandleKey(key string) bool {
	return c.nav.HandleKey(key)
}

// Swipe routes a pointer gesture to the lightbox
func (c *Controller) Swipe(g Gesture) bool {
	return c.nav.Swipe(g)
}

// Search applies a query immediately. A blank query resets to "all".
func (c *Controller) Search(query string) {
	c.search.Cancel()
	q := normalizeQuery(query)
	if q == "" {
		c.filter.Apply(domain.CategoryAll)
		return
	}
	c.filter.ApplySearch(q)
}

// ScheduleSearch records a query to apply once the debounce delay elapses
func (c *Controller) ScheduleSearch(query string) Token {
	return c.search.Schedule(query)
}

// FireSearch applies the scheduled query if token is still the latest
func (c *Controller) FireSearch(token Token) bool {
	q, ok := c.search.Fire(token)
	if ok {
		c.Search(q)
	}
	return ok
}

// FlushSearch applies a pending query without waiting
func (c *Controller) FlushSearch() bool {
	q, ok := c.search.Flush()
	if ok {
		c.Search(q)
	}
	return ok
}

// CancelSearch drops a pending query
func (c *Controller) CancelSearch() {
	c.search.Cancel()
}

// SearchPending reports whether a debounced query is waiting
func (c *Controller) SearchPending() bool {
	return c.search.Pending()
}

// Intersect reports items entering viewport proximity
func (c *Controller) Intersect(ids []domain.ItemID) int {
	return c.lazy.Intersect(ids)
}

// Snapshot returns a copy of the state
func (c *Controller) Snapshot() Snapshot {
	return c.state.snapshot()
}

// Filtered returns the current filtered sequence
func (c *Controller) Filtered() []domain.ItemID {
	return c.state.Filtered.IDs()
}

// Current returns the item shown in the lightbox
func (c *Controller) Current() (domain.GalleryItem, bool) {
	if !c.state.Lightbox.IsOpen {
		return domain.GalleryItem{}, false
	}
	return c.Item(c.state.Lightbox.Item)
}

// Item returns a registry item
func (c *Controller) Item(id domain.ItemID) (domain.GalleryItem, bool) {
	return c.reg.At(id)
}

// Items returns every registry item in order
func (c *Controller) Items() []domain.GalleryItem {
	return c.reg.Items()
}

// Categories returns the closed category set, without "all"
func (c *Controller) Categories() []domain.Category {
	return c.reg.Categories()
}

// IsLoaded reports whether the item's real media is showing
func (c *Controller) IsLoaded(id domain.ItemID) bool {
	return c.lazy.IsLoaded(id)
}

// LiveSource returns the media source currently shown for the item
func (c *Controller) LiveSource(id domain.ItemID) string {
	return c.lazy.LiveSource(id)
}

// attachedPresenter lets the front end be attached after construction
type attachedPresenter struct {
	target Presenter
}

func (a *attachedPresenter) SetItemVisible(id domain.ItemID, visible, entering bool) {
	a.target.SetItemVisible(id, visible, entering)
}

func (a *attachedPresenter) SetActiveFilter(category domain.Category) {
	a.target.SetActiveFilter(category)
}

func (a *attachedPresenter) SetActiveView(mode domain.ViewMode) {
	a.target.SetActiveView(mode)
}

func (a *attachedPresenter) SetLayout(mode domain.ViewMode, transition bool) {
	a.target.SetLayout(mode, transition)
}

func (a *attachedPresenter) ShowLightbox(view LightboxView) {
	a.target.ShowLightbox(view)
}

func (a *attachedPresenter) HideLightbox() {
	a.target.HideLightbox()
}

func (a *attachedPresenter) SetScrollLock(locked bool) {
	a.target.SetScrollLock(locked)
}

func (a *attachedPresenter) SetItemSource(id domain.ItemID, src string) {
	a.target.SetItemSource(id, src)
}
