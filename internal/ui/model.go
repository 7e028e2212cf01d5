package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"puppetgallery/internal/config"
	"puppetgallery/internal/domain"
	"puppetgallery/internal/eventbus"
	"puppetgallery/internal/gallery"
	"puppetgallery/internal/ui/input"
	"puppetgallery/internal/ui/input/modes"
	inputtypes "puppetgallery/internal/ui/input/types"
	"puppetgallery/internal/ui/services/navigation"
	"puppetgallery/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	ctrl   *gallery.Controller
	config *config.Config
	log    zerolog.Logger

	width       int
	height      int
	help        help.Model
	status      string
	notice      bool // status holds a notice the next summary must not replace
	inPagerMode bool // tracks if we're currently in pager mode

	// pointer press waiting for its release
	pressed        bool
	pressX, pressY int

	presenter    *termPresenter
	renderer     *views.Renderer
	nav          *navigation.Service
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model driving the controller
func NewModel(ctrl *gallery.Controller, cfg *config.Config, log zerolog.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := &Model{
		ctrl:         ctrl,
		config:       cfg,
		log:          log.With().Str("component", "ui").Logger(),
		help:         help.New(),
		presenter:    newTermPresenter(),
		renderer:     views.NewRenderer(),
		nav:          navigation.NewService(),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
	}

	ctrl.Attach(m.presenter)
	m.subscribe(ctrl.Bus())
	m.nav.SetLayout(len(ctrl.Filtered()), 1, 1)
	return m
}

// subscribe turns notable gallery events into status messages. Handlers
// run synchronously inside the controller call made from Update.
func (m *Model) subscribe(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventFilterApplied, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.FilterAppliedEvent)
		if !m.takeNotice() {
			m.status = fmt.Sprintf("%s: %d items", m.renderer.FilterLabel(ev.Category), ev.Visible)
		}
	})
	bus.Subscribe(eventbus.EventSearchApplied, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SearchAppliedEvent)
		if !m.takeNotice() {
			m.status = fmt.Sprintf("Search %q: %d matches", ev.Query, ev.Visible)
		}
	})
	bus.Subscribe(eventbus.EventViewChanged, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ViewChangedEvent)
		switch {
		case !ev.Forced:
		case m.ctrl.Snapshot().Mobile:
			m.status = fmt.Sprintf("Narrow window: %s view", ev.To)
		default:
			m.status = fmt.Sprintf("Back to %s view", ev.To)
		}
	})
	// A forced close happens inside a filter or search pass; its notice
	// outlives the summary published at the end of that pass.
	bus.Subscribe(eventbus.EventLightboxClosed, func(e eventbus.DomainEvent) {
		if e.(eventbus.LightboxClosedEvent).Forced {
			m.status = "Lightbox closed: the item is no longer shown"
			m.notice = true
		}
	})
}

func (m *Model) takeNotice() bool {
	held := m.notice
	m.notice = false
	return held
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Puppet Theatre Gallery")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ctrl.Resize(msg.Width)

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		actions, cmd := m.inputHandler.HandleKey(msg, modelContext{m})
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case tea.MouseMsg:
		if m.inPagerMode {
			return m, nil
		}
		cmds = append(cmds, m.handleMouse(msg))

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.handleNonKeyboardMsg(msg))
	}

	cmds = append(cmds, m.afterUpdate())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case searchDebounceMsg:
		if m.ctrl.FireSearch(msg.token) {
			m.nav.MoveToIndex(0)
			return m.clearStatusLater()
		}

	case fadeExpiredMsg:
		m.presenter.expireFade(msg.gen)

	case transitionExpiredMsg:
		m.presenter.expireTransition(msg.gen)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only
			m.log.Error().Err(msg.err).Msg("help pager failed")
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case clearStatusMsg:
		m.status = ""
	}
	return nil
}

// afterUpdate brings the cursor, lazy loading, input mode and animation
// timers in line with the gallery after a message was handled
func (m *Model) afterUpdate() tea.Cmd {
	snap := m.ctrl.Snapshot()

	if m.width > 0 {
		m.nav.SetLayout(len(snap.Filtered),
			views.Columns(snap.ActiveView, m.width),
			views.ViewportRows(snap.ActiveView, m.height))
	}
	if snap.LightboxOpen {
		m.nav.MoveToIndex(snap.CurrentIndex)
	}
	if m.width > 0 {
		from, to := m.nav.VisibleRange(m.config.Lazy.RootMargin)
		if n := m.ctrl.Intersect(snap.Filtered[from:to]); n > 0 {
			m.log.Debug().Int("count", n).Msg("resolved lazy media")
		}
	}

	m.inputHandler.Sync(modelContext{m})
	return m.presenter.flush()
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug().Str("action", action.Type()).Msg("processing action")

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		// The page behind an open lightbox does not scroll
		if m.presenter.locked {
			return nil
		}
		m.nav.Navigate(navigation.Direction(a.Direction))

	case inputtypes.OpenAction:
		m.ctrl.OpenAt(m.nav.Cursor())

	case inputtypes.CycleFilterAction:
		filters := m.filterButtons()
		current := 0
		for i, c := range filters {
			if c == m.presenter.filter {
				current = i
				break
			}
		}
		next := ((current+a.Delta)%len(filters) + len(filters)) % len(filters)
		return m.applyFilter(filters[next])

	case inputtypes.SelectFilterAction:
		filters := m.filterButtons()
		if a.Index < 0 || a.Index >= len(filters) {
			return nil
		}
		return m.applyFilter(filters[a.Index])

	case inputtypes.ResetFiltersAction:
		m.ctrl.ResetFilters()
		m.nav.MoveToIndex(0)
		return m.clearStatusLater()

	case inputtypes.ToggleViewAction:
		mode := domain.ViewList
		if m.presenter.view == domain.ViewList {
			mode = domain.ViewGrid
		}
		m.ctrl.ApplyView(mode)

	case inputtypes.LightboxKeyAction:
		m.ctrl.HandleKey(a.Key)

	case inputtypes.UpdateTextAction:
		token := m.ctrl.ScheduleSearch(a.Text)
		delay := time.Duration(m.config.Search.DebounceMS) * time.Millisecond
		return tea.Tick(delay, func(time.Time) tea.Msg {
			return searchDebounceMsg{token: token}
		})

	case inputtypes.SubmitTextAction:
		applied := m.ctrl.FlushSearch()
		if !applied && strings.TrimSpace(a.Text) != m.ctrl.Snapshot().SearchQuery {
			m.ctrl.Search(a.Text)
			applied = true
		}
		if applied {
			m.nav.MoveToIndex(0)
			return m.clearStatusLater()
		}

	case inputtypes.CancelTextAction:
		m.ctrl.CancelSearch()
		if m.ctrl.Snapshot().SearchQuery != "" {
			m.ctrl.Search("")
			m.nav.MoveToIndex(0)
			return m.clearStatusLater()
		}

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.status = m.help.ShortHelpView(modes.Keys.ShortHelp())
			return m.clearStatusLater()
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) applyFilter(category domain.Category) tea.Cmd {
	m.ctrl.ApplyFilter(category)
	m.nav.MoveToIndex(0)
	return m.clearStatusLater()
}

// filterButtons lists the filter buttons in display order
func (m *Model) filterButtons() []domain.Category {
	return append([]domain.Category{domain.CategoryAll}, m.ctrl.Categories()...)
}

// handleMouse turns a press and release into a click or a swipe
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		return m.processAction(inputtypes.NavigateAction{Direction: string(navigation.DirectionUp)})
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		return m.processAction(inputtypes.NavigateAction{Direction: string(navigation.DirectionDown)})

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.pressed = true
		m.pressX, m.pressY = msg.X, msg.Y
		return nil

	case msg.Action == tea.MouseActionRelease:
		if !m.pressed {
			return nil
		}
		m.pressed = false
		g := gallery.Gesture{StartX: m.pressX, StartY: m.pressY, EndX: msg.X, EndY: msg.Y}
		if m.ctrl.Snapshot().LightboxOpen && m.ctrl.Swipe(g) {
			return nil
		}
		return m.click(m.pressX, m.pressY)
	}
	return nil
}

// click dispatches a click at a screen cell
func (m *Model) click(x, y int) tea.Cmd {
	zone, ok := views.HitTest(m.renderer.Zones(m.viewState()), x, y)

	if m.ctrl.Snapshot().LightboxOpen {
		switch {
		case !ok, zone.Kind == views.ZoneLightboxClose:
			m.ctrl.Close()
		case zone.Kind == views.ZoneLightboxPrev:
			m.ctrl.Prev()
		case zone.Kind == views.ZoneLightboxNext:
			m.ctrl.Next()
		}
		return nil
	}
	if !ok {
		return nil
	}

	switch zone.Kind {
	case views.ZoneFilter:
		return m.applyFilter(domain.Category(zone.Value))
	case views.ZoneView:
		m.ctrl.ApplyView(domain.ViewMode(zone.Value))
	case views.ZoneCard:
		m.nav.MoveToIndex(zone.Index)
		m.ctrl.OpenAt(zone.Index)
	}
	return nil
}

func (m *Model) clearStatusLater() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// viewState collects everything the renderer needs
func (m *Model) viewState() views.ViewState {
	snap := m.ctrl.Snapshot()
	items := m.ctrl.Items()

	loaded := make(map[domain.ItemID]bool, len(items))
	for _, item := range items {
		loaded[item.ID] = m.ctrl.IsLoaded(item.ID)
	}

	state := views.ViewState{
		Width:        m.width,
		Height:       m.height,
		Categories:   m.ctrl.Categories(),
		ActiveFilter: m.presenter.filter,
		ActiveView:   m.presenter.view,
		Transition:   m.presenter.transition,
		Items:        items,
		Filtered:     snap.Filtered,
		Entering:     m.presenter.enteringSet(),
		Loaded:       loaded,
		Cursor:       m.nav.Cursor(),
		OffsetRow:    m.nav.OffsetRow(),
		ViewportRows: m.nav.ViewportRows(),
		Columns:      m.nav.Columns(),
		SearchQuery:  snap.SearchQuery,
		Lightbox:     m.presenter.lightbox,
		Status:       m.status,
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		state.Searching = true
		state.SearchInput = ti.View()
		state.SearchPending = m.ctrl.SearchPending()
	}

	if state.Lightbox != nil {
		state.HelpLine = m.help.ShortHelpView(modes.Keys.LightboxHelp())
	} else {
		state.HelpLine = m.help.ShortHelpView(modes.Keys.ShortHelp())
	}
	return state
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.viewState())
}
