package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"puppetgallery/internal/domain"
	"puppetgallery/internal/gallery"
)

// Durations of the transient animation flags
const (
	fadeDuration       = 600 * time.Millisecond
	transitionDuration = 300 * time.Millisecond
)

// termPresenter records gallery effects for the renderer. Transient flags
// carry a generation so that an expiry tick only clears the flags it was
// scheduled for.
type termPresenter struct {
	visible  map[domain.ItemID]bool
	entering map[domain.ItemID]int
	sources  map[domain.ItemID]string

	filter   domain.Category
	view     domain.ViewMode
	lightbox *gallery.LightboxView
	locked   bool

	fadeGen           int
	fadePending       bool
	transitionGen     int
	transition        bool
	transitionPending bool
}

func newTermPresenter() *termPresenter {
	return &termPresenter{
		visible:  make(map[domain.ItemID]bool),
		entering: make(map[domain.ItemID]int),
		sources:  make(map[domain.ItemID]string),
		filter:   domain.CategoryAll,
		view:     domain.ViewGrid,
	}
}

func (p *termPresenter) SetItemVisible(id domain.ItemID, visible, entering bool) {
	p.visible[id] = visible
	if visible && entering {
		p.entering[id] = p.fadeGen + 1
		p.fadePending = true
		return
	}
	delete(p.entering, id)
}

func (p *termPresenter) SetActiveFilter(category domain.Category) {
	p.filter = category
}

func (p *termPresenter) SetActiveView(mode domain.ViewMode) {
	p.view = mode
}

func (p *termPresenter) SetLayout(mode domain.ViewMode, transition bool) {
	p.view = mode
	if transition {
		p.transition = true
		p.transitionPending = true
	}
}

func (p *termPresenter) ShowLightbox(view gallery.LightboxView) {
	v := view
	p.lightbox = &v
}

func (p *termPresenter) HideLightbox() {
	p.lightbox = nil
}

func (p *termPresenter) SetScrollLock(locked bool) {
	p.locked = locked
}

func (p *termPresenter) SetItemSource(id domain.ItemID, src string) {
	p.sources[id] = src
}

// flush schedules the expiry of flags raised since the last flush
func (p *termPresenter) flush() tea.Cmd {
	var cmds []tea.Cmd
	if p.fadePending {
		p.fadePending = false
		p.fadeGen++
		gen := p.fadeGen
		cmds = append(cmds, tea.Tick(fadeDuration, func(time.Time) tea.Msg {
			return fadeExpiredMsg{gen: gen}
		}))
	}
	if p.transitionPending {
		p.transitionPending = false
		p.transitionGen++
		gen := p.transitionGen
		cmds = append(cmds, tea.Tick(transitionDuration, func(time.Time) tea.Msg {
			return transitionExpiredMsg{gen: gen}
		}))
	}
	return tea.Batch(cmds...)
}

func (p *termPresenter) expireFade(gen int) {
	for id, g := range p.entering {
		if g <= gen {
			delete(p.entering, id)
		}
	}
}

func (p *termPresenter) expireTransition(gen int) {
	if gen == p.transitionGen {
		p.transition = false
	}
}

func (p *termPresenter) enteringSet() map[domain.ItemID]bool {
	out := make(map[domain.ItemID]bool, len(p.entering))
	for id := range p.entering {
		out[id] = true
	}
	return out
}
