package gallery

import (
	"puppetgallery/internal/domain"
)

// Entrance and transition animation classes
const (
	EnterClass      = "fade-in-up"
	TransitionClass = "view-transition"
)

// LightboxView is what the lightbox displays
type LightboxView struct {
	Item  domain.GalleryItem
	Src   string
	Index int
	Total int
}

// Presenter applies the visible effects of state changes. Implementations
// must tolerate missing markup by doing nothing.
type Presenter interface {
	// SetItemVisible shows or removes a card from layout flow. entering marks
	// a shown card for the transient entrance animation.
	SetItemVisible(id domain.ItemID, visible, entering bool)
	SetActiveFilter(category domain.Category)
	SetActiveView(mode domain.ViewMode)
	// SetLayout swaps the container layout class
	SetLayout(mode domain.ViewMode, transition bool)
	ShowLightbox(view LightboxView)
	HideLightbox()
	SetScrollLock(locked bool)
	SetItemSource(id domain.ItemID, src string)
}

// NopPresenter ignores every effect, as on a page without gallery markup
type NopPresenter struct{}

func (NopPresenter) SetItemVisible(domain.ItemID, bool, bool) {}
func (NopPresenter) SetActiveFilter(domain.Category)          {}
func (NopPresenter) SetActiveView(domain.ViewMode)            {}
func (NopPresenter) SetLayout(domain.ViewMode, bool)          {}
func (NopPresenter) ShowLightbox(LightboxView)                {}
func (NopPresenter) HideLightbox()                            {}
func (NopPresenter) SetScrollLock(bool)                       {}
func (NopPresenter) SetItemSource(domain.ItemID, string)      {}

// MultiPresenter fans effects out to several presenters in order
type MultiPresenter []Presenter

func (m MultiPresenter) SetItemVisible(id domain.ItemID, visible, entering bool) {
	for _, p := range m {
		p.SetItemVisible(id, visible, entering)
	}
}

func (m MultiPresenter) SetActiveFilter(category domain.Category) {
	for _, p := range m {
		p.SetActiveFilter(category)
	}
}

func (m MultiPresenter) SetActiveView(mode domain.ViewMode) {
	for _, p := range m {
		p.SetActiveView(mode)
	}
}

func (m MultiPresenter) SetLayout(mode domain.ViewMode, transition bool) {
	for _, p := range m {
		p.SetLayout(mode, transition)
	}
}

func (m MultiPresenter) ShowLightbox(view LightboxView) {
	for _, p := range m {
		p.ShowLightbox(view)
	}
}

func (m MultiPresenter) HideLightbox() {
	for _, p := range m {
		p.HideLightbox()
	}
}

func (m MultiPresenter) SetScrollLock(locked bool) {
	for _, p := range m {
		p.SetScrollLock(locked)
	}
}

func (m MultiPresenter) SetItemSource(id domain.ItemID, src string) {
	for _, p := range m {
		p.SetItemSource(id, src)
	}
}
