package gallery

import (
	"github.com/rs/zerolog"

	"puppetgallery/internal/domain"
	"puppetgallery/internal/eventbus"
)

// ViewEngine switches the container layout. It never touches the filtered
// sequence or the lightbox.
type ViewEngine struct {
	state      *State
	presenter  Presenter
	bus        eventbus.EventBus
	breakpoint int // widths at or below this are mobile; 0 disables the override
	log        zerolog.Logger
}

// NewViewEngine creates a view engine
func NewViewEngine(state *State, presenter Presenter, bus eventbus.EventBus, breakpoint int, log zerolog.Logger) *ViewEngine {
	return &ViewEngine{
		state:      state,
		presenter:  presenter,
		bus:        bus,
		breakpoint: breakpoint,
		log:        log,
	}
}

// Apply sets the layout chosen by the user. Unknown modes are ignored.
func (v *ViewEngine) Apply(mode domain.ViewMode) bool {
	if !mode.Valid() {
		v.log.Debug().Str("mode", string(mode)).Msg("ignoring unknown view")
		return false
	}
	v.state.PreferredView = mode
	return v.set(mode, false)
}

// Resize reacts to a viewport width. Crossing into the mobile range forces
// the grid; crossing back out restores the user's last explicit choice.
func (v *ViewEngine) Resize(width int) bool {
	if v.breakpoint <= 0 || width <= 0 {
		return false
	}

	mobile := width <= v.breakpoint
	if mobile == v.state.Mobile {
		return false
	}
	v.state.Mobile = mobile

	if mobile {
		return v.set(domain.ViewGrid, true)
	}
	return v.set(v.state.PreferredView, true)
}

func (v *ViewEngine) set(mode domain.ViewMode, forced bool) bool {
	from := v.state.ActiveView
	v.state.ActiveView = mode
	v.presenter.SetActiveView(mode)
	if from == mode {
		return false
	}

	v.presenter.SetLayout(mode, true)
	v.log.Debug().Str("from", string(from)).Str("to", string(mode)).Bool("forced", forced).Msg("view changed")
	v.bus.Publish(eventbus.ViewChangedEvent{From: from, To: mode, Forced: forced})
	return true
}
