package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"puppetgallery/internal/gallery"
	"puppetgallery/internal/ui/input/types"
)

// LightboxMode maps terminal keys onto the lightbox keys
type LightboxMode struct{}

func NewLightboxMode() *LightboxMode {
	return &LightboxMode{}
}

func (m *LightboxMode) Name() string {
	return "lightbox"
}

func (m *LightboxMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *LightboxMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *LightboxMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, Keys.LightboxClose):
		return []types.Action{types.LightboxKeyAction{Key: gallery.KeyEscape}}, true
	case key.Matches(msg, Keys.LightboxPrev):
		return []types.Action{types.LightboxKeyAction{Key: gallery.KeyArrowLeft}}, true
	case key.Matches(msg, Keys.LightboxNext):
		return []types.Action{types.LightboxKeyAction{Key: gallery.KeyArrowRight}}, true
	case key.Matches(msg, Keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	// Background keys are swallowed while the page is scroll-locked
	return nil, true
}
