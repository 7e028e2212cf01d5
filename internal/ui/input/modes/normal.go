package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"puppetgallery/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// Digits pick a filter button directly; 0 is "all"
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if r := msg.Runes[0]; r >= '0' && r <= '9' {
			idx := int(r - '0')
			if idx > ctx.FilterCount() {
				return nil, true
			}
			return []types.Action{types.SelectFilterAction{Index: idx}}, true
		}
	}

	switch {
	case key.Matches(msg, Keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, Keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, Keys.Left):
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case key.Matches(msg, Keys.Right):
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case key.Matches(msg, Keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, Keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, Keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, Keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, Keys.Open):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.OpenAction{}}, true

	case key.Matches(msg, Keys.NextFilter):
		return []types.Action{types.CycleFilterAction{Delta: 1}}, true
	case key.Matches(msg, Keys.PrevFilter):
		return []types.Action{types.CycleFilterAction{Delta: -1}}, true
	case key.Matches(msg, Keys.View):
		return []types.Action{types.ToggleViewAction{}}, true
	case key.Matches(msg, Keys.Reset):
		return []types.Action{types.ResetFiltersAction{}}, true

	case key.Matches(msg, Keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}, true

	case key.Matches(msg, Keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, Keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
