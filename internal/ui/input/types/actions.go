package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// OpenAction zooms the card under the cursor into the lightbox
type OpenAction struct{}

func (a OpenAction) Type() string { return "open" }

// Filter actions
type CycleFilterAction struct {
	Delta int
}

func (a CycleFilterAction) Type() string { return "cycle_filter" }

type SelectFilterAction struct {
	Index int // 0 is "all", n is the nth category
}

func (a SelectFilterAction) Type() string { return "select_filter" }

type ResetFiltersAction struct{}

func (a ResetFiltersAction) Type() string { return "reset_filters" }

type ToggleViewAction struct{}

func (a ToggleViewAction) Type() string { return "toggle_view" }

// LightboxKeyAction forwards a lightbox key ("Escape", "ArrowLeft", "ArrowRight")
type LightboxKeyAction struct {
	Key string
}

func (a LightboxKeyAction) Type() string { return "lightbox_key" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
