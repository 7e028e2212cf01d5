package modes

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the gallery key bindings
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Open       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	View       key.Binding
	Search     key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding

	LightboxPrev  key.Binding
	LightboxNext  key.Binding
	LightboxClose key.Binding
}

// Keys is the default key map
var Keys = KeyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "first")),
	End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "last")),
	Open:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "zoom")),
	NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
	PrevFilter: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev filter")),
	View:       key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "grid/list")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	LightboxPrev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
	LightboxNext:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	LightboxClose: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.NextFilter, k.View, k.Search, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Open, k.NextFilter, k.PrevFilter, k.View, k.Search, k.Reset},
		{k.LightboxPrev, k.LightboxNext, k.LightboxClose},
		{k.Help, k.Quit},
	}
}

// LightboxHelp is the short help shown while the lightbox is open
func (k KeyMap) LightboxHelp() []key.Binding {
	return []key.Binding{k.LightboxPrev, k.LightboxNext, k.LightboxClose}
}
