package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"puppetgallery/internal/domain"
	"puppetgallery/internal/gallery"
)

// Screen geometry shared by rendering and hit testing
const (
	TitleRow  = 0
	FilterRow = 1
	ViewRow   = 2
	SearchRow = 3
	CardsTop  = 5

	CardWidth  = 24 // outer width of a grid card
	CardHeight = 5  // outer height of a grid card
	CardGap    = 1
	CellWidth  = CardWidth + CardGap

	footerLines = 1
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Categories   []domain.Category
	ActiveFilter domain.Category
	ActiveView   domain.ViewMode
	Transition   bool

	Items    []domain.GalleryItem
	Filtered []domain.ItemID
	Entering map[domain.ItemID]bool
	Loaded   map[domain.ItemID]bool

	Cursor       int
	OffsetRow    int
	ViewportRows int
	Columns      int

	SearchQuery   string
	SearchInput   string // rendered text input while searching
	Searching     bool
	SearchPending bool

	Lightbox *gallery.LightboxView

	HelpLine string
	Status   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles   *Styles
	lightbox *LightboxRenderer
	title    cases.Caser
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:   styles,
		lightbox: NewLightboxRenderer(styles),
		title:    cases.Title(language.Und),
	}
}

// Columns returns how many cards fit a row for the layout
func Columns(mode domain.ViewMode, width int) int {
	if mode == domain.ViewList || width < CellWidth {
		return 1
	}
	return (width + CardGap) / CellWidth
}

// RowHeight returns the height of one layout row
func RowHeight(mode domain.ViewMode) int {
	if mode == domain.ViewList {
		return 1
	}
	return CardHeight
}

// ViewportRows returns how many layout rows fit between header and footer
func ViewportRows(mode domain.ViewMode, height int) int {
	rows := (height - CardsTop - footerLines) / RowHeight(mode)
	if rows < 1 {
		return 1
	}
	return rows
}

// FilterLabel returns the button caption for a category
func (r *Renderer) FilterLabel(category domain.Category) string {
	return r.title.String(string(category))
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	lines := make([]string, 0, state.Height)

	lines = append(lines, r.renderTitle(state))
	lines = append(lines, r.renderButtons(r.filterButtons(state)))
	lines = append(lines, r.renderButtons(r.viewButtons(state)))
	lines = append(lines, r.renderSearch(state))
	lines = append(lines, "")

	cards := r.renderCards(state)
	if state.Transition {
		cards = r.styles.Dim.Render(ansi.Strip(cards))
	}
	lines = append(lines, cards)

	content := strings.Join(lines, "\n")

	// Push the footer to the last line
	if state.Height > 0 {
		used := strings.Count(content, "\n") + 1
		if pad := state.Height - footerLines - used; pad > 0 {
			content += strings.Repeat("\n", pad)
		}
	}
	content += "\n" + r.renderFooter(state)

	if state.Lightbox != nil {
		return r.lightbox.Render(*state.Lightbox, state.Width, state.Height)
	}
	return content
}

// Zones returns the clickable regions of the screen for the state
func (r *Renderer) Zones(state ViewState) []Zone {
	if state.Lightbox != nil {
		return r.lightbox.Zones(*state.Lightbox, state.Width, state.Height)
	}

	var zones []Zone
	zones = append(zones, buttonZones(r.filterButtons(state), FilterRow, ZoneFilter)...)
	zones = append(zones, buttonZones(r.viewButtons(state), ViewRow, ZoneView)...)

	cols := state.Columns
	if cols < 1 {
		cols = 1
	}
	rowHeight := RowHeight(state.ActiveView)
	from := state.OffsetRow * cols
	to := (state.OffsetRow + state.ViewportRows) * cols
	for pos := from; pos < to && pos < len(state.Filtered); pos++ {
		row := pos/cols - state.OffsetRow
		col := pos % cols
		z := Zone{Kind: ZoneCard, Index: pos, Y0: CardsTop + row*rowHeight, Y1: CardsTop + (row+1)*rowHeight}
		if state.ActiveView == domain.ViewList {
			z.X0, z.X1 = 0, max(state.Width, 1)
		} else {
			z.X0 = col * CellWidth
			z.X1 = z.X0 + CardWidth
		}
		zones = append(zones, z)
	}
	return zones
}

type button struct {
	label  string
	value  string
	active bool
}

func (r *Renderer) filterButtons(state ViewState) []button {
	buttons := []button{{
		label:  "0 All",
		value:  string(domain.CategoryAll),
		active: state.ActiveFilter == domain.CategoryAll,
	}}
	for i, c := range state.Categories {
		buttons = append(buttons, button{
			label:  fmt.Sprintf("%d %s", i+1, r.FilterLabel(c)),
			value:  string(c),
			active: state.ActiveFilter == c,
		})
	}
	return buttons
}

func (r *Renderer) viewButtons(state ViewState) []button {
	return []button{
		{label: "▦ Grid", value: string(domain.ViewGrid), active: state.ActiveView == domain.ViewGrid},
		{label: "☰ List", value: string(domain.ViewList), active: state.ActiveView == domain.ViewList},
	}
}

func (r *Renderer) renderButtons(buttons []button) string {
	parts := make([]string, len(buttons))
	for i, b := range buttons {
		if b.active {
			parts[i] = r.styles.ButtonActive.Render(b.label)
		} else {
			parts[i] = r.styles.Button.Render(b.label)
		}
	}
	return strings.Join(parts, " ")
}

// buttonZones mirrors renderButtons: one padding cell each side, one space between
func buttonZones(buttons []button, row int, kind ZoneKind) []Zone {
	zones := make([]Zone, 0, len(buttons))
	x := 0
	for _, b := range buttons {
		w := lipgloss.Width(b.label) + 2
		zones = append(zones, Zone{Kind: kind, X0: x, X1: x + w, Y0: row, Y1: row + 1, Value: b.value})
		x += w + 1
	}
	return zones
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("Puppet Theatre Gallery")

	right := fmt.Sprintf("%d / %d", len(state.Filtered), len(state.Items))
	if state.SearchQuery != "" {
		right = r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", state.SearchQuery)) + "  " + right
	}

	pad := state.Width - lipgloss.Width(logo) - lipgloss.Width(right)
	if pad < 2 {
		pad = 2
	}
	return logo + strings.Repeat(" ", pad) + r.styles.Status.Render(right)
}

func (r *Renderer) renderSearch(state ViewState) string {
	switch {
	case state.Searching:
		line := "Search: " + state.SearchInput
		if state.SearchPending {
			line += r.styles.Dim.Render("  …")
		}
		return line
	case state.SearchQuery != "":
		return r.styles.Dim.Render("Search: " + state.SearchQuery + "  (/ to edit, r to reset)")
	default:
		return r.styles.Dim.Render("Press / to search")
	}
}

func (r *Renderer) renderCards(state ViewState) string {
	if len(state.Items) == 0 {
		return r.styles.Dim.Render("The gallery is empty.")
	}
	if len(state.Filtered) == 0 {
		return r.styles.Dim.Render("No items match. Press r to reset the filters.")
	}

	cols := state.Columns
	if cols < 1 {
		cols = 1
	}
	from := state.OffsetRow * cols
	to := (state.OffsetRow + state.ViewportRows) * cols
	if to > len(state.Filtered) {
		to = len(state.Filtered)
	}

	var rows []string
	for start := from; start < to; start += cols {
		end := start + cols
		if end > to {
			end = to
		}
		if state.ActiveView == domain.ViewList {
			rows = append(rows, r.renderListRow(state, start))
			continue
		}
		cells := make([]string, 0, end-start)
		for pos := start; pos < end; pos++ {
			cells = append(cells, r.renderCard(state, pos))
			if pos < end-1 {
				cells = append(cells, strings.Repeat(" ", CardGap))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) renderCard(state ViewState, pos int) string {
	id := state.Filtered[pos]
	item := state.Items[id]
	inner := CardWidth - 2

	style := r.styles.Card
	switch {
	case pos == state.Cursor:
		style = r.styles.CardCursor
	case state.Entering[id]:
		style = r.styles.CardEntering
	}

	body := []string{
		r.styles.CardTitle.Render(fit(item.Title, inner)),
		fit(r.FilterLabel(item.Category)+" · "+string(item.Media.Kind), inner),
		r.mediaStatus(state, item, inner),
	}
	return style.Render(strings.Join(body, "\n"))
}

func (r *Renderer) renderListRow(state ViewState, pos int) string {
	id := state.Filtered[pos]
	item := state.Items[id]

	marker := "  "
	if pos == state.Cursor {
		marker = "> "
	}
	title := fit(item.Title, 24)
	category := fit(r.FilterLabel(item.Category), 10)
	status := r.mediaStatus(state, item, 10)
	rest := state.Width - lipgloss.Width(marker+title+category) - 10 - 3
	line := marker + title + " " + category + " " + status + " " + fit(item.Description, max(rest, 0))

	if pos == state.Cursor {
		return r.styles.ListCursor.Render(line)
	}
	if state.Entering[id] {
		return r.styles.Loaded.Render(ansi.Strip(line))
	}
	return line
}

func (r *Renderer) mediaStatus(state ViewState, item domain.GalleryItem, width int) string {
	if state.Loaded[item.ID] {
		return r.styles.Loaded.Render(fit("● loaded", width))
	}
	return r.styles.Pending.Render(fit("◌ lazy", width))
}

func (r *Renderer) renderFooter(state ViewState) string {
	if state.Status != "" {
		return r.styles.Status.Render(state.Status)
	}
	return r.styles.Help.Render(state.HelpLine)
}

// fit truncates or pads s to exactly width cells
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
