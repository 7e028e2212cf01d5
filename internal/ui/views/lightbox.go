package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"puppetgallery/internal/domain"
	"puppetgallery/internal/gallery"
)

const (
	closeControl = "[x]"
	prevControl  = "‹ prev"
	nextControl  = "next ›"

	lightboxMaxInner = 56
	lightboxNavLine  = 7 // index of the prev/next line in the box content
)

// LightboxRenderer draws the single-item viewer over the gallery
type LightboxRenderer struct {
	styles *Styles
}

// NewLightboxRenderer creates a new lightbox renderer
func NewLightboxRenderer(styles *Styles) *LightboxRenderer {
	return &LightboxRenderer{styles: styles}
}

func innerWidth(width int) int {
	inner := width - 8
	if inner > lightboxMaxInner {
		inner = lightboxMaxInner
	}
	if inner < 20 {
		inner = 20
	}
	return inner
}

func (r *LightboxRenderer) box(view gallery.LightboxView, width int) string {
	inner := innerWidth(width)
	item := view.Item

	icon := "▣"
	if item.Media.Kind == domain.MediaVideo {
		icon = "▶"
	}

	tags := make([]string, len(item.Tags))
	for i, t := range item.Tags {
		tags[i] = "#" + t
	}

	counter := fmt.Sprintf("%d / %d", view.Index+1, view.Total)
	gap := inner - lipgloss.Width(prevControl) - lipgloss.Width(nextControl) - lipgloss.Width(counter)
	left, right := gap/2, gap-gap/2

	lines := []string{
		r.styles.Caption.Render(fit(item.Title, inner-len(closeControl))) + r.styles.Control.Render(closeControl),
		"",
		fit(icon+" "+view.Src, inner),
		r.styles.Dim.Render(fit("alt: "+item.AltText(), inner)),
		fit(item.Description, inner),
		r.styles.Tag.Render(fit(strings.Join(tags, " "), inner)),
		"",
		r.styles.Control.Render(prevControl) + strings.Repeat(" ", max(left, 1)) + counter +
			strings.Repeat(" ", max(right, 1)) + r.styles.Control.Render(nextControl),
	}
	return r.styles.Lightbox.Render(strings.Join(lines, "\n"))
}

// origin returns where lipgloss.Place puts a centered box. An odd leftover
// cell goes to the right and bottom.
func origin(boxW, boxH, width, height int) (int, int) {
	return max((width-boxW)/2, 0), max((height-boxH)/2, 0)
}

// Render draws the lightbox centered on an empty backdrop
func (r *LightboxRenderer) Render(view gallery.LightboxView, width, height int) string {
	box := r.box(view, width)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// Zones returns the lightbox controls. Anything outside the ZoneLightbox
// rectangle is backdrop.
func (r *LightboxRenderer) Zones(view gallery.LightboxView, width, height int) []Zone {
	box := r.box(view, width)
	boxW, boxH := lipgloss.Width(box), lipgloss.Height(box)
	x, y := origin(boxW, boxH, width, height)

	inner := innerWidth(width)
	contentX := x + 2 // border and padding
	contentY := y + 1
	navY := contentY + lightboxNavLine

	return []Zone{
		{Kind: ZoneLightbox, X0: x, Y0: y, X1: x + boxW, Y1: y + boxH},
		{Kind: ZoneLightboxClose, X0: contentX + inner - len(closeControl), X1: contentX + inner, Y0: contentY, Y1: contentY + 1},
		{Kind: ZoneLightboxPrev, X0: contentX, X1: contentX + lipgloss.Width(prevControl), Y0: navY, Y1: navY + 1},
		{Kind: ZoneLightboxNext, X0: contentX + inner - lipgloss.Width(nextControl), X1: contentX + inner, Y0: navY, Y1: navY + 1},
	}
}
