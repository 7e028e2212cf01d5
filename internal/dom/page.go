// Package dom applies gallery effects to a server-rendered gallery page.
//
// A Page is a gallery.Presenter over a goquery document. Every effect is a
// plain attribute edit, so the page can be written back out afterwards.
// Elements the page does not contain are skipped.
package dom

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"

	"puppetgallery/internal/domain"
	"puppetgallery/internal/gallery"
	"puppetgallery/internal/registry"
)

// Page markup hooks beyond the card contract
const (
	ContainerSelector       = "#galleryContainer"
	LightboxSelector        = "#lightbox"
	LightboxImageSelector   = "#lightboxImage"
	LightboxCaptionSelector = "#lightboxCaption"

	ActiveClass         = "active"
	LightboxActiveClass = "lightbox-active"
	LazyClass           = "lazy"
	LoadedClass         = "loaded"
)

// Page is a gallery page document
type Page struct {
	doc   *goquery.Document
	cards []*goquery.Selection
}

var _ gallery.Presenter = (*Page)(nil)

// Load parses a gallery page
func Load(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gallery page: %w", err)
	}
	return FromDocument(doc), nil
}

// FromDocument wraps an already parsed document
func FromDocument(doc *goquery.Document) *Page {
	p := &Page{doc: doc}
	doc.Find(registry.CardSelector).Each(func(_ int, card *goquery.Selection) {
		p.cards = append(p.cards, card)
	})
	return p
}

// Document returns the underlying document
func (p *Page) Document() *goquery.Document {
	return p.doc
}

// Registry snapshots the page's cards
func (p *Page) Registry() *registry.Registry {
	return registry.Snapshot(p.doc)
}

// Stagger gives each card an entrance delay growing with its position
func (p *Page) Stagger() {
	for i, card := range p.cards {
		setStyle(card, "animation-delay", fmt.Sprintf("%gs", float64(i)/10))
	}
}

// Settle drops the transient animation classes, leaving the page as it
// looks once every animation has finished
func (p *Page) Settle() {
	for _, card := range p.cards {
		card.RemoveClass(gallery.EnterClass)
	}
	p.doc.Find(ContainerSelector).RemoveClass(gallery.TransitionClass)
}

func (p *Page) card(id domain.ItemID) *goquery.Selection {
	if id < 0 || int(id) >= len(p.cards) {
		return nil
	}
	return p.cards[id]
}

// SetItemVisible shows or hides a card
func (p *Page) SetItemVisible(id domain.ItemID, visible, entering bool) {
	card := p.card(id)
	if card == nil {
		return
	}
	if !visible {
		setStyle(card, "display", "none")
		return
	}
	setStyle(card, "display", "block")
	if entering {
		card.AddClass(gallery.EnterClass)
	} else {
		card.RemoveClass(gallery.EnterClass)
	}
}

// SetActiveFilter marks exactly one filter button active
func (p *Page) SetActiveFilter(category domain.Category) {
	markActive(p.doc.Find(registry.FilterButtonSelector), "data-filter", string(category))
}

// SetActiveView marks exactly one view button active
func (p *Page) SetActiveView(mode domain.ViewMode) {
	markActive(p.doc.Find(registry.ViewButtonSelector), "data-view", string(mode))
}

func markActive(buttons *goquery.Selection, attr, value string) {
	buttons.Each(func(_ int, btn *goquery.Selection) {
		if btn.AttrOr(attr, "") == value {
			btn.AddClass(ActiveClass)
		} else {
			btn.RemoveClass(ActiveClass)
		}
	})
}

// SetLayout replaces the container class with the layout class
func (p *Page) SetLayout(mode domain.ViewMode, transition bool) {
	container := p.doc.Find(ContainerSelector)
	if container.Length() == 0 {
		return
	}
	container.SetAttr("class", mode.LayoutClass())
	if transition {
		container.AddClass(gallery.TransitionClass)
	}
}

// ShowLightbox displays the item in the lightbox
func (p *Page) ShowLightbox(view gallery.LightboxView) {
	lightbox := p.doc.Find(LightboxSelector)
	if lightbox.Length() == 0 {
		return
	}
	setStyle(lightbox, "display", "block")
	lightbox.AddClass(LightboxActiveClass)

	img := p.doc.Find(LightboxImageSelector)
	img.SetAttr("src", view.Src)
	img.SetAttr("alt", view.Item.AltText())
	p.doc.Find(LightboxCaptionSelector).SetText(view.Item.Title)
}

// HideLightbox hides the lightbox
func (p *Page) HideLightbox() {
	lightbox := p.doc.Find(LightboxSelector)
	if lightbox.Length() == 0 {
		return
	}
	lightbox.RemoveClass(LightboxActiveClass)
	setStyle(lightbox, "display", "none")
}

// SetScrollLock toggles page scrolling behind the lightbox
func (p *Page) SetScrollLock(locked bool) {
	overflow := "auto"
	if locked {
		overflow = "hidden"
	}
	setStyle(p.doc.Find("body"), "overflow", overflow)
}

// SetItemSource swaps the deferred source of a card's media in
func (p *Page) SetItemSource(id domain.ItemID, src string) {
	card := p.card(id)
	if card == nil {
		return
	}
	media := card.Find("img[data-src], video[data-src]").First()
	if media.Length() == 0 {
		return
	}
	media.SetAttr("src", src)
	media.AddClass(LoadedClass)
	media.RemoveClass(LazyClass)
}

// WriteTo serialises the page
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	html, err := goquery.OuterHtml(p.doc.Selection)
	if err != nil {
		return 0, fmt.Errorf("failed to render gallery page: %w", err)
	}
	n, err := io.WriteString(w, html)
	return int64(n), err
}
