package registry

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"puppetgallery/internal/domain"
)

// Selectors of the gallery page markup
const (
	CardSelector         = ".gallery-card"
	FilterButtonSelector = ".filter-btn"
	ViewButtonSelector   = ".view-btn"
	TitleSelector        = ".card-title"
	DescriptionSelector  = ".card-description"
	TagSelector          = ".tag"
)

// LoadHTML parses a gallery page and snapshots its cards
func LoadHTML(r io.Reader) (*Registry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return Snapshot(doc), nil
}

// Snapshot reads every gallery card in document order. A page without cards
// yields an empty registry.
func Snapshot(doc *goquery.Document) *Registry {
	var items []domain.GalleryItem
	doc.Find(CardSelector).Each(func(i int, card *goquery.Selection) {
		items = append(items, ParseCard(card))
	})
	return New(items, FilterCategories(doc))
}

// ParseCard reads the collaborator contract of one card element
func ParseCard(card *goquery.Selection) domain.GalleryItem {
	item := domain.GalleryItem{
		Category:    domain.Category(strings.TrimSpace(card.AttrOr("data-category", ""))),
		Title:       collapse(card.Find(TitleSelector).First().Text()),
		Description: collapse(card.Find(DescriptionSelector).First().Text()),
		Tags:        parseTags(card),
		Media:       parseMedia(card),
	}
	if item.Title == "" {
		item.Title = strings.TrimSpace(card.AttrOr("data-title", ""))
	}
	if item.Description == "" {
		item.Description = strings.TrimSpace(card.AttrOr("data-description", ""))
	}
	return item
}

// FilterCategories returns the categories offered by the page's filter buttons
func FilterCategories(doc *goquery.Document) []domain.Category {
	seen := make(map[domain.Category]bool)
	var out []domain.Category
	doc.Find(FilterButtonSelector).Each(func(i int, btn *goquery.Selection) {
		cat := domain.Category(strings.TrimSpace(btn.AttrOr("data-filter", "")))
		if cat == "" || cat == domain.CategoryAll || seen[cat] {
			return
		}
		seen[cat] = true
		out = append(out, cat)
	})
	return out
}

func parseTags(card *goquery.Selection) []string {
	var tags []string
	seen := make(map[string]bool)
	add := func(tag string) {
		tag = collapse(tag)
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	card.Find(TagSelector).Each(func(i int, s *goquery.Selection) {
		add(s.Text())
	})
	if attr, ok := card.Attr("data-tags"); ok {
		for _, tag := range strings.Split(attr, ",") {
			add(tag)
		}
	}
	return tags
}

func parseMedia(card *goquery.Selection) domain.MediaRef {
	if img := card.Find("img").First(); img.Length() > 0 {
		return domain.MediaRef{
			Kind:        domain.MediaImage,
			Src:         img.AttrOr("src", ""),
			DeferredSrc: img.AttrOr("data-src", ""),
			Alt:         img.AttrOr("alt", ""),
		}
	}
	if video := card.Find("video").First(); video.Length() > 0 {
		src := video.AttrOr("src", "")
		if src == "" {
			src = video.Find("source").First().AttrOr("src", "")
		}
		return domain.MediaRef{
			Kind:        domain.MediaVideo,
			Src:         src,
			DeferredSrc: video.AttrOr("data-src", ""),
			Alt:         video.AttrOr("title", ""),
		}
	}
	return domain.MediaRef{Kind: domain.MediaImage}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
