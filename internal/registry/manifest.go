package registry

import (
	"io"

	"gopkg.in/yaml.v3"

	"puppetgallery/internal/domain"
)

// Manifest describes gallery cards without a page
type Manifest struct {
	Categories []string       `yaml:"categories"`
	Items      []ManifestItem `yaml:"items"`
}

// ManifestItem is one card in a manifest
type ManifestItem struct {
	Category    string   `yaml:"category"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Media       string   `yaml:"media"`       // deferred source
	Placeholder string   `yaml:"placeholder"` // shown until the media resolves
	Kind        string   `yaml:"kind"`        // image or video
	Alt         string   `yaml:"alt"`
}

// LoadManifest reads a YAML manifest. An empty document yields an empty registry.
func LoadManifest(r io.Reader) (*Registry, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && err != io.EOF {
		return nil, err
	}

	items := make([]domain.GalleryItem, 0, len(m.Items))
	for _, mi := range m.Items {
		kind := domain.MediaKind(mi.Kind)
		if kind != domain.MediaVideo {
			kind = domain.MediaImage
		}
		items = append(items, domain.GalleryItem{
			Category:    domain.Category(mi.Category),
			Title:       mi.Title,
			Description: mi.Description,
			Tags:        mi.Tags,
			Media: domain.MediaRef{
				Kind:        kind,
				Src:         mi.Placeholder,
				DeferredSrc: mi.Media,
				Alt:         mi.Alt,
			},
		})
	}

	var categories []domain.Category
	for _, c := range m.Categories {
		if c != "" && domain.Category(c) != domain.CategoryAll {
			categories = append(categories, domain.Category(c))
		}
	}
	return New(items, categories), nil
}
