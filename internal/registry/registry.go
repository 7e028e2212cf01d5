// Package registry snapshots the gallery cards of a page into an ordered,
// immutable sequence of typed items.
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"puppetgallery/internal/domain"
)

// ErrUnsupportedSource is returned for source files that are neither HTML pages nor manifests
var ErrUnsupportedSource = errors.New("unsupported gallery source")

// Registry is the fixed, load-time snapshot of every gallery item
type Registry struct {
	items      []domain.GalleryItem
	categories []domain.Category
}

// New builds a registry from items in order. IDs are reassigned to positions.
func New(items []domain.GalleryItem, categories []domain.Category) *Registry {
	owned := make([]domain.GalleryItem, len(items))
	for i, item := range items {
		item = clone(item)
		item.ID = domain.ItemID(i)
		owned[i] = item
	}
	if len(categories) == 0 {
		categories = distinctCategories(owned)
	}
	return &Registry{
		items:      owned,
		categories: append([]domain.Category(nil), categories...),
	}
}

// Len returns the number of items
func (r *Registry) Len() int {
	return len(r.items)
}

// At returns the item with the given id
func (r *Registry) At(id domain.ItemID) (domain.GalleryItem, bool) {
	if id < 0 || int(id) >= len(r.items) {
		return domain.GalleryItem{}, false
	}
	return clone(r.items[id]), true
}

// Items returns a copy of all items in registry order
func (r *Registry) Items() []domain.GalleryItem {
	out := make([]domain.GalleryItem, len(r.items))
	for i, item := range r.items {
		out[i] = clone(item)
	}
	return out
}

// Categories returns the closed category set, without "all"
func (r *Registry) Categories() []domain.Category {
	return append([]domain.Category(nil), r.categories...)
}

// WithCategories returns a registry sharing the items with a replaced category set
func (r *Registry) WithCategories(categories []domain.Category) *Registry {
	if len(categories) == 0 {
		return r
	}
	return &Registry{items: r.items, categories: append([]domain.Category(nil), categories...)}
}

// LoadFile loads a registry from a gallery page or a YAML manifest
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gallery source: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		reg, err := LoadHTML(f)
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot %s: %w", path, err)
		}
		return reg, nil
	case ".yaml", ".yml":
		reg, err := LoadManifest(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
		}
		return reg, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
	}
}

func clone(item domain.GalleryItem) domain.GalleryItem {
	item.Tags = append([]string(nil), item.Tags...)
	return item
}

func distinctCategories(items []domain.GalleryItem) []domain.Category {
	seen := make(map[domain.Category]bool)
	var out []domain.Category
	for _, item := range items {
		if item.Category == "" || item.Category == domain.CategoryAll || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		out = append(out, item.Category)
	}
	return out
}
