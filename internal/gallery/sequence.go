package gallery

import (
	"strings"

	"golang.org/x/text/cases"

	"puppetgallery/internal/domain"
)

// Sequence is an ordered list of registry ids. A filtered sequence is always
// a sub-sequence of registry order.
type Sequence []domain.ItemID

func fullSequence(n int) Sequence {
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = domain.ItemID(i)
	}
	return seq
}

// IndexOf returns the position of id, or -1
func (s Sequence) IndexOf(id domain.ItemID) int {
	for i, v := range s {
		if v == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is in the sequence
func (s Sequence) Contains(id domain.ItemID) bool {
	return s.IndexOf(id) >= 0
}

// IDs returns a copy of the sequence
func (s Sequence) IDs() []domain.ItemID {
	return append([]domain.ItemID{}, s...)
}

// Predicate decides whether an item is visible
type Predicate func(domain.GalleryItem) bool

// CategoryPredicate matches "all" or an exact category
func CategoryPredicate(category domain.Category) Predicate {
	return func(item domain.GalleryItem) bool {
		return category == domain.CategoryAll || item.Category == category
	}
}

// SearchPredicate matches a case-folded substring of the title, description or any tag
func SearchPredicate(query string) Predicate {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))
	return func(item domain.GalleryItem) bool {
		if needle == "" {
			return true
		}
		if strings.Contains(fold.String(item.Title), needle) ||
			strings.Contains(fold.String(item.Description), needle) {
			return true
		}
		for _, tag := range item.Tags {
			if strings.Contains(fold.String(tag), needle) {
				return true
			}
		}
		return false
	}
}
