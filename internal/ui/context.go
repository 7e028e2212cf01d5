package ui

// modelContext implements the input Context interface over the model
type modelContext struct {
	m *Model
}

// CurrentIndex returns the cursor position in the filtered sequence
func (c modelContext) CurrentIndex() int {
	return c.m.nav.Cursor()
}

// TotalItems returns the number of visible items
func (c modelContext) TotalItems() int {
	return len(c.m.ctrl.Filtered())
}

// FilterCount returns the number of category buttons besides "all"
func (c modelContext) FilterCount() int {
	return len(c.m.ctrl.Categories())
}

func (c modelContext) SearchQuery() string {
	return c.m.ctrl.Snapshot().SearchQuery
}

func (c modelContext) LightboxOpen() bool {
	return c.m.ctrl.Snapshot().LightboxOpen
}
