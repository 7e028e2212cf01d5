package navigation

// Service moves a card cursor over the filtered sequence laid out in rows
type Service struct {
	state *State
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{
		state: &State{
			ViewportRows: 1, // Updated on the first layout
			Columns:      1,
		},
	}
}

// Cursor returns the cursor position in the filtered sequence
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// OffsetRow returns the first layout row in the viewport
func (s *Service) OffsetRow() int {
	return s.state.OffsetRow
}

// ViewportRows returns how many layout rows fit the viewport
func (s *Service) ViewportRows() int {
	return s.state.ViewportRows
}

// Columns returns the number of cards per row
func (s *Service) Columns() int {
	return s.state.Columns
}

// Rows returns the number of layout rows
func (s *Service) Rows() int {
	return (s.state.Count + s.state.Columns - 1) / s.state.Columns
}

// SetLayout updates the item count, columns and viewport height
func (s *Service) SetLayout(count, columns, viewportRows int) {
	if columns < 1 {
		columns = 1
	}
	if viewportRows < 1 {
		viewportRows = 1
	}
	s.state.Count = count
	s.state.Columns = columns
	s.state.ViewportRows = viewportRows
	s.state.Cursor = s.clampIndex(s.state.Cursor)
	s.ensureVisible()
}

// Navigate handles navigation in a direction and reports whether the cursor moved
func (s *Service) Navigate(direction Direction) bool {
	old := s.state.Cursor
	cols := s.state.Columns

	switch direction {
	case DirectionUp:
		if s.state.Cursor-cols >= 0 {
			s.state.Cursor -= cols
		}
	case DirectionDown:
		if s.state.Cursor+cols < s.state.Count {
			s.state.Cursor += cols
		} else if s.row(s.state.Cursor) < s.Rows()-1 {
			// Short last row: land on its last card
			s.state.Cursor = s.state.Count - 1
		}
	case DirectionLeft:
		if s.state.Cursor > 0 {
			s.state.Cursor--
		}
	case DirectionRight:
		if s.state.Cursor < s.state.Count-1 {
			s.state.Cursor++
		}
	case DirectionPageUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - s.pageSize())
	case DirectionPageDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + s.pageSize())
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.clampIndex(s.state.Count - 1)
	}

	s.ensureVisible()
	return old != s.state.Cursor
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

// VisibleRange returns the positions whose rows lie within the viewport
// widened by margin rows on both sides
func (s *Service) VisibleRange(margin int) (from, to int) {
	if margin < 0 {
		margin = 0
	}
	firstRow := s.state.OffsetRow - margin
	if firstRow < 0 {
		firstRow = 0
	}
	lastRow := s.state.OffsetRow + s.state.ViewportRows + margin
	from = firstRow * s.state.Columns
	to = lastRow * s.state.Columns
	if to > s.state.Count {
		to = s.state.Count
	}
	if from > to {
		from = to
	}
	return from, to
}

func (s *Service) pageSize() int {
	rows := s.state.ViewportRows - 1
	if rows < 1 {
		rows = 1
	}
	return rows * s.state.Columns
}

func (s *Service) row(index int) int {
	return index / s.state.Columns
}

func (s *Service) clampIndex(index int) int {
	if index >= s.state.Count {
		index = s.state.Count - 1
	}
	if index < 0 {
		return 0
	}
	return index
}

func (s *Service) ensureVisible() {
	row := s.row(s.state.Cursor)
	if row < s.state.OffsetRow {
		s.state.OffsetRow = row
	} else if row >= s.state.OffsetRow+s.state.ViewportRows {
		s.state.OffsetRow = row - s.state.ViewportRows + 1
	}
	// Do not leave blank rows below the last one
	if maxOffset := s.Rows() - s.state.ViewportRows; s.state.OffsetRow > maxOffset {
		s.state.OffsetRow = maxOffset
	}
	if s.state.OffsetRow < 0 {
		s.state.OffsetRow = 0
	}
}
