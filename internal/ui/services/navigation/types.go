package navigation

// State holds all navigation-related state. Positions index the filtered
// sequence; rows are layout rows of Columns cards each.
type State struct {
	Cursor       int
	OffsetRow    int
	ViewportRows int
	Count        int
	Columns      int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionLeft     Direction = "left"
	DirectionRight    Direction = "right"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)
