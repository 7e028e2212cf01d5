package gallery

// SwipeDirection is the navigation a gesture asks for
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeNext
	SwipePrev
)

func (d SwipeDirection) String() string {
	switch d {
	case SwipeNext:
		return "next"
	case SwipePrev:
		return "prev"
	default:
		return "none"
	}
}

// Gesture is a pointer press and release pair
type Gesture struct {
	StartX, StartY int
	EndX, EndY     int
}

// Direction classifies the gesture. A swipe must travel further than
// threshold horizontally and more horizontally than vertically. Leftward
// movement advances, rightward goes back.
func (g Gesture) Direction(threshold int) SwipeDirection {
	dx := g.EndX - g.StartX
	dy := g.EndY - g.StartY
	if abs(dx) <= threshold || abs(dx) <= abs(dy) {
		return SwipeNone
	}
	if dx < 0 {
		return SwipeNext
	}
	return SwipePrev
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
