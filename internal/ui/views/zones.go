package views

// ZoneKind identifies a clickable region
type ZoneKind int

const (
	ZoneFilter ZoneKind = iota
	ZoneView
	ZoneCard
	ZoneLightbox
	ZoneLightboxClose
	ZoneLightboxPrev
	ZoneLightboxNext
)

// Zone is a clickable screen rectangle. X1 and Y1 are exclusive.
type Zone struct {
	Kind   ZoneKind
	X0, Y0 int
	X1, Y1 int
	Value  string // filter category or view mode
	Index  int    // position in the filtered sequence for cards
}

// Contains reports whether the cell lies inside the zone
func (z Zone) Contains(x, y int) bool {
	return x >= z.X0 && x < z.X1 && y >= z.Y0 && y < z.Y1
}

// HitTest returns the topmost zone under the cell. Later zones are drawn
// above earlier ones.
func HitTest(zones []Zone, x, y int) (Zone, bool) {
	for i := len(zones) - 1; i >= 0; i-- {
		if zones[i].Contains(x, y) {
			return zones[i], true
		}
	}
	return Zone{}, false
}
