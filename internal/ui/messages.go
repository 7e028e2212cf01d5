package ui

import (
	"puppetgallery/internal/gallery"
)

// searchDebounceMsg fires once the search debounce delay has elapsed
type searchDebounceMsg struct {
	token gallery.Token
}

// fadeExpiredMsg ends the entrance animation of cards shown up to gen
type fadeExpiredMsg struct {
	gen int
}

// transitionExpiredMsg ends the layout transition raised at gen
type transitionExpiredMsg struct {
	gen int
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}
