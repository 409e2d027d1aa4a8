package carousel

import "errors"

// ErrEmptyDeck is returned when a controller is created without cards
var ErrEmptyDeck = errors.New("carousel: deck must contain at least one card")

// swipeRatio is the share of the card area used to scale the swipe threshold
const swipeRatio = 0.2

// Listener is notified after the current index changes
type Listener func(previous, current int)

// Controller holds the selected card index and maps drag gestures to index
// changes. It is not safe for concurrent use; all calls are expected on the
// UI thread.
type Controller struct {
	cardCount int
	current   int
	deadZone  float64

	listeners []*subscription
}

type subscription struct {
	fn Listener
}

// NewController creates a controller for a deck of cardCount cards. The
// first card is always selected initially.
func NewController(cardCount int) (*Controller, error) {
	if cardCount < 1 {
		return nil, ErrEmptyDeck
	}
	return &Controller{cardCount: cardCount}, nil
}

// CurrentIndex returns the selected card index
func (c *Controller) CurrentIndex() int {
	return c.current
}

// CardCount returns the number of cards in the deck
func (c *Controller) CardCount() int {
	return c.cardCount
}

// MaxIndex returns the last valid index
func (c *Controller) MaxIndex() int {
	return max(c.cardCount-1, 0)
}

// SetDeadZone sets the translation magnitude below which a drag is never a swipe
func (c *Controller) SetDeadZone(d float64) {
	if d < 0 {
		d = 0
	}
	c.deadZone = d
}

// OnDragEnd applies a completed drag. translationX is the total horizontal
// displacement, cardAreaWidth the width of the card area. It reports whether
// the index changed.
func (c *Controller) OnDragEnd(translationX, cardAreaWidth float64) bool {
	if cardAreaWidth <= 0 {
		return false
	}
	if abs(translationX) <= c.deadZone {
		return false
	}

	offset := translationX / (cardAreaWidth * swipeRatio)
	switch {
	case translationX < -offset:
		return c.set(min(c.current+1, c.cardCount-1))
	case translationX > offset:
		return c.set(max(c.current-1, 0))
	}
	return false
}

// Step moves the selection by delta cards with clamping (keyboard navigation)
func (c *Controller) Step(delta int) bool {
	return c.set(clamp(c.current+delta, 0, c.MaxIndex()))
}

// Subscribe registers a listener and returns a function removing it
func (c *Controller) Subscribe(fn Listener) func() {
	sub := &subscription{fn: fn}
	c.listeners = append(c.listeners, sub)
	return func() {
		for i, s := range c.listeners {
			if s == sub {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) set(index int) bool {
	if index == c.current {
		return false
	}
	previous := c.current
	c.current = index

	// Copy so a listener may unsubscribe while being notified
	subs := append([]*subscription(nil), c.listeners...)
	for _, s := range subs {
		s.fn(previous, index)
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
