package carousel

// Design selects the interior template of a card
type Design int

const (
	DesignOne Design = iota
	DesignTwo
	DesignThree
)

var designLabels = map[Design]string{
	DesignOne:   "Design One",
	DesignTwo:   "Design Two",
	DesignThree: "Design Three",
}

// Label returns the text drawn inside cards using this design
func (d Design) Label() string {
	if label, ok := designLabels[d]; ok {
		return label
	}
	return "Unknown"
}

// String returns human-readable design name
func (d Design) String() string {
	return d.Label()
}

// Color is an RGBA color value
type Color struct {
	R, G, B, A uint8
}

// WithAlpha returns the color with its alpha scaled by opacity (0..1)
func (c Color) WithAlpha(opacity float64) Color {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}

// Palette used by the default deck and the indicator
var (
	Red   = Color{R: 255, G: 59, B: 48, A: 255}
	Blue  = Color{R: 0, G: 122, B: 255, A: 255}
	Pink  = Color{R: 255, G: 45, B: 85, A: 255}
	Gray  = Color{R: 142, G: 142, B: 147, A: 255}
	White = Color{R: 255, G: 255, B: 255, A: 255}
)

// Card is one swipeable unit of the carousel. IDs are dense and 0-based.
type Card struct {
	ID     int
	Color  Color
	Design Design
}

// DefaultDeck returns the fixed startup deck
func DefaultDeck() []Card {
	return []Card{
		{ID: 0, Color: Red, Design: DesignOne},
		{ID: 1, Color: Blue, Design: DesignTwo},
		{ID: 2, Color: Pink, Design: DesignThree},
	}
}
