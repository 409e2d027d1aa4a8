package carousel

import "math"

// Layout constants for the card stack
const (
	StackSpacingRatio = 0.7 // stack layer offset per card, share of viewport
	CardWidthRatio    = 0.8 // card width, share of viewport
	CardHeight        = 136.0
	CornerRadius      = 16.0
	BorderWidth       = 1.0
	InactiveScale     = 0.9
	LabelPadding      = 16.0
)

// BorderColor is the thin outline drawn around every card
var BorderColor = Gray.WithAlpha(0.16)

// CardGeometry is the computed placement of one card relative to the centre
// of the viewport
type CardGeometry struct {
	StackOffset float64 // outer layer offset
	CardOffset  float64 // inner per-card offset
	Width       float64
	Height      float64
	Opacity     float64
	Scale       float64
}

// Offset returns the composed horizontal offset of both layers
func (g CardGeometry) Offset() float64 {
	return g.StackOffset + g.CardOffset
}

// Layout computes the geometry of card when currentIndex is selected.
// Cards more than one position ahead are hidden; cards behind stay visible.
func Layout(card Card, currentIndex int, viewportWidth float64) CardGeometry {
	cardWidth := viewportWidth * CardWidthRatio
	delta := float64(card.ID - currentIndex)

	g := CardGeometry{
		StackOffset: delta * viewportWidth * StackSpacingRatio,
		CardOffset:  delta * (viewportWidth-cardWidth) / 2,
		Width:       cardWidth,
		Height:      CardHeight,
		Opacity:     0,
		Scale:       InactiveScale,
	}
	if card.ID <= currentIndex+1 {
		g.Opacity = 1
	}
	if card.ID == currentIndex {
		g.Scale = 1
	}
	return g
}

// LayoutAt computes geometry for a fractional position, as seen mid-transition.
// Offsets follow the position linearly; opacity and scale blend between the
// layouts of the two neighbouring indices.
func LayoutAt(card Card, position, viewportWidth float64) CardGeometry {
	lo := math.Floor(position)
	t := position - lo
	a := Layout(card, int(lo), viewportWidth)
	if t == 0 {
		return a
	}
	b := Layout(card, int(lo)+1, viewportWidth)

	delta := float64(card.ID) - position
	cardWidth := viewportWidth * CardWidthRatio
	return CardGeometry{
		StackOffset: delta * viewportWidth * StackSpacingRatio,
		CardOffset:  delta * (viewportWidth-cardWidth) / 2,
		Width:       cardWidth,
		Height:      CardHeight,
		Opacity:     lerp(a.Opacity, b.Opacity, t),
		Scale:       lerp(a.Scale, b.Scale, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// IndexSpan returns the horizontal distance between neighbouring cards, both
// layers combined
func IndexSpan(viewportWidth float64) float64 {
	return viewportWidth*StackSpacingRatio + viewportWidth*(1-CardWidthRatio)/2
}

// DragShift converts a drag translation into the position change that keeps
// every card where the drag left it
func DragShift(translation, viewportWidth float64) float64 {
	span := IndexSpan(viewportWidth)
	if span <= 0 {
		return 0
	}
	return -translation / span
}
