package pageindicator

import (
	"card-carousel/pkg/carousel"
	"card-carousel/ui"

	"github.com/veandco/go-sdl2/sdl"
)

// Widget draws one dot per card and highlights the current one
type Widget struct {
	maxIndex int
	active   int
}

// NewWidget creates an indicator for indices [0, maxIndex] starting at index
func NewWidget(index, maxIndex int) *Widget {
	return &Widget{
		maxIndex: maxIndex,
		active:   index,
	}
}

// OnIndexChanged moves the highlight; registered as a controller listener
func (w *Widget) OnIndexChanged(previous, current int) {
	w.active = current
}

// ActiveIndex returns the index currently highlighted
func (w *Widget) ActiveIndex() int {
	return w.active
}

// Dots returns the marks for the current highlight
func (w *Widget) Dots() ([]carousel.Dot, error) {
	return carousel.Dots(w.active, w.maxIndex)
}

// Draw renders the dots centred horizontally on cx with their top at y
func (w *Widget) Draw(renderer *sdl.Renderer, cx, y int32) error {
	dots, err := w.Dots()
	if err != nil {
		return err
	}

	x := float64(cx) - carousel.StripWidth(dots)/2
	for _, d := range dots {
		color := sdl.Color{R: d.Color.R, G: d.Color.G, B: d.Color.B, A: d.Color.A}
		// Dots share a vertical centre line
		dy := y + int32((carousel.DotSize-d.Height)/2)
		if d.Active {
			ui.FillCapsule(renderer, int32(x), dy, int32(d.Width), int32(d.Height), color)
		} else {
			ui.FillCircle(renderer, int32(x), dy, int32(d.Width), color)
		}
		x += d.Width + carousel.DotSpacing
	}

	return nil
}
