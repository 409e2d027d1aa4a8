package cardstack

import (
	"log"

	"card-carousel/pkg/animation"
	"card-carousel/pkg/carousel"
	"card-carousel/ui"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Widget draws the deck as a horizontally stacked carousel. It follows the
// controller through OnIndexChanged and eases between indices with a spring.
type Widget struct {
	cards  []carousel.Card
	spring *animation.Spring
}

// NewWidget creates a card stack for cards resting on index
func NewWidget(cards []carousel.Card, index int, spring *animation.Spring) *Widget {
	spring.Reset(float64(index))
	return &Widget{
		cards:  cards,
		spring: spring,
	}
}

// OnIndexChanged retargets the transition; registered as a controller listener
func (w *Widget) OnIndexChanged(previous, current int) {
	w.spring.SetTarget(float64(current))
}

// Release hands a finished drag of translation over to the spring so the
// cards continue from where the drag left them
func (w *Widget) Release(translation, viewportWidth float64) {
	w.spring.Shift(carousel.DragShift(translation, viewportWidth))
}

// Update advances the transition by one frame
func (w *Widget) Update() {
	w.spring.Update()
}

// Animating reports whether a transition is in flight
func (w *Widget) Animating() bool {
	return !w.spring.Settled()
}

// Draw renders every card inside frame. dragOffset is the live displacement of
// an unfinished drag.
func (w *Widget) Draw(renderer *sdl.Renderer, frame sdl.Rect, dragOffset float64, font *ttf.Font) error {
	viewport := float64(frame.W)
	position := w.spring.Position()
	centerX := float64(frame.X) + viewport/2 + dragOffset
	centerY := float64(frame.Y) + float64(frame.H)/2

	// Later cards are drawn on top of earlier ones
	for _, card := range w.cards {
		g := carousel.LayoutAt(card, position, viewport)
		if g.Opacity <= 0 {
			continue
		}
		if err := DrawCard(renderer, card, g, centerX+g.Offset(), centerY, font); err != nil {
			log.Printf("Error drawing card %d: %v", card.ID, err)
		}
	}

	return nil
}

// DrawCard renders one card centred on cx, cy. All designs share this routine
// and differ only by their label.
func DrawCard(renderer *sdl.Renderer, card carousel.Card, g carousel.CardGeometry, cx, cy float64, font *ttf.Font) error {
	width := int32(g.Width * g.Scale)
	height := int32(g.Height * g.Scale)
	radius := int32(carousel.CornerRadius * g.Scale)
	x := int32(cx) - width/2
	y := int32(cy) - height/2

	border := toSDL(carousel.BorderColor.WithAlpha(g.Opacity))
	ui.DrawRoundedBorder(renderer, x, y, width, height, radius, int32(carousel.BorderWidth), border)
	ui.FillRoundedRect(renderer, x, y, width, height, radius, toSDL(card.Color.WithAlpha(g.Opacity)))

	if font == nil {
		return nil
	}
	// Only the rectangle scales; the label keeps its size
	label := toSDL(carousel.White.WithAlpha(g.Opacity))
	return ui.RenderTextCentered(renderer, card.Design.Label(), int32(cx), int32(cy), 1, label, font)
}

func toSDL(c carousel.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

