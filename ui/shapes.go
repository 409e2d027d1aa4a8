package ui

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// FillRoundedRect fills a rectangle with rounded corners using horizontal lines
func FillRoundedRect(renderer *sdl.Renderer, x, y, width, height, radius int32, color sdl.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	radius = min(radius, width/2, height/2)

	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for i := int32(0); i < height; i++ {
		inset := cornerInset(i, height, radius)
		renderer.DrawLine(x+inset, y+i, x+width-1-inset, y+i)
	}
}

// DrawRoundedBorder draws a rounded outline of the given thickness just
// outside the rectangle
func DrawRoundedBorder(renderer *sdl.Renderer, x, y, width, height, radius, thickness int32, color sdl.Color) {
	if width <= 0 || height <= 0 || thickness <= 0 {
		return
	}
	ox, oy := x-thickness, y-thickness
	ow, oh := width+2*thickness, height+2*thickness
	or := min(radius+thickness, ow/2, oh/2)
	ir := min(radius, width/2, height/2)

	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for i := int32(0); i < oh; i++ {
		outer := cornerInset(i, oh, or)
		row := i - thickness
		if row < 0 || row >= height {
			renderer.DrawLine(ox+outer, oy+i, ox+ow-1-outer, oy+i)
			continue
		}
		inner := cornerInset(row, height, ir)
		// left and right segments between outer edge and inner shape
		renderer.DrawLine(ox+outer, oy+i, x+inner-1, oy+i)
		renderer.DrawLine(x+width-inner, oy+i, ox+ow-1-outer, oy+i)
	}
}

// FillCircle fills a circle of the given diameter with its top-left at x, y
func FillCircle(renderer *sdl.Renderer, x, y, diameter int32, color sdl.Color) {
	FillRoundedRect(renderer, x, y, diameter, diameter, diameter/2, color)
}

// FillCapsule fills a pill shape whose ends are half circles
func FillCapsule(renderer *sdl.Renderer, x, y, width, height int32, color sdl.Color) {
	FillRoundedRect(renderer, x, y, width, height, min(width, height)/2, color)
}

// cornerInset returns how far row i of a rounded shape starts from its edge
func cornerInset(i, height, radius int32) int32 {
	if radius <= 0 {
		return 0
	}
	var dy float64
	switch {
	case i < radius:
		dy = float64(radius-i) - 0.5
	case i >= height-radius:
		dy = float64(i-(height-radius)) + 0.5
	default:
		return 0
	}
	r := float64(radius)
	dx := math.Sqrt(math.Max(r*r-dy*dy, 0))
	return int32(math.Round(r - dx))
}
