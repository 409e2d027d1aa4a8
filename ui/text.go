package ui

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText renders text with its top-left corner at x, y
func RenderText(renderer *sdl.Renderer, text string, x, y int32, color sdl.Color, font *ttf.Font) error {
	return renderText(renderer, text, color, font, func(w, h int32) sdl.Rect {
		return sdl.Rect{X: x, Y: y, W: w, H: h}
	})
}

// RenderTextCentered renders text centred on cx, cy, scaled by scale
func RenderTextCentered(renderer *sdl.Renderer, text string, cx, cy int32, scale float64, color sdl.Color, font *ttf.Font) error {
	return renderText(renderer, text, color, font, func(w, h int32) sdl.Rect {
		sw := int32(float64(w) * scale)
		sh := int32(float64(h) * scale)
		return sdl.Rect{X: cx - sw/2, Y: cy - sh/2, W: sw, H: sh}
	})
}

func renderText(renderer *sdl.Renderer, text string, color sdl.Color, font *ttf.Font, place func(w, h int32) sdl.Rect) error {
	if font == nil {
		return fmt.Errorf("font not available")
	}

	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: color.R, G: color.G, B: color.B, A: 255})
	if err != nil {
		return err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	// Blended text ignores the color alpha, apply it on the texture
	if err := texture.SetAlphaMod(color.A); err != nil {
		return err
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return err
	}

	dstRect := place(w, h)
	return renderer.Copy(texture, nil, &dstRect)
}
