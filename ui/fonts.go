package ui

import (
	"fmt"
	"log"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// Fonts manages the TrueType fonts used by the carousel
type Fonts struct {
	Label *ttf.Font // 17px for card labels
	Small *ttf.Font // 12px for the stats overlay
}

// Font search order; CAROUSEL_FONT takes precedence when set
var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
}

// LoadFonts loads system fonts with fallbacks for different platforms.
// Missing fonts are not fatal; text is skipped when a font is nil.
func LoadFonts() (*Fonts, error) {
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize TTF: %w", err)
	}

	paths := fontPaths
	if p := os.Getenv("CAROUSEL_FONT"); p != "" {
		paths = append([]string{p}, fontPaths...)
	}

	return &Fonts{
		Label: openFirst(paths, 17),
		Small: openFirst(paths, 12),
	}, nil
}

func openFirst(paths []string, size int) *ttf.Font {
	for _, path := range paths {
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font
		}
	}
	log.Printf("Warning: no usable font found for size %d", size)
	return nil
}

// Close cleans up font resources
func (f *Fonts) Close() {
	if f.Label != nil {
		f.Label.Close()
	}
	if f.Small != nil {
		f.Small.Close()
	}
	ttf.Quit()
}
