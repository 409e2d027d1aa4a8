package carousel

import "errors"

// ErrNegativeRange is returned when the indicator is asked for a negative range
var ErrNegativeRange = errors.New("carousel: indicator max index must not be negative")

// Page indicator dimensions
const (
	DotSize      = 4.0
	ActiveWidth  = 8.0
	ActiveHeight = 4.0
	DotSpacing   = 8.0
)

// Dot describes one page indicator mark
type Dot struct {
	Index  int
	Width  float64
	Height float64
	Active bool // drawn as a capsule instead of a circle
	Color  Color
}

// Dots returns one dot per index in [0, maxIndex]
func Dots(currentIndex, maxIndex int) ([]Dot, error) {
	if maxIndex < 0 {
		return nil, ErrNegativeRange
	}

	dots := make([]Dot, 0, maxIndex+1)
	for i := 0; i <= maxIndex; i++ {
		if i == currentIndex {
			dots = append(dots, Dot{Index: i, Width: ActiveWidth, Height: ActiveHeight, Active: true, Color: Red.WithAlpha(0.7)})
		} else {
			dots = append(dots, Dot{Index: i, Width: DotSize, Height: DotSize, Color: Gray.WithAlpha(0.6)})
		}
	}
	return dots, nil
}

// StripWidth returns the total width of dots including spacing
func StripWidth(dots []Dot) float64 {
	if len(dots) == 0 {
		return 0
	}
	w := DotSpacing * float64(len(dots)-1)
	for _, d := range dots {
		w += d.Width
	}
	return w
}
