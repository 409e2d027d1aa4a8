package carousel

// Screen layout around the card area
const (
	HorizontalPadding = 16
	MinCardAreaHeight = 156
	MaxCardAreaHeight = 250
	IndicatorGap      = 8
)

// Frame is an integer rectangle in window coordinates
type Frame struct {
	X, Y, W, H int32
}

// CardArea returns the carousel frame for a window of w x h. The frame height
// is clamped to [MinCardAreaHeight, MaxCardAreaHeight] and the frame is
// centred vertically together with the indicator below it.
func CardArea(w, h int32) Frame {
	dots := int32(DotSize)
	areaH := h - IndicatorGap - dots
	areaH = max(min(areaH, MaxCardAreaHeight), MinCardAreaHeight)

	blockH := areaH + IndicatorGap + dots
	return Frame{
		X: HorizontalPadding,
		Y: max((h-blockH)/2, 0),
		W: max(w-2*HorizontalPadding, 0),
		H: areaH,
	}
}

// IndicatorY returns the top of the page indicator below area
func IndicatorY(area Frame) int32 {
	return area.Y + area.H + IndicatorGap
}
