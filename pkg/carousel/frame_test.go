package carousel

import "testing"

func TestCardArea(t *testing.T) {
	tests := []struct {
		name string
		w, h int32
		want Frame
	}{
		// too short: minimum height, pinned to the top
		{"short window", 400, 100, Frame{X: 16, Y: 0, W: 368, H: 156}},
		// fits: area fills the window above the indicator
		{"medium window", 400, 200, Frame{X: 16, Y: 0, W: 368, H: 188}},
		// tall: maximum height, block centred
		{"tall window", 400, 800, Frame{X: 16, Y: 269, W: 368, H: 250}},
		{"narrow window", 20, 400, Frame{X: 16, Y: 69, W: 0, H: 250}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CardArea(tt.w, tt.h); got != tt.want {
				t.Fatalf("CardArea(%d, %d) = %+v, want %+v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestIndicatorSitsBelowCardArea(t *testing.T) {
	area := CardArea(400, 800)
	if got := IndicatorY(area); got != 527 {
		t.Fatalf("indicator y = %d, want 527", got)
	}
}
