package carousel

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLayoutOpacityCutoff(t *testing.T) {
	tests := []struct {
		id, current int
		want        float64
	}{
		{3, 1, 0},
		{2, 1, 1},
		{1, 1, 1},
		{0, 2, 1}, // cards behind stay visible
		{4, 0, 0},
	}
	for _, tt := range tests {
		g := Layout(Card{ID: tt.id}, tt.current, 400)
		if g.Opacity != tt.want {
			t.Fatalf("id=%d current=%d opacity = %v, want %v", tt.id, tt.current, g.Opacity, tt.want)
		}
	}
}

func TestLayoutScaleAndSize(t *testing.T) {
	if g := Layout(Card{ID: 1}, 1, 400); g.Scale != 1 {
		t.Fatalf("active scale = %v, want 1", g.Scale)
	}
	g := Layout(Card{ID: 0}, 1, 400)
	if g.Scale != InactiveScale {
		t.Fatalf("inactive scale = %v, want %v", g.Scale, InactiveScale)
	}
	if !almostEqual(g.Width, 320) || g.Height != 136 {
		t.Fatalf("size = %vx%v, want 320x136", g.Width, g.Height)
	}
}

func TestLayoutOffsetsCompose(t *testing.T) {
	// viewport 400: stack layer 280 per card, card layer (400-320)/2 = 40 per card
	g := Layout(Card{ID: 2}, 0, 400)
	if !almostEqual(g.StackOffset, 560) {
		t.Fatalf("stack offset = %v, want 560", g.StackOffset)
	}
	if !almostEqual(g.CardOffset, 80) {
		t.Fatalf("card offset = %v, want 80", g.CardOffset)
	}
	if !almostEqual(g.Offset(), 640) {
		t.Fatalf("offset = %v, want 640", g.Offset())
	}

	if g := Layout(Card{ID: 0}, 1, 400); !almostEqual(g.Offset(), -320) {
		t.Fatalf("previous card offset = %v, want -320", g.Offset())
	}
}

func TestLayoutIsPure(t *testing.T) {
	card := Card{ID: 1, Color: Blue, Design: DesignTwo}
	if Layout(card, 0, 375) != Layout(card, 0, 375) {
		t.Fatal("layout differs for identical inputs")
	}
}

func TestLayoutAtMatchesIntegerPositions(t *testing.T) {
	for _, card := range DefaultDeck() {
		for idx := 0; idx < 3; idx++ {
			if got, want := LayoutAt(card, float64(idx), 400), Layout(card, idx, 400); got != want {
				t.Fatalf("LayoutAt(%d, %d) = %+v, want %+v", card.ID, idx, got, want)
			}
		}
	}
}

func TestLayoutAtBlends(t *testing.T) {
	g := LayoutAt(Card{ID: 1}, 0.5, 400)
	if !almostEqual(g.Scale, 0.95) {
		t.Fatalf("scale = %v, want 0.95", g.Scale)
	}
	if !almostEqual(g.Offset(), 160) {
		t.Fatalf("offset = %v, want 160", g.Offset())
	}
	// id 2 fades in as the position moves from 0 to 1
	if g := LayoutAt(Card{ID: 2}, 0.25, 400); !almostEqual(g.Opacity, 0.25) {
		t.Fatalf("opacity = %v, want 0.25", g.Opacity)
	}
}

func TestDesignLabels(t *testing.T) {
	want := map[Design]string{DesignOne: "Design One", DesignTwo: "Design Two", DesignThree: "Design Three"}
	for d, label := range want {
		if d.Label() != label {
			t.Fatalf("%d label = %q, want %q", d, d.Label(), label)
		}
	}
}

func TestDefaultDeckIsDense(t *testing.T) {
	deck := DefaultDeck()
	if len(deck) != 3 {
		t.Fatalf("deck size = %d, want 3", len(deck))
	}
	for i, c := range deck {
		if c.ID != i {
			t.Fatalf("deck[%d].ID = %d", i, c.ID)
		}
	}
	if deck[0].Color != Red || deck[1].Color != Blue || deck[2].Color != Pink {
		t.Fatalf("deck colors = %+v", deck)
	}
}

func TestDots(t *testing.T) {
	dots, err := Dots(1, 2)
	if err != nil {
		t.Fatalf("Dots: %v", err)
	}
	if len(dots) != 3 {
		t.Fatalf("dot count = %d, want 3", len(dots))
	}
	for i, d := range dots {
		if d.Active != (i == 1) {
			t.Fatalf("dot %d active = %v", i, d.Active)
		}
	}
	if dots[1].Width != 8 || dots[1].Height != 4 || dots[0].Width != 4 {
		t.Fatalf("dot sizes = %+v", dots)
	}
	// 4 + 8 + 8 + 8 + 4
	if w := StripWidth(dots); w != 32 {
		t.Fatalf("strip width = %v, want 32", w)
	}
}

func TestDotsSingleAndNegative(t *testing.T) {
	dots, err := Dots(0, 0)
	if err != nil || len(dots) != 1 || !dots[0].Active {
		t.Fatalf("Dots(0,0) = %+v, %v", dots, err)
	}
	if _, err := Dots(0, -1); !errors.Is(err, ErrNegativeRange) {
		t.Fatalf("Dots(0,-1) err = %v, want ErrNegativeRange", err)
	}
}

func TestDragShiftKeepsCardsInPlace(t *testing.T) {
	const width = 400.0
	if span := IndexSpan(width); !almostEqual(span, 320) {
		t.Fatalf("span = %v, want 320", span)
	}

	for _, translation := range []float64{-320, -150, 90} {
		shift := DragShift(translation, width)
		for _, card := range DefaultDeck() {
			dragged := Layout(card, 1, width).Offset() + translation
			released := LayoutAt(card, 1+shift, width).Offset()
			if !almostEqual(dragged, released) {
				t.Fatalf("translation %v card %d: offset %v after release, want %v", translation, card.ID, released, dragged)
			}
		}
	}

	if DragShift(-100, 0) != 0 {
		t.Fatal("zero viewport produced a shift")
	}
}
