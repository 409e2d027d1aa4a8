package pageindicator

import (
	"testing"

	"card-carousel/pkg/carousel"
)

func TestHighlightFollowsIndexImmediately(t *testing.T) {
	c, err := carousel.NewController(3)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	w := NewWidget(c.CurrentIndex(), c.MaxIndex())
	c.Subscribe(w.OnIndexChanged)

	c.OnDragEnd(-500, 400)
	if got := w.ActiveIndex(); got != 1 {
		t.Fatalf("highlighted dot after index change = %d, want 1", got)
	}

	// two swipes in quick succession land on the last card
	c.OnDragEnd(-500, 400)
	c.OnDragEnd(-500, 400)
	if got := w.ActiveIndex(); got != c.CurrentIndex() {
		t.Fatalf("highlighted dot = %d, want %d", got, c.CurrentIndex())
	}

	dots, err := w.Dots()
	if err != nil {
		t.Fatalf("Dots: %v", err)
	}
	for _, d := range dots {
		if d.Active != (d.Index == c.CurrentIndex()) {
			t.Fatalf("dot %d active = %v with current %d", d.Index, d.Active, c.CurrentIndex())
		}
	}
}
