package input

// DragTracker accumulates the horizontal displacement of one pointer or touch
// drag from press to release
type DragTracker struct {
	active   bool
	startX   float64
	currentX float64
}

// Begin starts a drag at x. A drag already in progress is restarted.
func (d *DragTracker) Begin(x float64) {
	d.active = true
	d.startX = x
	d.currentX = x
}

// Move updates the pointer position of an active drag
func (d *DragTracker) Move(x float64) {
	if !d.active {
		return
	}
	d.currentX = x
}

// End finishes the drag at x and returns its total translation. ok is false
// when no drag was in progress.
func (d *DragTracker) End(x float64) (translation float64, ok bool) {
	if !d.active {
		return 0, false
	}
	d.currentX = x
	translation = d.currentX - d.startX
	d.Cancel()
	return translation, true
}

// Cancel drops the drag without reporting it
func (d *DragTracker) Cancel() {
	d.active = false
	d.startX = 0
	d.currentX = 0
}

// Active reports whether a drag is in progress
func (d *DragTracker) Active() bool {
	return d.active
}

// Translation returns the live displacement of an active drag
func (d *DragTracker) Translation() float64 {
	if !d.active {
		return 0
	}
	return d.currentX - d.startX
}
