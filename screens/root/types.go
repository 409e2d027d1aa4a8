package root

import (
	"card-carousel/pkg/carousel"
	"card-carousel/pkg/input"
	"card-carousel/pkg/performance"
	"card-carousel/ui"
	"card-carousel/widgets/cardstack"
	"card-carousel/widgets/pageindicator"

	"github.com/veandco/go-sdl2/sdl"
)

// Config carries the process-level options for the root screen
type Config struct {
	SettingsPath string
	FPS          int
	ShowStats    bool // draw frame stats in the corner
	Debug        bool // log every index transition
}

// RootScreen is the single carousel screen: the card stack and its page indicator
type RootScreen struct {
	// SDL2 rendering
	window   *sdl.Window
	renderer *sdl.Renderer
	fonts    *ui.Fonts

	// Carousel state and the two views following it
	controller  *carousel.Controller
	cardStack   *cardstack.Widget
	indicator   *pageindicator.Widget
	unsubscribe []func()

	// Card area of the last drawn frame, used for hit testing and thresholds
	cardArea sdl.Rect

	config  Config
	monitor *performance.FrameMonitor
	running bool

	// Input tracking
	keyState   []uint8
	keyTracker input.KeyPressTracker
	drag       input.DragTracker
	touching   bool // drag comes from a finger, not the mouse
	touchID    sdl.FingerID
}
