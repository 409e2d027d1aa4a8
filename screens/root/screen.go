package root

import (
	"fmt"
	"log"

	"card-carousel/pkg/animation"
	"card-carousel/pkg/carousel"
	"card-carousel/pkg/input"
	"card-carousel/pkg/performance"
	"card-carousel/pkg/settings"
	"card-carousel/ui"
	"card-carousel/widgets/cardstack"
	"card-carousel/widgets/pageindicator"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var backgroundColor = sdl.Color{R: 255, G: 255, B: 255, A: 255}

// NewRootScreen creates the carousel screen for the default deck
func NewRootScreen(window *sdl.Window, renderer *sdl.Renderer, config Config) (*RootScreen, error) {
	userSettings := settings.Load(config.SettingsPath)
	deck := carousel.DefaultDeck()

	controller, err := carousel.NewController(len(deck))
	if err != nil {
		return nil, fmt.Errorf("create carousel: %w", err)
	}
	controller.SetDeadZone(userSettings.DeadZone)

	spring := animation.NewSpring(config.FPS, userSettings.SpringFrequency, userSettings.SpringDamping)

	rs := &RootScreen{
		window:     window,
		renderer:   renderer,
		controller: controller,
		cardStack:  cardstack.NewWidget(deck, controller.CurrentIndex(), spring),
		indicator:  pageindicator.NewWidget(controller.CurrentIndex(), controller.MaxIndex()),
		config:     config,
		monitor:    performance.NewMonitor(config.FPS * 2),
		running:    true,
		keyTracker: input.NewKeyPressTracker(),
	}

	// The two views are the only observers of the index
	rs.unsubscribe = append(rs.unsubscribe,
		controller.Subscribe(rs.cardStack.OnIndexChanged),
		controller.Subscribe(rs.indicator.OnIndexChanged),
	)

	fonts, err := ui.LoadFonts()
	if err != nil {
		log.Printf("Warning: Failed to initialize fonts: %v", err)
	}
	rs.fonts = fonts

	log.Printf("Carousel ready | cards: %d | index: %d | dead zone: %.1f", len(deck), controller.CurrentIndex(), userSettings.DeadZone)
	return rs, nil
}

// Running reports whether the screen wants the loop to continue
func (rs *RootScreen) Running() bool {
	return rs.running
}

// Monitor returns the frame monitor fed by the main loop
func (rs *RootScreen) Monitor() *performance.FrameMonitor {
	return rs.monitor
}

// HandleEvent routes one SDL event to the drag tracker
func (rs *RootScreen) HandleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		rs.running = false

	case *sdl.MouseButtonEvent:
		// Touches are also reported as synthetic mouse events
		if e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT || rs.touching {
			return
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			if rs.inCardArea(e.X, e.Y) {
				rs.drag.Begin(float64(e.X))
			}
		} else if e.Type == sdl.MOUSEBUTTONUP {
			rs.endDrag(float64(e.X))
		}

	case *sdl.MouseMotionEvent:
		if e.Which == sdl.TOUCH_MOUSEID || rs.touching {
			return
		}
		rs.drag.Move(float64(e.X))

	case *sdl.TouchFingerEvent:
		w, h := rs.window.GetSize()
		x := e.X * float32(w)
		y := e.Y * float32(h)

		switch e.Type {
		case sdl.FINGERDOWN:
			if rs.drag.Active() || !rs.inCardArea(int32(x), int32(y)) {
				return
			}
			rs.touching = true
			rs.touchID = e.FingerID
			rs.drag.Begin(float64(x))
		case sdl.FINGERMOTION:
			if rs.touching && e.FingerID == rs.touchID {
				rs.drag.Move(float64(x))
			}
		case sdl.FINGERUP:
			if rs.touching && e.FingerID == rs.touchID {
				rs.touching = false
				rs.endDrag(float64(x))
			}
		}
	}
}

// endDrag hands a completed drag to the controller
func (rs *RootScreen) endDrag(x float64) {
	translation, ok := rs.drag.End(x)
	if !ok {
		return
	}
	width := float64(rs.cardArea.W)

	// The stack continues from where the finger left it
	rs.cardStack.Release(translation, width)

	previous := rs.controller.CurrentIndex()
	if rs.controller.OnDragEnd(translation, width) {
		rs.transitioned(previous, fmt.Sprintf("drag %.0f", translation))
	}
}

// Update handles keyboard navigation and advances animations. Arrow keys are
// the only transitions besides a finished drag.
func (rs *RootScreen) Update() error {
	rs.keyState = sdl.GetKeyboardState()

	if rs.keyTracker.IsPressed(rs.keyState, int(sdl.SCANCODE_LEFT)) {
		rs.step(-1, "key left")
	}
	if rs.keyTracker.IsPressed(rs.keyState, int(sdl.SCANCODE_RIGHT)) {
		rs.step(1, "key right")
	}
	if rs.keyTracker.IsPressed(rs.keyState, int(sdl.SCANCODE_ESCAPE)) {
		rs.running = false
	}

	rs.cardStack.Update()
	return nil
}

func (rs *RootScreen) step(delta int, cause string) {
	previous := rs.controller.CurrentIndex()
	if rs.controller.Step(delta) {
		rs.transitioned(previous, cause)
	}
}

func (rs *RootScreen) transitioned(previous int, cause string) {
	rs.monitor.RecordTransition()
	if rs.config.Debug {
		log.Printf("Carousel index %d -> %d (%s)", previous, rs.controller.CurrentIndex(), cause)
	}
}

// Draw renders the complete frame
func (rs *RootScreen) Draw() error {
	w, h := rs.window.GetSize()

	rs.renderer.SetDrawColor(backgroundColor.R, backgroundColor.G, backgroundColor.B, backgroundColor.A)
	rs.renderer.Clear()

	area := carousel.CardArea(w, h)
	rs.cardArea = sdl.Rect{X: area.X, Y: area.Y, W: area.W, H: area.H}

	labelFont, statsFont := rs.fontsOrNil()
	if err := rs.cardStack.Draw(rs.renderer, rs.cardArea, rs.drag.Translation(), labelFont); err != nil {
		return err
	}

	if err := rs.indicator.Draw(rs.renderer, w/2, carousel.IndicatorY(area)); err != nil {
		return err
	}

	if rs.config.ShowStats && statsFont != nil {
		report := rs.monitor.Report()
		text := fmt.Sprintf("%.0f fps | frame %.1fms | draw %.1fms | swipes %d", report.FPS, report.AvgFrameMs, report.AvgDrawMs, report.Transitions)
		ui.RenderText(rs.renderer, text, 8, 8, sdl.Color{R: 120, G: 120, B: 128, A: 255}, statsFont)
	}

	rs.renderer.Present()
	return nil
}

func (rs *RootScreen) inCardArea(x, y int32) bool {
	p := sdl.Point{X: x, Y: y}
	return p.InRect(&rs.cardArea)
}

func (rs *RootScreen) fontsOrNil() (label, small *ttf.Font) {
	if rs.fonts == nil {
		return nil, nil
	}
	return rs.fonts.Label, rs.fonts.Small
}

// Close detaches the views and releases resources
func (rs *RootScreen) Close() {
	for _, unsubscribe := range rs.unsubscribe {
		unsubscribe()
	}

	if rs.fonts != nil {
		rs.fonts.Close()
	}
}
