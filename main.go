package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/veandco/go-sdl2/sdl"

	"card-carousel/pkg/settings"
	"card-carousel/screens/root"
)

const (
	targetFPS      = 60
	fallbackWidth  = 400
	fallbackHeight = 400
	statsInterval  = 5 * time.Second
)

func main() {
	// SDL2 must be driven from the main OS thread
	runtime.LockOSThread()

	// Configure logging
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load environment configuration
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	windowTitle := os.Getenv("CAROUSEL_TITLE")
	if windowTitle == "" {
		windowTitle = "Carousel"
	}
	width := envInt32("CAROUSEL_WIDTH", fallbackWidth)
	height := envInt32("CAROUSEL_HEIGHT", fallbackHeight)

	settingsPath := os.Getenv("CAROUSEL_SETTINGS")
	if settingsPath == "" {
		settingsPath = settings.DefaultPath
	}

	if err := initializeSDL2(); err != nil {
		log.Fatalf("Failed to initialize SDL2: %v", err)
	}
	defer func() {
		log.Println("Shutting down SDL2...")
		sdl.Quit()
	}()

	log.Printf("Starting %s | Window: %dx%d", windowTitle, width, height)

	window, err := sdl.CreateWindow(windowTitle, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Destroy()

	renderer, err := createRenderer(window)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Destroy()

	logStats := os.Getenv("CAROUSEL_STATS") == "1"
	screen, err := root.NewRootScreen(window, renderer, root.Config{
		SettingsPath: settingsPath,
		FPS:          targetFPS,
		ShowStats:    logStats,
		Debug:        os.Getenv("CAROUSEL_DEBUG") == "1",
	})
	if err != nil {
		log.Fatalf("Failed to create carousel screen: %v", err)
	}
	defer screen.Close()

	runLoop(screen, logStats)

	log.Println("Carousel shutting down...")
}

// envInt32 reads a positive integer from the environment or returns fallback
func envInt32(key string, fallback int32) int32 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return int32(v)
}

// initializeSDL2 initializes SDL2 with fallback video drivers
func initializeSDL2() error {
	// Respect environment variable first, then fallback
	var videoDrivers []string
	if envDriver := os.Getenv("SDL_VIDEODRIVER"); envDriver != "" {
		log.Printf("Using environment SDL_VIDEODRIVER: %s", envDriver)
		videoDrivers = []string{envDriver, "dummy"}
	} else if runtime.GOOS == "darwin" {
		videoDrivers = []string{"cocoa", "dummy"}
	} else {
		videoDrivers = []string{"wayland", "x11", "kmsdrm", "dummy"}
	}

	for _, driver := range videoDrivers {
		log.Printf("Attempting SDL2 initialization with %s driver", driver)
		sdl.SetHint(sdl.HINT_VIDEODRIVER, driver)

		if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
			log.Printf("SDL2 initialization failed with %s driver: %v", driver, err)
			sdl.Quit()
			continue
		}

		driverName, err := sdl.GetCurrentVideoDriver()
		if err != nil {
			return fmt.Errorf("failed to get video driver: %w", err)
		}
		log.Printf("SDL2 successfully initialized with %s driver", driverName)
		return nil
	}

	return fmt.Errorf("all SDL2 video drivers failed")
}

// createRenderer creates an accelerated renderer, falling back to software
func createRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		log.Printf("Hardware acceleration failed, trying software: %v", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, err
		}
	}

	// Cards fade with alpha
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	return renderer, nil
}

// runLoop executes the main SDL2 loop until the screen stops running
func runLoop(screen *root.RootScreen, logStats bool) {
	frameTime := time.Second / targetFPS
	monitor := screen.Monitor()
	lastStats := time.Now()

	for screen.Running() {
		frameStart := time.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			screen.HandleEvent(event)
		}

		if err := screen.Update(); err != nil {
			log.Printf("Update error: %v", err)
			break
		}
		updateDone := time.Now()

		if err := screen.Draw(); err != nil {
			log.Printf("Draw error: %v", err)
			break
		}
		drawDone := time.Now()

		// Frame rate limiting
		if elapsed := time.Since(frameStart); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
		monitor.RecordFrame(updateDone.Sub(frameStart), drawDone.Sub(updateDone), time.Since(frameStart))

		if logStats && time.Since(lastStats) >= statsInterval {
			r := monitor.Report()
			log.Printf("Frames: %d | %.1f fps | update %.2fms | draw %.2fms | swipes %d", r.Frames, r.FPS, r.AvgUpdateMs, r.AvgDrawMs, r.Transitions)
			lastStats = time.Now()
		}
	}
}
