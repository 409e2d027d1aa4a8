package input

// KeyPressTracker manages key press state to prevent duplicate key presses.
// Keys are identified by their scancode value.
type KeyPressTracker struct {
	pressed map[int]bool
}

// NewKeyPressTracker creates a new KeyPressTracker
func NewKeyPressTracker() KeyPressTracker {
	return KeyPressTracker{
		pressed: make(map[int]bool),
	}
}

// IsPressed checks if a key was just pressed (not held).
// keyState is the snapshot returned by sdl.GetKeyboardState.
func (kpt *KeyPressTracker) IsPressed(keyState []uint8, scancode int) bool {
	isCurrentlyPressed := scancode >= 0 && scancode < len(keyState) && keyState[scancode] != 0
	wasPressed := kpt.pressed[scancode]

	// Update state
	kpt.pressed[scancode] = isCurrentlyPressed

	// Return true only if key is currently pressed but wasn't pressed before
	return isCurrentlyPressed && !wasPressed
}
