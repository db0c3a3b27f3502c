package systems

import (
	"strings"

	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Reusable slice for touch IDs
var touchIDs []ebiten.TouchID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer and UpdateAttractor in the system order.
func UpdateInput(ecs *ecs.ECS) {
	_, existed := components.Input.First(ecs.World)
	input := getOrCreateInput(ecs)
	beginInputFrame(input)

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Read analog stick state (with deadzone)
	analogLeft, analogRight, analogUp, _, analogGpID := getAnalogStickState(gamepadIDs)

	// Track which input method was used this frame
	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		// Check keyboard keys
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		// Check gamepad buttons
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions; pushing up jumps
	if analogLeft {
		input.Current[cfg.ActionMoveLeft] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogRight {
		input.Current[cfg.ActionMoveRight] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogUp {
		input.Current[cfg.ActionJump] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	updatePointer(input)
	primeFreshInput(input, !existed)

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// beginInputFrame swaps buffers: current becomes previous, then current
// is zeroed for polling.
func beginInputFrame(input *components.InputData) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

// primeFreshInput treats everything held on a world's first polled frame
// as already held, so a key still down from the previous scene does not
// fire in the new one.
func primeFreshInput(input *components.InputData, fresh bool) {
	if fresh {
		input.Previous = input.Current
	}
}

// updatePointer tracks the mouse cursor. The first active touch wins over
// the cursor on touch devices.
func updatePointer(input *components.InputData) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		input.PointerX, input.PointerY = float64(x), float64(y)
		input.PointerActive = true
		return
	}

	x, y := ebiten.CursorPosition()
	if !input.PointerActive && x == 0 && y == 0 {
		// Cursor has not entered the window yet
		return
	}
	input.PointerX, input.PointerY = float64(x), float64(y)
	input.PointerActive = true
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	// Detect and cache controller type
	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
// Returns directional states based on deadzone threshold and the active gamepad ID
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		// Read left stick axes
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		// Apply deadzone
		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
