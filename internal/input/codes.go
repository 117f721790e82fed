package input

import "strconv"

// Key is a physical keyboard key. Values match SDL scancodes so the SDL
// backend can index the keyboard state array directly.
type Key uint16

// Keyboard scancodes.
const (
	KeyUnknown Key = 0

	KeyA Key = 4
	KeyB Key = 5
	KeyC Key = 6
	KeyD Key = 7
	KeyE Key = 8
	KeyF Key = 9
	KeyG Key = 10
	KeyH Key = 11
	KeyI Key = 12
	KeyJ Key = 13
	KeyK Key = 14
	KeyL Key = 15
	KeyM Key = 16
	KeyN Key = 17
	KeyO Key = 18
	KeyP Key = 19
	KeyQ Key = 20
	KeyR Key = 21
	KeyS Key = 22
	KeyT Key = 23
	KeyU Key = 24
	KeyV Key = 25
	KeyW Key = 26
	KeyX Key = 27
	KeyY Key = 28
	KeyZ Key = 29

	Key1 Key = 30
	Key2 Key = 31
	Key3 Key = 32
	Key4 Key = 33
	Key5 Key = 34
	Key6 Key = 35
	Key7 Key = 36
	Key8 Key = 37
	Key9 Key = 38
	Key0 Key = 39

	KeyReturn    Key = 40
	KeyEscape    Key = 41
	KeyBackspace Key = 42
	KeyTab       Key = 43
	KeySpace     Key = 44

	KeyF1  Key = 58
	KeyF2  Key = 59
	KeyF3  Key = 60
	KeyF4  Key = 61
	KeyF5  Key = 62
	KeyF6  Key = 63
	KeyF7  Key = 64
	KeyF8  Key = 65
	KeyF9  Key = 66
	KeyF10 Key = 67
	KeyF11 Key = 68
	KeyF12 Key = 69

	KeyRight Key = 79
	KeyLeft  Key = 80
	KeyDown  Key = 81
	KeyUp    Key = 82

	KeyLeftCtrl   Key = 224
	KeyLeftShift  Key = 225
	KeyLeftAlt    Key = 226
	KeyRightCtrl  Key = 228
	KeyRightShift Key = 229
	KeyRightAlt   Key = 230

	// KeyCount bounds the scancode space (SDL_NUM_SCANCODES).
	KeyCount Key = 512
)

// Valid reports whether k is a scancode SDL assigns. The scancode space has
// holes; codes inside them never reach a keyboard state array.
func (k Key) Valid() bool {
	switch {
	case k >= KeyA && k <= 164: // letters through EXSEL
		return true
	case k >= 176 && k <= 221: // extended keypad
		return true
	case k >= KeyLeftCtrl && k <= 231: // modifiers
		return true
	case k >= 257 && k <= 290: // mode, media and mobile keys
		return true
	}
	return false
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

var keyNames = map[Key]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4",
	KeyF5: "F5", KeyF6: "F6", KeyF7: "F7", KeyF8: "F8",
	KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",

	KeyReturn:    "Return",
	KeyEscape:    "Escape",
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeySpace:     "Space",

	KeyRight: "Right",
	KeyLeft:  "Left",
	KeyDown:  "Down",
	KeyUp:    "Up",

	KeyLeftCtrl:   "LeftCtrl",
	KeyLeftShift:  "LeftShift",
	KeyLeftAlt:    "LeftAlt",
	KeyRightCtrl:  "RightCtrl",
	KeyRightShift: "RightShift",
	KeyRightAlt:   "RightAlt",
}

var keysByName = invert(keyNames)

// KeyByName looks up a key by its config name ("W", "Space", "LeftShift").
func KeyByName(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// MouseButton is a mouse button index, matching SDL_BUTTON_*.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota + 1
	MouseMiddle
	MouseRight
	MouseX1
	MouseX2

	mouseButtonLimit
)

// MouseButtonCount is the size of per-button state arrays.
const MouseButtonCount = int(mouseButtonLimit)

// Valid reports whether b names a known button.
func (b MouseButton) Valid() bool {
	return b >= MouseLeft && b < mouseButtonLimit
}

func (b MouseButton) String() string {
	if name, ok := mouseNames[b]; ok {
		return name
	}
	return "MouseButton(" + strconv.Itoa(int(b)) + ")"
}

var mouseNames = map[MouseButton]string{
	MouseLeft:   "Left",
	MouseMiddle: "Middle",
	MouseRight:  "Right",
	MouseX1:     "X1",
	MouseX2:     "X2",
}

var mouseByName = invert(mouseNames)

// MouseButtonByName looks up a mouse button by config name.
func MouseButtonByName(name string) (MouseButton, bool) {
	b, ok := mouseByName[name]
	return b, ok
}

// GamepadButton is a game controller button, matching SDL_CONTROLLER_BUTTON_*.
type GamepadButton uint8

const (
	PadA GamepadButton = iota
	PadB
	PadX
	PadY
	PadBack
	PadGuide
	PadStart
	PadLeftStick
	PadRightStick
	PadLeftShoulder
	PadRightShoulder
	PadDpadUp
	PadDpadDown
	PadDpadLeft
	PadDpadRight

	// GamepadButtonCount is the number of supported buttons.
	GamepadButtonCount
)

// Valid reports whether b names a known button.
func (b GamepadButton) Valid() bool {
	return b < GamepadButtonCount
}

func (b GamepadButton) String() string {
	if name, ok := padButtonNames[b]; ok {
		return name
	}
	return "GamepadButton(" + strconv.Itoa(int(b)) + ")"
}

var padButtonNames = map[GamepadButton]string{
	PadA:             "A",
	PadB:             "B",
	PadX:             "X",
	PadY:             "Y",
	PadBack:          "Back",
	PadGuide:         "Guide",
	PadStart:         "Start",
	PadLeftStick:     "LeftStick",
	PadRightStick:    "RightStick",
	PadLeftShoulder:  "LeftShoulder",
	PadRightShoulder: "RightShoulder",
	PadDpadUp:        "DpadUp",
	PadDpadDown:      "DpadDown",
	PadDpadLeft:      "DpadLeft",
	PadDpadRight:     "DpadRight",
}

var padButtonsByName = invert(padButtonNames)

// GamepadButtonByName looks up a gamepad button by config name.
func GamepadButtonByName(name string) (GamepadButton, bool) {
	b, ok := padButtonsByName[name]
	return b, ok
}

// GamepadAxis is a game controller axis, matching SDL_CONTROLLER_AXIS_*.
type GamepadAxis uint8

const (
	AxisLeftX GamepadAxis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight

	// GamepadAxisCount is the number of supported axes.
	GamepadAxisCount
)

// Valid reports whether a names a known axis.
func (a GamepadAxis) Valid() bool {
	return a < GamepadAxisCount
}

func (a GamepadAxis) String() string {
	if name, ok := axisNames[a]; ok {
		return name
	}
	return "GamepadAxis(" + strconv.Itoa(int(a)) + ")"
}

var axisNames = map[GamepadAxis]string{
	AxisLeftX:        "LeftX",
	AxisLeftY:        "LeftY",
	AxisRightX:       "RightX",
	AxisRightY:       "RightY",
	AxisTriggerLeft:  "TriggerLeft",
	AxisTriggerRight: "TriggerRight",
}

var axesByName = invert(axisNames)

// GamepadAxisByName looks up a gamepad axis by config name.
func GamepadAxisByName(name string) (GamepadAxis, bool) {
	a, ok := axesByName[name]
	return a, ok
}

// MaxGamepads is the number of gamepad slots tracked per context.
const MaxGamepads = 4

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
