// Package sdlinput samples keyboard, mouse and game controller state from
// SDL2 for the input package.
package sdlinput

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-input/internal/input"
	"github.com/veandco/go-sdl2/sdl"
)

// axisScale maps SDL's int16 axis range onto [-1, 1].
const axisScale = 32767.0

// EventType identifies a processed platform event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventPadAdded
	EventPadRemoved
)

// Event is a platform event the game loop may care about beyond input state.
type Event struct {
	Type   EventType
	Key    input.Key
	Width  int
	Height int
	Slot   int
}

// Backend owns the SDL game controllers and implements input.Sampler.
// SDL must be initialised with INIT_EVENTS and INIT_GAMECONTROLLER first.
type Backend struct {
	log *zap.Logger

	slots [input.MaxGamepads]*sdl.GameController
	ids   [input.MaxGamepads]sdl.JoystickID

	events []Event

	keys    []uint8
	mouseX  float32
	mouseY  float32
	buttons uint32
}

var _ input.Sampler = (*Backend)(nil)

// New creates a backend and opens the controllers already attached.
func New(log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Backend{
		log:    log,
		events: make([]Event, 0, 16),
	}
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			b.open(i)
		}
	}
	return b
}

// Close releases every open controller.
func (b *Backend) Close() {
	for slot, gc := range b.slots {
		if gc != nil {
			gc.Close()
			b.slots[slot] = nil
		}
	}
}

// Pump drains the SDL event queue and captures the device state the
// sampler methods report for this frame. Returns true if the game should quit.
func (b *Backend) Pump() bool {
	b.events = b.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			b.events = append(b.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				b.events = append(b.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			t := EventKeyDown
			if e.Type == sdl.KEYUP {
				t = EventKeyUp
			}
			b.events = append(b.events, Event{Type: t, Key: input.Key(e.Keysym.Scancode)})

		case *sdl.ControllerDeviceEvent:
			switch e.Type {
			case sdl.CONTROLLERDEVICEADDED:
				// Which is a device index for this event type
				if slot, ok := b.open(int(e.Which)); ok {
					b.events = append(b.events, Event{Type: EventPadAdded, Slot: slot})
				}
			case sdl.CONTROLLERDEVICEREMOVED:
				// and an instance id for this one
				if slot, ok := b.close(e.Which); ok {
					b.events = append(b.events, Event{Type: EventPadRemoved, Slot: slot})
				}
			}
		}
	}

	b.keys = sdl.GetKeyboardState()
	x, y, state := sdl.GetMouseState()
	b.mouseX, b.mouseY = float32(x), float32(y)
	b.buttons = state

	return quit
}

// Events returns the events drained by the last Pump.
func (b *Backend) Events() []Event {
	return b.events
}

func (b *Backend) open(deviceIndex int) (int, bool) {
	gc := sdl.GameControllerOpen(deviceIndex)
	if gc == nil {
		b.log.Warn("failed to open game controller",
			zap.Int("device", deviceIndex),
			zap.Error(sdl.GetError()),
		)
		return 0, false
	}
	id := gc.Joystick().InstanceID()

	free := -1
	for slot, open := range b.slots {
		if open != nil && b.ids[slot] == id {
			// Already tracked; SDL reports attached devices again at startup.
			gc.Close()
			return slot, false
		}
		if open == nil && free < 0 {
			free = slot
		}
	}
	if free < 0 {
		b.log.Warn("no free gamepad slot", zap.String("name", gc.Name()))
		gc.Close()
		return 0, false
	}

	b.slots[free] = gc
	b.ids[free] = id
	b.log.Info("game controller opened",
		zap.Int("slot", free),
		zap.String("name", gc.Name()),
	)
	return free, true
}

func (b *Backend) close(id sdl.JoystickID) (int, bool) {
	for slot, gc := range b.slots {
		if gc != nil && b.ids[slot] == id {
			gc.Close()
			b.slots[slot] = nil
			b.log.Info("game controller closed", zap.Int("slot", slot))
			return slot, true
		}
	}
	return 0, false
}

// KeyDown implements input.Sampler.
func (b *Backend) KeyDown(k input.Key) bool {
	return int(k) < len(b.keys) && b.keys[k] != 0
}

// MouseButtonDown implements input.Sampler.
func (b *Backend) MouseButtonDown(btn input.MouseButton) bool {
	return b.buttons&sdl.Button(uint32(btn)) != 0
}

// MousePosition implements input.Sampler.
func (b *Backend) MousePosition() (float32, float32) {
	return b.mouseX, b.mouseY
}

// ConnectedPads implements input.Sampler.
func (b *Backend) ConnectedPads() []int {
	out := make([]int, 0, input.MaxGamepads)
	for slot, gc := range b.slots {
		if gc != nil {
			out = append(out, slot)
		}
	}
	return out
}

// PadButtonDown implements input.Sampler.
func (b *Backend) PadButtonDown(pad int, btn input.GamepadButton) bool {
	gc := b.controller(pad)
	return gc != nil && gc.Button(sdl.GameControllerButton(btn)) != 0
}

// PadAxis implements input.Sampler.
func (b *Backend) PadAxis(pad int, a input.GamepadAxis) float32 {
	gc := b.controller(pad)
	if gc == nil {
		return 0
	}
	v := float32(gc.Axis(sdl.GameControllerAxis(a))) / axisScale
	if v < -1 {
		v = -1 // int16 min is one step past -axisScale
	}
	return v
}

func (b *Backend) controller(pad int) *sdl.GameController {
	if pad < 0 || pad >= input.MaxGamepads {
		return nil
	}
	return b.slots[pad]
}
