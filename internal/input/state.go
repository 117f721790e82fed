package input

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-input/pkg/math"
)

// DefaultDeadzone is the hardware deadzone applied to every axis unless a
// pad overrides it with SetDeadzone.
const DefaultDeadzone = 0.05

// Sampler reports the live state of the input devices. The SDL backend
// implements it; Refresh reads it once per frame.
type Sampler interface {
	KeyDown(k Key) bool
	MouseButtonDown(b MouseButton) bool
	MousePosition() (x, y float32)

	// ConnectedPads lists the occupied pad slots.
	ConnectedPads() []int
	PadButtonDown(pad int, b GamepadButton) bool
	// PadAxis returns the raw axis value normalized to [-1, 1].
	PadAxis(pad int, a GamepadAxis) float32
}

// padState holds one gamepad slot.
type padState struct {
	connected bool
	deadzone  float32

	buttons     [GamepadButtonCount]bool
	prevButtons [GamepadButtonCount]bool
	axes        [GamepadAxisCount]float32
}

func (p *padState) reset() {
	p.connected = false
	p.buttons = [GamepadButtonCount]bool{}
	p.prevButtons = [GamepadButtonCount]bool{}
	p.axes = [GamepadAxisCount]float32{}
}

// State is the per-frame device snapshot. Refresh is the only mutator for
// device data; every query is a pure read.
type State struct {
	log *zap.Logger

	keys     [KeyCount]bool
	prevKeys [KeyCount]bool

	mouse     [MouseButtonCount]bool
	prevMouse [MouseButtonCount]bool
	mousePos  math.Vec2
	mouseRel  math.Vec2
	sampled   bool

	pads [MaxGamepads]padState
}

// NewState creates an empty snapshot using deadzone for every pad.
func NewState(deadzone float32, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	s := &State{log: log}
	for i := range s.pads {
		s.pads[i].deadzone = clampDeadzone(deadzone)
	}
	return s
}

// Refresh captures the current device state. The previous frame's down-sets
// are saved before sampling so the just-pressed and just-released edges
// describe exactly one frame.
func (s *State) Refresh(src Sampler) {
	s.prevKeys = s.keys
	for k := Key(1); k < KeyCount; k++ {
		s.keys[k] = src.KeyDown(k)
	}

	s.prevMouse = s.mouse
	for b := MouseLeft; b < mouseButtonLimit; b++ {
		s.mouse[b] = src.MouseButtonDown(b)
	}

	x, y := src.MousePosition()
	pos := math.Vec2{X: x, Y: y}
	if s.sampled {
		s.mouseRel = pos.Sub(s.mousePos)
	}
	s.mousePos = pos
	s.sampled = true

	s.refreshPads(src)
}

func (s *State) refreshPads(src Sampler) {
	var seen [MaxGamepads]bool
	for _, idx := range src.ConnectedPads() {
		if idx < 0 || idx >= MaxGamepads {
			continue
		}
		seen[idx] = true
	}

	for idx := range s.pads {
		p := &s.pads[idx]
		if !seen[idx] {
			if p.connected {
				s.log.Info("gamepad disconnected", zap.Int("slot", idx))
				p.reset()
			}
			continue
		}
		if !p.connected {
			s.log.Info("gamepad connected", zap.Int("slot", idx))
			p.connected = true
		}

		p.prevButtons = p.buttons
		for b := GamepadButton(0); b < GamepadButtonCount; b++ {
			p.buttons[b] = src.PadButtonDown(idx, b)
		}
		for a := GamepadAxis(0); a < GamepadAxisCount; a++ {
			p.axes[a] = applyDeadzone(src.PadAxis(idx, a), p.deadzone)
		}
	}
}

func applyDeadzone(v, dz float32) float32 {
	if v != v { // NaN from a misbehaving driver
		return 0
	}
	v = math.Clamp(v, -1, 1)
	if v > -dz && v < dz {
		return 0
	}
	return v
}

func clampDeadzone(dz float32) float32 {
	if dz != dz || dz < 0 {
		return 0
	}
	if dz >= 1 {
		return 0.99
	}
	return dz
}

// SetDeadzone sets the hardware deadzone for one pad slot. It takes effect
// at the next Refresh. Out-of-range slots are ignored.
func (s *State) SetDeadzone(pad int, dz float32) {
	if pad < 0 || pad >= MaxGamepads {
		return
	}
	s.pads[pad].deadzone = clampDeadzone(dz)
}

// Deadzone returns the hardware deadzone of a pad slot.
func (s *State) Deadzone(pad int) float32 {
	if pad < 0 || pad >= MaxGamepads {
		return DefaultDeadzone
	}
	return s.pads[pad].deadzone
}

// KeyDown reports whether k is held this frame.
func (s *State) KeyDown(k Key) bool {
	return k.Valid() && s.keys[k]
}

// KeyJustPressed reports whether k went down this frame.
func (s *State) KeyJustPressed(k Key) bool {
	return k.Valid() && s.keys[k] && !s.prevKeys[k]
}

// KeyJustReleased reports whether k went up this frame.
func (s *State) KeyJustReleased(k Key) bool {
	return k.Valid() && !s.keys[k] && s.prevKeys[k]
}

func (s *State) MouseButtonDown(b MouseButton) bool {
	return b.Valid() && s.mouse[b]
}

func (s *State) MouseButtonJustPressed(b MouseButton) bool {
	return b.Valid() && s.mouse[b] && !s.prevMouse[b]
}

func (s *State) MouseButtonJustReleased(b MouseButton) bool {
	return b.Valid() && !s.mouse[b] && s.prevMouse[b]
}

// MousePosition returns the cursor position sampled at the last Refresh.
func (s *State) MousePosition() math.Vec2 {
	return s.mousePos
}

// MouseDelta returns the cursor movement between the last two refreshes.
func (s *State) MouseDelta() math.Vec2 {
	return s.mouseRel
}

// pad returns the slot if it is in range and connected.
func (s *State) pad(idx int) (*padState, bool) {
	if idx < 0 || idx >= MaxGamepads || !s.pads[idx].connected {
		return nil, false
	}
	return &s.pads[idx], true
}

// PadConnected reports whether a gamepad occupies slot idx.
func (s *State) PadConnected(idx int) bool {
	_, ok := s.pad(idx)
	return ok
}

// ConnectedPads returns the occupied slots in ascending order.
func (s *State) ConnectedPads() []int {
	var out []int
	for i := range s.pads {
		if s.pads[i].connected {
			out = append(out, i)
		}
	}
	return out
}

func (s *State) PadButtonDown(idx int, b GamepadButton) bool {
	p, ok := s.pad(idx)
	return ok && b.Valid() && p.buttons[b]
}

func (s *State) PadButtonJustPressed(idx int, b GamepadButton) bool {
	p, ok := s.pad(idx)
	return ok && b.Valid() && p.buttons[b] && !p.prevButtons[b]
}

func (s *State) PadButtonJustReleased(idx int, b GamepadButton) bool {
	p, ok := s.pad(idx)
	return ok && b.Valid() && !p.buttons[b] && p.prevButtons[b]
}

// PadAxis returns the deadzoned axis value in [-1, 1], or 0 for a missing
// pad or unknown axis.
func (s *State) PadAxis(idx int, a GamepadAxis) float32 {
	p, ok := s.pad(idx)
	if !ok || !a.Valid() {
		return 0
	}
	return p.axes[a]
}

// LeftStick returns the left stick as a vector.
func (s *State) LeftStick(idx int) math.Vec2 {
	return math.Vec2{X: s.PadAxis(idx, AxisLeftX), Y: s.PadAxis(idx, AxisLeftY)}
}

// RightStick returns the right stick as a vector.
func (s *State) RightStick(idx int) math.Vec2 {
	return math.Vec2{X: s.PadAxis(idx, AxisRightX), Y: s.PadAxis(idx, AxisRightY)}
}

// Triggers returns the left and right trigger pressure.
func (s *State) Triggers(idx int) (left, right float32) {
	return s.PadAxis(idx, AxisTriggerLeft), s.PadAxis(idx, AxisTriggerRight)
}
