// Package input resolves named actions from keyboard, mouse and gamepad
// state.
//
// A Context owns a binding table and a device snapshot. Call Update once per
// frame, right after the platform has polled its events, then query actions:
//
//	ctx := input.New(input.Config{})
//	ctx.Bind("jump", input.KeyOf(input.KeySpace), input.PadButton(0, input.PadA))
//	for running {
//		backend.Pump()
//		ctx.Update(backend)
//		if ctx.JustPressed("jump") { ... }
//		move := ctx.Direction("up", "right", "down", "left")
//	}
//
// Contexts share nothing, so split-screen games can keep one per player.
// A Context is meant to be driven from a single goroutine; only its binding
// table tolerates concurrent Bind and Unbind calls.
package input

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-input/pkg/math"
)

// Config holds Context settings.
type Config struct {
	// Deadzone is the hardware deadzone applied to every pad slot. Nil
	// selects DefaultDeadzone and zero disables it; use State().SetDeadzone
	// for per-pad values.
	Deadzone *float32

	// Logger receives binding and connection messages. Nil disables logging.
	Logger *zap.Logger
}

// Context resolves actions for one player or input scheme.
type Context struct {
	log   *zap.Logger
	table *Table
	state *State

	// prevPressed holds each bound action's resolved value at the end of the
	// previous frame. Analog sources have no native press edge, so their
	// just-pressed and just-released edges are detected against it.
	prevPressed map[string]bool
}

// New creates a Context with an empty binding table.
func New(cfg Config) *Context {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	var dz float32 = DefaultDeadzone
	if cfg.Deadzone != nil {
		dz = *cfg.Deadzone
	}
	return &Context{
		log:         log,
		table:       NewTable(),
		state:       NewState(dz, log),
		prevPressed: make(map[string]bool),
	}
}

// Table returns the binding table.
func (c *Context) Table() *Table { return c.table }

// State returns the device snapshot for low-level queries.
func (c *Context) State() *State { return c.state }

// Bind replaces the sources of an action.
func (c *Context) Bind(name string, sources ...Source) error {
	if err := c.table.Bind(name, sources...); err != nil {
		c.log.Warn("bind rejected", zap.String("action", name), zap.Error(err))
		return err
	}
	c.log.Debug("action bound",
		zap.String("action", name),
		zap.Stringers("sources", sources),
	)
	return nil
}

// BindAll binds every action in m, or none of them if any is invalid.
func (c *Context) BindAll(m map[string][]Source) error {
	if err := c.table.BindAll(m); err != nil {
		c.log.Warn("bind rejected", zap.Error(err))
		return err
	}
	c.log.Debug("actions bound", zap.Int("count", len(m)))
	return nil
}

// Unbind removes an action. Later queries for it return neutral values.
func (c *Context) Unbind(name string) {
	c.table.Unbind(name)
	delete(c.prevPressed, name)
	c.log.Debug("action unbound", zap.String("action", name))
}

// Lookup returns a copy of the sources bound to name.
func (c *Context) Lookup(name string) ([]Source, bool) {
	return c.table.Lookup(name)
}

// Actions returns the bound action names in sorted order.
func (c *Context) Actions() []string {
	return c.table.Actions()
}

// Update ends the current frame and starts the next one: it records every
// action's resolved value, then refreshes the snapshot from src. Call it
// exactly once per frame before any query.
func (c *Context) Update(src Sampler) {
	bound := c.table.load()
	prev := make(map[string]bool, len(bound))
	for name, list := range bound {
		if c.pressed(list) {
			prev[name] = true
		}
	}
	c.prevPressed = prev

	c.state.Refresh(src)
}

// Pressed reports whether any source bound to name is active.
func (c *Context) Pressed(name string) bool {
	return c.pressed(c.table.sources(name))
}

// JustPressed reports whether name became active this frame: a digital
// source went down, or an analog source crossed its threshold while the
// action was inactive last frame.
func (c *Context) JustPressed(name string) bool {
	list := c.table.sources(name)
	for _, src := range list {
		if c.digitalEdge(src, true) {
			return true
		}
	}
	if c.prevPressed[name] {
		return false
	}
	for _, src := range list {
		if ax, ok := src.(PadAxisSource); ok && c.axisActive(ax) {
			return true
		}
	}
	return false
}

// JustReleased reports whether name stopped being active this frame.
func (c *Context) JustReleased(name string) bool {
	list := c.table.sources(name)
	hasAxis := false
	for _, src := range list {
		if c.digitalEdge(src, false) {
			return true
		}
		if _, ok := src.(PadAxisSource); ok {
			hasAxis = true
		}
	}
	return hasAxis && c.prevPressed[name] && !c.pressed(list)
}

// Value returns how strongly name is held, in [0, 1]. Digital sources count
// as 0 or 1; axis sources contribute their magnitude on their polarity side.
func (c *Context) Value(name string) float32 {
	var best float32
	for _, src := range c.table.sources(name) {
		if v := c.strength(src); v > best {
			best = v
		}
	}
	return best
}

// Axis combines two opposing actions into a value in [-1, 1].
func (c *Context) Axis(negative, positive string) float32 {
	var sum float32
	for _, src := range c.table.sources(negative) {
		sum -= c.strength(src)
	}
	for _, src := range c.table.sources(positive) {
		sum += c.strength(src)
	}
	return math.Clamp(sum, -1, 1)
}

// Direction composes four actions into a unit vector in screen space
// (+X right, +Y down). No input yields the zero vector.
func (c *Context) Direction(up, right, down, left string) math.Vec2 {
	v := math.Vec2{
		X: b2f(c.Pressed(right)) - b2f(c.Pressed(left)),
		Y: b2f(c.Pressed(down)) - b2f(c.Pressed(up)),
	}
	return v.Normalize()
}

// KeyDown reports a raw key, bypassing bindings.
func (c *Context) KeyDown(k Key) bool { return c.state.KeyDown(k) }

// MouseButtonDown reports a raw mouse button, bypassing bindings.
func (c *Context) MouseButtonDown(b MouseButton) bool { return c.state.MouseButtonDown(b) }

// PadAxis reports a raw deadzoned axis value, bypassing bindings.
func (c *Context) PadAxis(pad int, a GamepadAxis) float32 { return c.state.PadAxis(pad, a) }

func (c *Context) pressed(list []Source) bool {
	for _, src := range list {
		if c.active(src) {
			return true
		}
	}
	return false
}

func (c *Context) active(src Source) bool {
	switch s := src.(type) {
	case KeySource:
		return c.state.KeyDown(s.Key)
	case MouseSource:
		return c.state.MouseButtonDown(s.Button)
	case PadButtonSource:
		return c.state.PadButtonDown(s.Pad, s.Button)
	case PadAxisSource:
		return c.axisActive(s)
	}
	return false
}

// digitalEdge reports a press (down=true) or release edge of a digital
// source. Axis sources never report one here.
func (c *Context) digitalEdge(src Source, down bool) bool {
	switch s := src.(type) {
	case KeySource:
		if down {
			return c.state.KeyJustPressed(s.Key)
		}
		return c.state.KeyJustReleased(s.Key)
	case MouseSource:
		if down {
			return c.state.MouseButtonJustPressed(s.Button)
		}
		return c.state.MouseButtonJustReleased(s.Button)
	case PadButtonSource:
		if down {
			return c.state.PadButtonJustPressed(s.Pad, s.Button)
		}
		return c.state.PadButtonJustReleased(s.Pad, s.Button)
	}
	return false
}

func (c *Context) axisActive(s PadAxisSource) bool {
	v := c.state.PadAxis(s.Pad, s.Axis)
	if s.Positive {
		return v >= s.Threshold
	}
	return v <= -s.Threshold
}

func (c *Context) strength(src Source) float32 {
	if s, ok := src.(PadAxisSource); ok {
		v := c.state.PadAxis(s.Pad, s.Axis)
		if s.Positive && v > 0 {
			return v
		}
		if !s.Positive && v < 0 {
			return -v
		}
		return 0
	}
	return b2f(c.active(src))
}

func b2f(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
