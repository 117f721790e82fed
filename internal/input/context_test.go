package input

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/midgard-input/pkg/math"
)

func bindDirections(t *testing.T, c *Context) {
	t.Helper()
	must(t, c.Bind("up", KeyOf(KeyW)))
	must(t, c.Bind("right", KeyOf(KeyD)))
	must(t, c.Bind("down", KeyOf(KeyS)))
	must(t, c.Bind("left", KeyOf(KeyA)))
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnboundActionsAreNeutral(t *testing.T) {
	dev := newFakeDevices()
	for k := Key(1); k < KeyCount; k++ {
		dev.keys[k] = true
	}
	pad := dev.connect(0)
	pad.buttons[PadA] = true
	pad.axes[AxisLeftX] = 1
	dev.mouse[MouseLeft] = true

	c := New(Config{})
	c.Update(dev)

	for _, name := range []string{"jump", "", "up"} {
		if c.Pressed(name) || c.JustPressed(name) || c.JustReleased(name) {
			t.Errorf("unbound action %q resolved active", name)
		}
		if c.Value(name) != 0 {
			t.Errorf("unbound action %q has value %v", name, c.Value(name))
		}
	}
	if got := c.Axis("left", "right"); got != 0 {
		t.Errorf("Axis() on unbound actions = %v, want 0", got)
	}
	if got := c.Direction("up", "right", "down", "left"); got != math.Zero {
		t.Errorf("Direction() on unbound actions = %v, want zero", got)
	}
}

func TestRebindReplacesSources(t *testing.T) {
	dev := newFakeDevices()
	c := New(Config{})
	must(t, c.Bind("up", KeyOf(KeyW)))
	must(t, c.Bind("up", KeyOf(KeyI)))

	dev.keys[KeyW] = true
	c.Update(dev)
	if c.Pressed("up") {
		t.Error("W must not resolve up after rebinding to I")
	}

	dev.keys[KeyI] = true
	c.Update(dev)
	if !c.Pressed("up") {
		t.Error("expected I to resolve up")
	}
}

func TestPressedIsLogicalOr(t *testing.T) {
	dev := newFakeDevices()
	pad := dev.connect(0)
	c := New(Config{})
	must(t, c.Bind("jump", KeyOf(KeySpace), PadButton(0, PadA), Mouse(MouseRight)))

	tests := []struct {
		name  string
		setup func()
		want  bool
	}{
		{"none", func() {}, false},
		{"key", func() { dev.keys[KeySpace] = true }, true},
		{"key and pad", func() { pad.buttons[PadA] = true }, true},
		{"pad only", func() { dev.keys[KeySpace] = false }, true},
		{"mouse only", func() { pad.buttons[PadA] = false; dev.mouse[MouseRight] = true }, true},
		{"released", func() { dev.mouse[MouseRight] = false }, false},
	}

	for _, tt := range tests {
		tt.setup()
		c.Update(dev)
		if got := c.Pressed("jump"); got != tt.want {
			t.Errorf("%s: Pressed() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDirectionNoInput(t *testing.T) {
	c := New(Config{})
	bindDirections(t, c)
	c.Update(newFakeDevices())

	got := c.Direction("up", "right", "down", "left")
	if got.X != 0 || got.Y != 0 {
		t.Errorf("Direction() = %v, want exact zero", got)
	}
	if gomath.IsNaN(float64(got.X)) || gomath.IsNaN(float64(got.Y)) {
		t.Error("Direction() returned NaN")
	}
}

func TestDirection(t *testing.T) {
	const d = float32(0.70710677)

	tests := []struct {
		name string
		keys []Key
		want math.Vec2
	}{
		{"right", []Key{KeyD}, math.Vec2{X: 1, Y: 0}},
		{"up", []Key{KeyW}, math.Vec2{X: 0, Y: -1}},
		{"down right", []Key{KeyS, KeyD}, math.Vec2{X: d, Y: d}},
		{"up left", []Key{KeyW, KeyA}, math.Vec2{X: -d, Y: -d}},
		{"opposites cancel", []Key{KeyA, KeyD}, math.Vec2{}},
		{"all four", []Key{KeyW, KeyA, KeyS, KeyD}, math.Vec2{}},
		{"three keys", []Key{KeyW, KeyS, KeyA}, math.Vec2{X: -1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newFakeDevices()
			for _, k := range tt.keys {
				dev.keys[k] = true
			}
			c := New(Config{})
			bindDirections(t, c)
			c.Update(dev)

			got := c.Direction("up", "right", "down", "left")
			if !got.ApproxEqual(tt.want, 1e-4) {
				t.Errorf("Direction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionWithStick(t *testing.T) {
	dev := newFakeDevices()
	pad := dev.connect(0)
	c := New(Config{})
	must(t, c.Bind("up", KeyOf(KeyW), PadAxis(0, AxisLeftY, false, 0.5)))
	must(t, c.Bind("down", KeyOf(KeyS), PadAxis(0, AxisLeftY, true, 0.5)))
	must(t, c.Bind("left", KeyOf(KeyA), PadAxis(0, AxisLeftX, false, 0.5)))
	must(t, c.Bind("right", KeyOf(KeyD), PadAxis(0, AxisLeftX, true, 0.5)))

	pad.axes[AxisLeftX] = 0.9
	pad.axes[AxisLeftY] = -0.3 // below threshold
	c.Update(dev)

	got := c.Direction("up", "right", "down", "left")
	if want := (math.Vec2{X: 1, Y: 0}); got != want {
		t.Errorf("Direction() = %v, want %v", got, want)
	}
}

func TestJustPressedDigital(t *testing.T) {
	dev := newFakeDevices()
	c := New(Config{})
	must(t, c.Bind("jump", KeyOf(KeySpace)))

	dev.keys[KeySpace] = true
	c.Update(dev)
	if !c.JustPressed("jump") || !c.Pressed("jump") {
		t.Fatal("frame 1: expected jump just pressed and pressed")
	}

	c.Update(dev)
	if c.JustPressed("jump") {
		t.Error("frame 2: just pressed must be false while held")
	}
	if !c.Pressed("jump") {
		t.Error("frame 2: expected jump still pressed")
	}

	dev.keys[KeySpace] = false
	c.Update(dev)
	if !c.JustReleased("jump") || c.Pressed("jump") {
		t.Error("frame 3: expected jump just released")
	}

	c.Update(dev)
	if c.JustReleased("jump") {
		t.Error("frame 4: just released must not persist")
	}
}

func TestAnalogThreshold(t *testing.T) {
	dev := newFakeDevices()
	pad := dev.connect(0)
	c := New(Config{})
	must(t, c.Bind("throttle", PadAxis(0, AxisRightY, true, 0.5)))

	steps := []struct {
		value            float32
		pressed, justPrs bool
		justRel          bool
	}{
		{0.3, false, false, false},
		{0.6, true, true, false},
		{0.7, true, false, false},
		{0.3, false, false, true},
		{0.2, false, false, false},
		{0.5, true, true, false},
		{-0.9, false, false, true},
	}

	for i, st := range steps {
		pad.axes[AxisRightY] = st.value
		c.Update(dev)
		if got := c.Pressed("throttle"); got != st.pressed {
			t.Errorf("step %d (%v): Pressed() = %v, want %v", i, st.value, got, st.pressed)
		}
		if got := c.JustPressed("throttle"); got != st.justPrs {
			t.Errorf("step %d (%v): JustPressed() = %v, want %v", i, st.value, got, st.justPrs)
		}
		if got := c.JustReleased("throttle"); got != st.justRel {
			t.Errorf("step %d (%v): JustReleased() = %v, want %v", i, st.value, got, st.justRel)
		}
	}
}

func TestAnalogNegativePolarity(t *testing.T) {
	dev := newFakeDevices()
	pad := dev.connect(1)
	c := New(Config{})
	must(t, c.Bind("left", PadAxis(1, AxisLeftX, false, 0.4)))

	pad.axes[AxisLeftX] = 0.8
	c.Update(dev)
	if c.Pressed("left") {
		t.Error("positive deflection must not activate a negative source")
	}

	pad.axes[AxisLeftX] = -0.4
	c.Update(dev)
	if !c.Pressed("left") || !c.JustPressed("left") {
		t.Error("expected left active at -threshold")
	}
	if got := c.Value("left"); gomath.Abs(float64(got-0.4)) > 1e-6 {
		t.Errorf("Value() = %v, want 0.4", got)
	}
}

func TestAnalogEdgeIgnoredWhileHeldDigitally(t *testing.T) {
	dev := newFakeDevices()
	pad := dev.connect(0)
	c := New(Config{})
	must(t, c.Bind("up", KeyOf(KeyW), PadAxis(0, AxisLeftY, false, 0.5)))

	dev.keys[KeyW] = true
	c.Update(dev)
	c.Update(dev)

	pad.axes[AxisLeftY] = -1
	c.Update(dev)
	if c.JustPressed("up") {
		t.Error("stick crossing must not re-fire an action already held")
	}
}

func TestAnalogDisconnectIsNeutral(t *testing.T) {
	dev := newFakeDevices()
	pad := dev.connect(0)
	pad.axes[AxisLeftX] = 1
	c := New(Config{})
	must(t, c.Bind("right", PadAxis(0, AxisLeftX, true, 0.5)))

	c.Update(dev)
	if !c.Pressed("right") {
		t.Fatal("expected right active")
	}

	dev.disconnect(0)
	c.Update(dev)
	if c.Pressed("right") || c.JustPressed("right") || c.Value("right") != 0 {
		t.Error("expected neutral after disconnect")
	}
	if c.PadAxis(0, AxisLeftX) != 0 {
		t.Error("expected raw axis neutral after disconnect")
	}
}

func TestUnbindThenQuery(t *testing.T) {
	dev := newFakeDevices()
	dev.keys[KeyEscape] = true
	c := New(Config{})
	must(t, c.Bind("quit", KeyOf(KeyEscape)))
	c.Update(dev)
	if !c.Pressed("quit") {
		t.Fatal("expected quit pressed")
	}

	for i := 0; i < 3; i++ {
		c.Unbind("quit")
		if c.Pressed("quit") || c.JustPressed("quit") || c.JustReleased("quit") {
			t.Errorf("unbind %d: expected neutral result", i)
		}
		if _, ok := c.Lookup("quit"); ok {
			t.Errorf("unbind %d: expected lookup to fail", i)
		}
	}
	if !c.KeyDown(KeyEscape) {
		t.Error("low-level key query must bypass bindings")
	}
}

func TestAxis(t *testing.T) {
	dev := newFakeDevices()
	pad := dev.connect(0)
	c := New(Config{})
	must(t, c.Bind("left", KeyOf(KeyA), PadAxis(0, AxisLeftX, false, 0.5)))
	must(t, c.Bind("right", KeyOf(KeyD), PadAxis(0, AxisLeftX, true, 0.5)))

	tests := []struct {
		name  string
		keys  []Key
		stick float32
		want  float32
	}{
		{"idle", nil, 0, 0},
		{"key right", []Key{KeyD}, 0, 1},
		{"key left", []Key{KeyA}, 0, -1},
		{"both keys", []Key{KeyA, KeyD}, 0, 0},
		{"stick partial left", nil, -0.3, -0.3},
		{"stick right", nil, 0.6, 0.6},
		{"key and stick clamp", []Key{KeyD}, 0.8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev.keys = make(map[Key]bool)
			for _, k := range tt.keys {
				dev.keys[k] = true
			}
			pad.axes[AxisLeftX] = tt.stick
			c.Update(dev)

			got := c.Axis("left", "right")
			if gomath.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("Axis() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue(t *testing.T) {
	dev := newFakeDevices()
	pad := dev.connect(0)
	c := New(Config{})
	must(t, c.Bind("accelerate", PadAxis(0, AxisTriggerRight, true, 0.1), KeyOf(KeyUp)))

	pad.axes[AxisTriggerRight] = 0.25
	c.Update(dev)
	if got := c.Value("accelerate"); got != 0.25 {
		t.Errorf("Value() = %v, want 0.25", got)
	}

	dev.keys[KeyUp] = true
	c.Update(dev)
	if got := c.Value("accelerate"); got != 1 {
		t.Errorf("Value() = %v, want 1 with key held", got)
	}
}

func TestContextsAreIndependent(t *testing.T) {
	dev := newFakeDevices()
	dev.connect(0).buttons[PadA] = true

	p1 := New(Config{})
	p2 := New(Config{})
	must(t, p1.Bind("jump", PadButton(0, PadA)))
	must(t, p2.Bind("jump", PadButton(1, PadA)))

	p1.Update(dev)
	p2.Update(dev)

	if !p1.Pressed("jump") {
		t.Error("player 1 should jump from pad 0")
	}
	if p2.Pressed("jump") {
		t.Error("player 2 must not see pad 0")
	}
}

func TestContextBindErrors(t *testing.T) {
	c := New(Config{})
	if err := c.Bind("", KeyOf(KeyA)); !errors.Is(err, ErrEmptyAction) {
		t.Errorf("expected ErrEmptyAction, got %v", err)
	}
	if err := c.Bind("jump"); !errors.Is(err, ErrNoSources) {
		t.Errorf("expected ErrNoSources, got %v", err)
	}
	if err := c.BindAll(map[string][]Source{"jump": {Mouse(42)}}); !errors.Is(err, ErrInvalidSource) {
		t.Errorf("expected ErrInvalidSource, got %v", err)
	}
	if len(c.Actions()) != 0 {
		t.Errorf("expected no bindings, got %v", c.Actions())
	}
}

func TestContextDeadzoneConfig(t *testing.T) {
	dev := newFakeDevices()
	dev.connect(0).axes[AxisLeftX] = 0.15

	dz := float32(0.2)
	c := New(Config{Deadzone: &dz})
	c.Update(dev)
	if got := c.PadAxis(0, AxisLeftX); got != 0 {
		t.Errorf("PadAxis() = %v, want 0 inside configured deadzone", got)
	}
	if got := c.State().Deadzone(3); got != 0.2 {
		t.Errorf("Deadzone(3) = %v, want 0.2", got)
	}
}

func TestContextZeroDeadzone(t *testing.T) {
	dev := newFakeDevices()
	dev.connect(0).axes[AxisLeftX] = 0.02

	var dz float32
	c := New(Config{Deadzone: &dz})
	c.Update(dev)
	if got := c.PadAxis(0, AxisLeftX); got != 0.02 {
		t.Errorf("PadAxis() = %v, want 0.02 with deadzone disabled", got)
	}

	def := New(Config{})
	def.Update(dev)
	if got := def.PadAxis(0, AxisLeftX); got != 0 {
		t.Errorf("PadAxis() = %v, want 0 inside default deadzone", got)
	}
}
