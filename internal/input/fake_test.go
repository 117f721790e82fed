package input

// fakeDevices is a Sampler whose state tests set directly.
type fakeDevices struct {
	keys   map[Key]bool
	mouse  map[MouseButton]bool
	mx, my float32
	pads   map[int]*fakePad
}

type fakePad struct {
	buttons map[GamepadButton]bool
	axes    map[GamepadAxis]float32
}

func newFakeDevices() *fakeDevices {
	return &fakeDevices{
		keys:  make(map[Key]bool),
		mouse: make(map[MouseButton]bool),
		pads:  make(map[int]*fakePad),
	}
}

func (f *fakeDevices) connect(idx int) *fakePad {
	p := &fakePad{
		buttons: make(map[GamepadButton]bool),
		axes:    make(map[GamepadAxis]float32),
	}
	f.pads[idx] = p
	return p
}

func (f *fakeDevices) disconnect(idx int) {
	delete(f.pads, idx)
}

func (f *fakeDevices) KeyDown(k Key) bool                 { return f.keys[k] }
func (f *fakeDevices) MouseButtonDown(b MouseButton) bool { return f.mouse[b] }
func (f *fakeDevices) MousePosition() (float32, float32)  { return f.mx, f.my }

func (f *fakeDevices) ConnectedPads() []int {
	out := make([]int, 0, len(f.pads))
	for idx := range f.pads {
		out = append(out, idx)
	}
	return out
}

func (f *fakeDevices) PadButtonDown(idx int, b GamepadButton) bool {
	p, ok := f.pads[idx]
	return ok && p.buttons[b]
}

func (f *fakeDevices) PadAxis(idx int, a GamepadAxis) float32 {
	p, ok := f.pads[idx]
	if !ok {
		return 0
	}
	return p.axes[a]
}
