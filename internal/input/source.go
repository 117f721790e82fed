package input

import "fmt"

// DefaultAxisThreshold is the activation threshold used when an axis source
// does not specify one.
const DefaultAxisThreshold = 0.5

// Source is one physical trigger for an action. The set of variants is
// closed: KeySource, MouseSource, PadButtonSource and PadAxisSource.
type Source interface {
	fmt.Stringer

	// Validate reports why the source cannot be bound, or nil.
	Validate() error

	source()
}

// KeySource is a keyboard key.
type KeySource struct {
	Key Key
}

// MouseSource is a mouse button.
type MouseSource struct {
	Button MouseButton
}

// PadButtonSource is a digital gamepad button on a pad slot.
type PadButtonSource struct {
	Pad    int
	Button GamepadButton
}

// PadAxisSource is one direction of an analog gamepad axis. It is active
// when the axis value reaches Threshold on the Positive side (or -Threshold
// on the negative side).
type PadAxisSource struct {
	Pad       int
	Axis      GamepadAxis
	Positive  bool
	Threshold float32
}

func (KeySource) source()       {}
func (MouseSource) source()     {}
func (PadButtonSource) source() {}
func (PadAxisSource) source()   {}

// KeyOf returns a source for keyboard key k.
func KeyOf(k Key) Source { return KeySource{Key: k} }

// Mouse returns a source for mouse button b.
func Mouse(b MouseButton) Source { return MouseSource{Button: b} }

// PadButton returns a source for button b on pad slot pad.
func PadButton(pad int, b GamepadButton) Source {
	return PadButtonSource{Pad: pad, Button: b}
}

// PadAxis returns a source for one direction of an analog axis.
func PadAxis(pad int, axis GamepadAxis, positive bool, threshold float32) Source {
	return PadAxisSource{Pad: pad, Axis: axis, Positive: positive, Threshold: threshold}
}

// Keys returns one key source per key.
func Keys(keys ...Key) []Source {
	out := make([]Source, len(keys))
	for i, k := range keys {
		out[i] = KeyOf(k)
	}
	return out
}

func (s KeySource) Validate() error {
	if !s.Key.Valid() {
		return fmt.Errorf("%w: key code %d", ErrInvalidSource, s.Key)
	}
	return nil
}

func (s MouseSource) Validate() error {
	if !s.Button.Valid() {
		return fmt.Errorf("%w: mouse button %d", ErrInvalidSource, s.Button)
	}
	return nil
}

func (s PadButtonSource) Validate() error {
	if err := validatePad(s.Pad); err != nil {
		return err
	}
	if !s.Button.Valid() {
		return fmt.Errorf("%w: gamepad button %d", ErrInvalidSource, s.Button)
	}
	return nil
}

func (s PadAxisSource) Validate() error {
	if err := validatePad(s.Pad); err != nil {
		return err
	}
	if !s.Axis.Valid() {
		return fmt.Errorf("%w: gamepad axis %d", ErrInvalidSource, s.Axis)
	}
	// NaN fails both comparisons, so test the accepted range instead.
	if !(s.Threshold > 0 && s.Threshold <= 1) {
		return fmt.Errorf("%w: axis threshold %v outside (0, 1]", ErrInvalidSource, s.Threshold)
	}
	return nil
}

func validatePad(pad int) error {
	if pad < 0 || pad >= MaxGamepads {
		return fmt.Errorf("%w: gamepad slot %d outside [0, %d)", ErrInvalidSource, pad, MaxGamepads)
	}
	return nil
}

func (s KeySource) String() string   { return "key " + s.Key.String() }
func (s MouseSource) String() string { return "mouse " + s.Button.String() }

func (s PadButtonSource) String() string {
	return fmt.Sprintf("pad%d button %s", s.Pad, s.Button)
}

func (s PadAxisSource) String() string {
	sign := "+"
	if !s.Positive {
		sign = "-"
	}
	return fmt.Sprintf("pad%d axis %s%s@%.2f", s.Pad, sign, s.Axis, s.Threshold)
}
