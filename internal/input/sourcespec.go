package input

import (
	"fmt"
	"sort"
)

// SourceSpec is the config-file form of a Source. Exactly one of Key, Mouse,
// Button or Axis is set; Pad selects the gamepad slot for Button and Axis.
// Fields that do not apply to the chosen kind must be left empty.
type SourceSpec struct {
	Key       string  `yaml:"key,omitempty"`
	Mouse     string  `yaml:"mouse,omitempty"`
	Pad       int     `yaml:"pad,omitempty"`
	Button    string  `yaml:"button,omitempty"`
	Axis      string  `yaml:"axis,omitempty"`
	Direction string  `yaml:"direction,omitempty"` // "positive" (default) or "negative"
	Threshold float32 `yaml:"threshold,omitempty"` // 0 selects DefaultAxisThreshold
}

// Source resolves the names in sp into a validated Source.
func (sp SourceSpec) Source() (Source, error) {
	set := 0
	for _, f := range []string{sp.Key, sp.Mouse, sp.Button, sp.Axis} {
		if f != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: exactly one of key, mouse, button, axis must be set", ErrInvalidSource)
	}
	if sp.Axis == "" && (sp.Direction != "" || sp.Threshold != 0) {
		return nil, fmt.Errorf("%w: direction and threshold apply only to axis sources", ErrInvalidSource)
	}
	if (sp.Key != "" || sp.Mouse != "") && sp.Pad != 0 {
		return nil, fmt.Errorf("%w: pad applies only to gamepad sources", ErrInvalidSource)
	}

	var src Source
	switch {
	case sp.Key != "":
		k, ok := KeyByName(sp.Key)
		if !ok {
			return nil, fmt.Errorf("%w: key %q", ErrUnknownName, sp.Key)
		}
		src = KeyOf(k)
	case sp.Mouse != "":
		b, ok := MouseButtonByName(sp.Mouse)
		if !ok {
			return nil, fmt.Errorf("%w: mouse button %q", ErrUnknownName, sp.Mouse)
		}
		src = Mouse(b)
	case sp.Button != "":
		b, ok := GamepadButtonByName(sp.Button)
		if !ok {
			return nil, fmt.Errorf("%w: gamepad button %q", ErrUnknownName, sp.Button)
		}
		src = PadButton(sp.Pad, b)
	default:
		a, ok := GamepadAxisByName(sp.Axis)
		if !ok {
			return nil, fmt.Errorf("%w: gamepad axis %q", ErrUnknownName, sp.Axis)
		}
		positive := true
		switch sp.Direction {
		case "", "positive", "+":
		case "negative", "-":
			positive = false
		default:
			return nil, fmt.Errorf("%w: axis direction %q", ErrInvalidSource, sp.Direction)
		}
		threshold := sp.Threshold
		if threshold == 0 {
			threshold = DefaultAxisThreshold
		}
		src = PadAxis(sp.Pad, a, positive, threshold)
	}

	if err := src.Validate(); err != nil {
		return nil, err
	}
	return src, nil
}

// SpecFor converts a Source back to its config-file form.
func SpecFor(src Source) SourceSpec {
	switch s := src.(type) {
	case KeySource:
		return SourceSpec{Key: s.Key.String()}
	case MouseSource:
		return SourceSpec{Mouse: s.Button.String()}
	case PadButtonSource:
		return SourceSpec{Pad: s.Pad, Button: s.Button.String()}
	case PadAxisSource:
		dir := "positive"
		if !s.Positive {
			dir = "negative"
		}
		return SourceSpec{Pad: s.Pad, Axis: s.Axis.String(), Direction: dir, Threshold: s.Threshold}
	}
	return SourceSpec{}
}

// BuildBindings converts config-file bindings into sources. Actions are
// processed in name order so the reported error is deterministic.
func BuildBindings(specs map[string][]SourceSpec) (map[string][]Source, error) {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string][]Source, len(specs))
	for _, name := range names {
		list := specs[name]
		if len(list) == 0 {
			return nil, fmt.Errorf("action %q: %w", name, ErrNoSources)
		}
		sources := make([]Source, 0, len(list))
		for i, sp := range list {
			src, err := sp.Source()
			if err != nil {
				return nil, fmt.Errorf("action %q: source %d: %w", name, i, err)
			}
			sources = append(sources, src)
		}
		out[name] = sources
	}
	return out, nil
}

// SpecsFor converts a whole binding table back to config-file form.
func SpecsFor(t *Table) map[string][]SourceSpec {
	out := make(map[string][]SourceSpec, t.Len())
	for _, name := range t.Actions() {
		list := t.sources(name)
		specs := make([]SourceSpec, len(list))
		for i, src := range list {
			specs[i] = SpecFor(src)
		}
		out[name] = specs
	}
	return out
}
