// Package config handles input demo configuration loading and management.
package config

import "github.com/Faultbox/midgard-input/internal/input"

// Config holds all settings.
type Config struct {
	Window   WindowConfig                  `yaml:"window"`
	Input    InputConfig                   `yaml:"input"`
	Bindings map[string][]input.SourceSpec `yaml:"bindings"`
	Audio    AudioConfig                   `yaml:"audio"`
	Logging  LoggingConfig                 `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// InputConfig holds device settings.
type InputConfig struct {
	Deadzone     float32         `yaml:"deadzone"`      // Hardware deadzone for every pad
	PadDeadzones map[int]float32 `yaml:"pad_deadzones"` // Per-slot overrides
}

// AudioConfig holds action cue settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Midgard Input Demo",
			Width:      960,
			Height:     540,
			Fullscreen: false,
			VSync:      true,
		},
		Input: InputConfig{
			Deadzone: input.DefaultDeadzone,
		},
		Bindings: DefaultBindings(),
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultBindings returns the movement, jump and quit bindings used when the
// config file does not provide its own.
func DefaultBindings() map[string][]input.SourceSpec {
	stick := func(axis, dir string) input.SourceSpec {
		return input.SourceSpec{Axis: axis, Direction: dir, Threshold: input.DefaultAxisThreshold}
	}
	return map[string][]input.SourceSpec{
		"up":    {{Key: "W"}, {Key: "Up"}, {Button: "DpadUp"}, stick("LeftY", "negative")},
		"down":  {{Key: "S"}, {Key: "Down"}, {Button: "DpadDown"}, stick("LeftY", "positive")},
		"left":  {{Key: "A"}, {Key: "Left"}, {Button: "DpadLeft"}, stick("LeftX", "negative")},
		"right": {{Key: "D"}, {Key: "Right"}, {Button: "DpadRight"}, stick("LeftX", "positive")},
		"jump":  {{Key: "Space"}, {Button: "A"}},
		"fire":  {{Mouse: "Left"}, stick("TriggerRight", "positive")},
		"quit":  {{Key: "Escape"}, {Button: "Back"}},
	}
}
